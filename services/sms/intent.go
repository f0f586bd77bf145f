// File: services/sms/intent.go
package sms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"glospa/models"
)

var (
	rescheduleKeywords = []string{"reschedule", "change appointment", "move appointment", "different time"}
	cancelKeywords     = []string{"cancel", "cancellation", "can't make it", "need to cancel"}

	businessQuestionKeywords = []string{
		"how much", "cost", "price", "pricing",
		"what services", "services do you offer",
		"when are you open", "what are your hours",
		"where are you", "what's your address",
		"do you offer", "what do you have",
	}

	greetingPhrases = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

	bookingKeywords = []string{
		"book", "booking", "appointment", "schedule", "reserve",
		"want to book", "need an appointment", "looking to book",
	}

	dayKeywords = []string{
		"today", "tomorrow",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	}

	startOverKeywords = []string{"start over", "restart", "begin again", "new booking", "start fresh"}
)

// Time patterns in priority order: explicit meridiem forms first, then 24h,
// then a bare hour.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)\b`),
	regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`),
	regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`),
	regexp.MustCompile(`\b(\d{1,2})\b`),
}

// ClassifyIntent maps an inbound message to an intent with a fixed confidence.
// Rules are evaluated in a strict order; the first match wins. A conversation
// already inside the booking flow is sticky: anything the user says is routed
// to booking so the flow can interpret it against the current step.
func ClassifyIntent(body string, state *models.ConversationState, serviceNames []string) models.IntentResult {
	text := strings.ToLower(strings.TrimSpace(body))

	if containsAny(text, rescheduleKeywords) {
		return models.IntentResult{Intent: models.IntentReschedule, Confidence: 0.95}
	}
	if containsAny(text, cancelKeywords) {
		return models.IntentResult{Intent: models.IntentCancel, Confidence: 0.95}
	}
	if containsAny(text, businessQuestionKeywords) {
		return models.IntentResult{Intent: models.IntentBusinessQuestion, Confidence: 0.9}
	}
	for _, g := range greetingPhrases {
		if text == g {
			return models.IntentResult{Intent: models.IntentGreeting, Confidence: 0.8}
		}
	}

	inFlow := state != nil && state.InBookingFlow()
	if inFlow || containsAny(text, bookingKeywords) || containsAny(text, dayKeywords) || hasTimeToken(text) {
		return models.IntentResult{
			Intent:     models.IntentBooking,
			Confidence: 0.85,
			Extracted: models.ExtractedData{
				Service: extractService(text, serviceNames),
				Date:    extractDate(text),
				Time:    ExtractTime(text),
			},
		}
	}

	return models.IntentResult{Intent: models.IntentGeneral, Confidence: 0.5}
}

// IsStartOver reports whether the message asks to abandon the current booking
// flow and begin again.
func IsStartOver(body string) bool {
	return containsAny(strings.ToLower(body), startOverKeywords)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func hasTimeToken(text string) bool {
	for _, p := range timePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// ExtractTime pulls the first time reference out of a message and normalizes
// it to a compact token such as "3pm" or "3:30pm". A bare hour with no
// meridiem is assumed to be an afternoon booking when it reads as a 12-hour
// value; values above 12 keep their 24-hour hour and get "am" appended so the
// token still round-trips through the same comparison path.
func ExtractTime(text string) string {
	text = strings.ToLower(text)
	for _, p := range timePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		tok := strings.ToLower(strings.ReplaceAll(m[0], " ", ""))
		if strings.Contains(tok, "am") || strings.Contains(tok, "pm") {
			return tok
		}
		hour, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if hour <= 12 {
			return tok + "pm"
		}
		return tok + "am"
	}
	return ""
}

// NormalizeTimeLabel converts a display label like "3:00 PM" into the same
// compact token ExtractTime produces, so offered times can be compared against
// what the client typed.
func NormalizeTimeLabel(label string) string {
	tok := strings.ToLower(strings.ReplaceAll(label, " ", ""))
	return strings.Replace(tok, ":00", "", 1)
}

// TimeTokensMatch reports whether the client's time token refers to the given
// offered label, tolerating ":00" and spacing differences.
func TimeTokensMatch(userToken, offeredLabel string) bool {
	if userToken == "" {
		return false
	}
	offered := strings.ToLower(strings.ReplaceAll(offeredLabel, " ", ""))
	if userToken == offered {
		return true
	}
	return userToken == strings.Replace(offered, ":00", "", 1)
}

func extractDate(text string) string {
	for _, d := range dayKeywords {
		if strings.Contains(text, d) {
			return d
		}
	}
	if m := regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`).FindString(text); m != "" {
		return m
	}
	return ""
}

// extractService matches the message against the catalog's service names,
// first on the full name and then on the leading word, so "signature" still
// resolves to "Signature Head Spa".
func extractService(text string, serviceNames []string) string {
	for _, name := range serviceNames {
		if strings.Contains(text, strings.ToLower(name)) {
			return name
		}
	}
	for _, name := range serviceNames {
		words := strings.Fields(strings.ToLower(name))
		if len(words) == 0 {
			continue
		}
		if regexp.MustCompile(fmt.Sprintf(`\b%s\b`, regexp.QuoteMeta(words[0]))).MatchString(text) {
			return name
		}
	}
	return ""
}
