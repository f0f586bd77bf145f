// File: services/sms/responses.go
package sms

import (
	"fmt"
	"strings"

	"glospa/models"
)

// Formatter renders every outbound message. All copy is built from the live
// service catalog and business settings so a price or menu change never
// requires a code change.
type Formatter struct {
	BusinessName  string
	BusinessPhone string
}

func formatPrice(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("$%.0f", p)
	}
	return fmt.Sprintf("$%.2f", p)
}

func serviceLines(services []models.Service) string {
	var b strings.Builder
	for _, s := range services {
		fmt.Fprintf(&b, "• %s - %s (%d minutes)\n", s.Name, formatPrice(s.Price), s.Duration)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) Greeting() string {
	return fmt.Sprintf("Hey there! Welcome to %s! 💆‍♀️ How can I help you today? You can book an appointment, ask about our services, or check our hours.", f.BusinessName)
}

func (f *Formatter) ServiceMenu(services []models.Service) string {
	return fmt.Sprintf("Great! I'd love to help you book an appointment. ✨ Which service would you like?\n\n%s\n\nJust reply with the service name!", serviceLines(services))
}

func (f *Formatter) ServiceReprompt(services []models.Service) string {
	return fmt.Sprintf("I didn't catch which service you'd like. Our services are:\n\n%s\n\nJust reply with the service name!", serviceLines(services))
}

func (f *Formatter) DatePrompt(serviceName string) string {
	return fmt.Sprintf("Perfect choice! %s it is. 🌿 What day works best for you? You can say something like \"tomorrow\", \"Friday\", or a specific date.", serviceName)
}

func (f *Formatter) DateReprompt() string {
	return "What day works best for you? You can say something like \"today\", \"tomorrow\", or a day of the week like \"Friday\"."
}

func (f *Formatter) TimeOptions(serviceName, date string, times []string) string {
	return fmt.Sprintf("Here's what we have available for %s on %s:\n\n%s\n\nWhich time works for you?", serviceName, date, strings.Join(times, ", "))
}

func (f *Formatter) TimeReprompt(times []string) string {
	return fmt.Sprintf("That time isn't on our open list for that day. The available times are:\n\n%s\n\nWhich of these works for you?", strings.Join(times, ", "))
}

func (f *Formatter) NoAvailability(serviceName, date string) string {
	return fmt.Sprintf("I'm sorry, we don't have any openings for %s on %s. 😔 Would another day work for you?", serviceName, date)
}

func (f *Formatter) ConflictReoffer(times []string) string {
	return fmt.Sprintf("Oh no, that time was just taken! These times are still open:\n\n%s\n\nWhich of these works for you?", strings.Join(times, ", "))
}

func (f *Formatter) ConflictNoneLeft(date string) string {
	return fmt.Sprintf("Oh no, that time was just taken and we have nothing else open on %s. 😔 Would another day work for you?", date)
}

func (f *Formatter) Confirmation(serviceName, date, timeLabel string) string {
	return fmt.Sprintf("You're all set! 🎉 Your %s is booked for %s at %s. We can't wait to see you! If you need to make changes, just text us or call %s.", serviceName, date, timeLabel, f.BusinessPhone)
}

func (f *Formatter) StartOver() string {
	return "No problem, let's start fresh! How can I help you today? You can book an appointment, ask about our services, or check our hours."
}

func (f *Formatter) RescheduleReferral() string {
	return fmt.Sprintf("I'd be happy to help you reschedule! Please give us a call at %s and we'll find a new time that works for you.", f.BusinessPhone)
}

func (f *Formatter) CancelReferral() string {
	return fmt.Sprintf("Sorry to hear you need to cancel. Please give us a call at %s and we'll take care of it for you.", f.BusinessPhone)
}

func (f *Formatter) PriceList(services []models.Service) string {
	return fmt.Sprintf("Here's our current pricing:\n\n%s\n\nWould you like to book an appointment?", serviceLines(services))
}

func (f *Formatter) HoursReply(settings *models.BusinessSettings) string {
	hours := "Monday through Saturday, 9:00 AM to 6:00 PM"
	if settings != nil && settings.Hours != "" {
		hours = settings.Hours
	}
	return fmt.Sprintf("We're open %s. Would you like to book an appointment?", hours)
}

func (f *Formatter) LocationReply(settings *models.BusinessSettings) string {
	if settings != nil && settings.Address != "" {
		return fmt.Sprintf("You can find us at %s. We'd love to see you!", settings.Address)
	}
	return fmt.Sprintf("Give us a call at %s and we'll point you right to us!", f.BusinessPhone)
}

// BusinessAnswer routes a business question to the right reply based on what
// the message was actually asking about. Stored knowledge entries take
// precedence over the built-in copy: first an entry whose category appears
// verbatim in the message (covers categories like "parking" that the built-in
// answers know nothing about), then the entry filed under the detected topic.
func (f *Formatter) BusinessAnswer(body string, services []models.Service, settings *models.BusinessSettings, knowledge []models.BusinessKnowledge) string {
	text := strings.ToLower(body)

	for _, k := range knowledge {
		if k.Category != "" && k.Content != "" && strings.Contains(text, strings.ToLower(k.Category)) {
			return k.Content
		}
	}

	topic := businessTopic(text)
	for _, k := range knowledge {
		if k.Content != "" && strings.EqualFold(k.Category, topic) {
			return k.Content
		}
	}

	switch topic {
	case "hours":
		return f.HoursReply(settings)
	case "location":
		return f.LocationReply(settings)
	default:
		return f.PriceList(services)
	}
}

func businessTopic(text string) string {
	switch {
	case strings.Contains(text, "hour") || strings.Contains(text, "open"):
		return "hours"
	case strings.Contains(text, "where") || strings.Contains(text, "address"):
		return "location"
	default:
		return "pricing"
	}
}

func (f *Formatter) GeneralFallback() string {
	return fmt.Sprintf("Thanks for reaching out to %s! I can help you book an appointment, answer questions about our services, or share our hours. What would you like to do? For anything else, call us at %s.", f.BusinessName, f.BusinessPhone)
}

func (f *Formatter) Trouble() string {
	return "Sorry, something went wrong on our end. Please try that again in a moment."
}

// Truncate caps a reply at max characters, cutting on a rune boundary.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
