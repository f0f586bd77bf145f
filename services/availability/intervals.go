package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"glospa/models"
)

// ParseClock converts an "HH:MM" 24h string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// mergeIntervals unions a set of intervals into a sorted, non-overlapping set.
func mergeIntervals(ivs []models.Interval) []models.Interval {
	var in []models.Interval
	for _, iv := range ivs {
		if !iv.Empty() {
			in = append(in, iv)
		}
	}
	if len(in) == 0 {
		return nil
	}
	sort.Slice(in, func(i, j int) bool { return in[i].Start < in[j].Start })

	merged := []models.Interval{in[0]}
	for _, iv := range in[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// subtractIntervals removes every part of free that overlaps any block.
// A block always wins over an overlapping window, including partial overlaps:
// free 09:00-14:00 minus block 10:00-11:00 yields 09:00-10:00 and 11:00-14:00.
func subtractIntervals(free, blocks []models.Interval) []models.Interval {
	blocks = mergeIntervals(blocks)
	var out []models.Interval
	for _, f := range free {
		remaining := []models.Interval{f}
		for _, b := range blocks {
			var next []models.Interval
			for _, r := range remaining {
				if b.End <= r.Start || b.Start >= r.End {
					next = append(next, r)
					continue
				}
				if b.Start > r.Start {
					next = append(next, models.Interval{Start: r.Start, End: b.Start})
				}
				if b.End < r.End {
					next = append(next, models.Interval{Start: b.End, End: r.End})
				}
			}
			remaining = next
		}
		out = append(out, remaining...)
	}
	return mergeIntervals(out)
}

// FreeWindows layers a staff member's schedule rows for one day: the union of
// non-blocked rows minus the union of blocked rows.
func FreeWindows(rows []models.StaffSchedule) ([]models.Interval, error) {
	var open, blocked []models.Interval
	for _, row := range rows {
		start, err := ParseClock(row.StartTime)
		if err != nil {
			return nil, fmt.Errorf("schedule row %s: %w", row.ID, err)
		}
		end, err := ParseClock(row.EndTime)
		if err != nil {
			return nil, fmt.Errorf("schedule row %s: %w", row.ID, err)
		}
		iv := models.Interval{Start: start, End: end}
		if row.IsBlocked {
			blocked = append(blocked, iv)
		} else {
			open = append(open, iv)
		}
	}
	return subtractIntervals(mergeIntervals(open), blocked), nil
}
