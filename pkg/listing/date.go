package listing

import (
	"strconv"
	"strings"
	"time"
)

var monthAbbrevs = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// monthFromAbbrev maps a three-letter month to time.Month.
// Matching is exact and case-sensitive. Anything else falls back to January;
// callers that need to reject unknown months must check it themselves.
func monthFromAbbrev(s string) time.Month {
	for i, abbrev := range monthAbbrevs {
		if s == abbrev {
			return time.Month(i + 1)
		}
	}
	return time.January
}

// ResolveTime converts the date columns of an ls line into a time.
//
// clock is either "HH:MM" or a year. ls prints the time of day for recent
// files and omits the year, so the "HH:MM" form takes the year from now.
// No attempt is made to detect a listing that wrapped across a new year.
// The year form resolves to midnight. Out-of-range days are normalized by
// time.Date. Digits that fail to parse count as zero.
func ResolveTime(month string, day int, clock string, now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	mon := monthFromAbbrev(month)

	if hh, mm, ok := strings.Cut(clock, ":"); ok {
		return time.Date(now.In(loc).Year(), mon, day, leadingInt(hh), leadingInt(mm), 0, 0, loc)
	}
	return time.Date(leadingInt(clock), mon, day, 0, 0, 0, 0, loc)
}

// leadingInt parses the optionally signed run of digits at the start of s,
// returning 0 when there is none.
func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
