package rental

import (
	"time"
)

// day truncates t to calendar-day granularity in UTC.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsDateBlocked reports whether date cannot be rented: it is in the past
// (day granularity, relative to now) or its token is in unavailable.
func IsDateBlocked(date time.Time, unavailable map[string]struct{}, now time.Time) bool {
	d := day(date)
	if d.Before(day(now)) {
		return true
	}
	_, ok := unavailable[d.Format(time.DateOnly)]
	return ok
}

// IsRangeBlocked reports whether any day of the inclusive span [from, to]
// is blocked. Short-circuits on the first hit. An inverted range (to before
// from) yields false; rejecting it is the caller's job.
func IsRangeBlocked(from, to time.Time, unavailable map[string]struct{}, now time.Time) bool {
	for d, end := day(from), day(to); !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsDateBlocked(d, unavailable, now) {
			return true
		}
	}
	return false
}

// ExpandRange lists every calendar day of the inclusive span [from, to]
// as "2006-01-02" tokens, in order. A single-day span yields one token.
func ExpandRange(from, to time.Time) []string {
	start, end := day(from), day(to)
	if end.Before(start) {
		return nil
	}
	tokens := make([]string, 0, end.Sub(start)/(24*time.Hour)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		tokens = append(tokens, d.Format(time.DateOnly))
	}
	return tokens
}

// FirstConflict returns the first requested token already present in
// taken, or "" when the whole request is free. The booking commit uses it
// to reject a checkout whose days were taken since the storefront check.
func FirstConflict(requested []string, taken map[string]struct{}) string {
	for _, token := range requested {
		if _, ok := taken[token]; ok {
			return token
		}
	}
	return ""
}

// TokenSet converts a slice of day tokens into a membership set.
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
