package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ScheduleState is the outcome of evaluating a weekly schedule at a point in
// time. Unknown means "no usable schedule", which callers treat differently
// from closed.
type ScheduleState int

const (
	ScheduleUnknown ScheduleState = iota
	ScheduleOpen
	ScheduleClosed
)

// Businesses operate on Istanbul wall-clock time. Turkey has no DST, so a
// fixed offset is correct and avoids tzdata lookups.
var businessTimezone = time.FixedZone("UTC+3", 3*60*60)

var weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

type scheduleDay struct {
	Closed bool    `json:"closed"`
	Open   *string `json:"open"`
	Close  *string `json:"close"`
}

// EvaluateWorkingHours decides whether a business's weekly schedule puts it
// open at the given instant.
//
// The schedule is a JSON object keyed by lowercase three-letter weekday codes
// ("mon".."sun"); each day is either {"closed": true} or an
// {"open": "HH:MM", "close": "HH:MM"} window. Open equal to close means open
// all day; open after close is an overnight window crossing midnight.
//
// A missing, empty or unparseable schedule is ScheduleUnknown. A parseable
// schedule with no usable entry for today is ScheduleClosed. An empty object
// "{}" counts as no schedule at all rather than closed every day, so the
// manual open flag stays in charge until a real schedule is saved.
func EvaluateWorkingHours(raw string, now time.Time) ScheduleState {
	if strings.TrimSpace(raw) == "" {
		return ScheduleUnknown
	}

	var week map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &week); err != nil || len(week) == 0 {
		return ScheduleUnknown
	}

	local := now.In(businessTimezone)
	entry, ok := week[weekdayKeys[local.Weekday()]]
	if !ok {
		return ScheduleClosed
	}

	var day scheduleDay
	if err := json.Unmarshal(entry, &day); err != nil {
		return ScheduleClosed
	}
	if day.Closed {
		return ScheduleClosed
	}
	if day.Open == nil || day.Close == nil {
		return ScheduleClosed
	}

	openMins, ok := parseClock(*day.Open)
	if !ok {
		return ScheduleClosed
	}
	closeMins, ok := parseClock(*day.Close)
	if !ok {
		return ScheduleClosed
	}

	nowMins := local.Hour()*60 + local.Minute()

	switch {
	case openMins == closeMins:
		// open all day
		return ScheduleOpen
	case openMins < closeMins:
		if nowMins >= openMins && nowMins < closeMins {
			return ScheduleOpen
		}
		return ScheduleClosed
	default:
		// overnight window crossing midnight
		if nowMins >= openMins || nowMins < closeMins {
			return ScheduleOpen
		}
		return ScheduleClosed
	}
}

// parseClock parses "HH:MM" into minutes since midnight
func parseClock(value string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// ResolveOpenStatus merges the owner's manual toggle with the schedule into
// the effective open state shown to customers. An unset toggle counts as
// open; when the schedule is unusable the toggle alone decides.
func ResolveOpenStatus(manual *bool, workingHours *string, now time.Time) bool {
	effective := true
	if manual != nil {
		effective = *manual
	}

	raw := ""
	if workingHours != nil {
		raw = *workingHours
	}
	switch EvaluateWorkingHours(raw, now) {
	case ScheduleUnknown:
		return effective
	case ScheduleOpen:
		return effective
	default:
		return false
	}
}
