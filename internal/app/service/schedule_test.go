package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// monday returns a Monday at the given wall-clock time in the business zone
func monday(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, businessTimezone)
}

func TestEvaluateWorkingHours_UnusableSchedules(t *testing.T) {
	now := monday(12, 0)

	assert.Equal(t, ScheduleUnknown, EvaluateWorkingHours("", now))
	assert.Equal(t, ScheduleUnknown, EvaluateWorkingHours("   ", now))
	assert.Equal(t, ScheduleUnknown, EvaluateWorkingHours("not json", now))
	assert.Equal(t, ScheduleUnknown, EvaluateWorkingHours("{}", now))
}

func TestEvaluateWorkingHours_MissingDayIsClosed(t *testing.T) {
	schedule := `{"tue":{"open":"09:00","close":"18:00"}}`
	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(schedule, monday(12, 0)))
}

func TestEvaluateWorkingHours_ClosedDay(t *testing.T) {
	schedule := `{"mon":{"closed":true}}`
	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(schedule, monday(12, 0)))
}

func TestEvaluateWorkingHours_MalformedTimesAreClosed(t *testing.T) {
	now := monday(12, 0)

	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(`{"mon":{"open":"09:00"}}`, now))
	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(`{"mon":{"open":"9am","close":"18:00"}}`, now))
	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(`{"mon":{"open":"25:00","close":"18:00"}}`, now))
	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(`{"mon":{"open":"09:61","close":"18:00"}}`, now))
}

func TestEvaluateWorkingHours_EqualTimesMeanOpenAllDay(t *testing.T) {
	schedule := `{"mon":{"open":"09:00","close":"09:00"}}`

	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, monday(0, 0)))
	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, monday(9, 0)))
	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, monday(23, 59)))
}

func TestEvaluateWorkingHours_SameDayWindow(t *testing.T) {
	schedule := `{"mon":{"open":"09:00","close":"22:00"}}`

	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(schedule, monday(8, 59)))
	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, monday(9, 0)))
	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, monday(10, 0)))
	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, monday(21, 59)))
	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(schedule, monday(22, 0)))
	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(schedule, monday(23, 0)))
}

func TestEvaluateWorkingHours_OvernightWindow(t *testing.T) {
	schedule := `{"mon":{"open":"22:00","close":"02:00"}}`

	// at the open minute it is open, at the close minute it is closed
	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, monday(22, 0)))
	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(schedule, monday(2, 0)))

	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, monday(23, 30)))
	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, monday(1, 59)))
	assert.Equal(t, ScheduleClosed, EvaluateWorkingHours(schedule, monday(12, 0)))
}

func TestEvaluateWorkingHours_UsesBusinessTimezone(t *testing.T) {
	schedule := `{"mon":{"open":"09:00","close":"22:00"}}`

	// 07:00 UTC is 10:00 in the business zone
	utcMorning := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, ScheduleOpen, EvaluateWorkingHours(schedule, utcMorning))
}

func TestResolveOpenStatus_ManualFalseWinsAlways(t *testing.T) {
	manual := false
	schedule := `{"mon":{"open":"00:00","close":"00:00"}}`

	assert.False(t, ResolveOpenStatus(&manual, &schedule, monday(12, 0)))
	assert.False(t, ResolveOpenStatus(&manual, nil, monday(12, 0)))
}

func TestResolveOpenStatus_UnsetManualCountsAsOpen(t *testing.T) {
	assert.True(t, ResolveOpenStatus(nil, nil, monday(12, 0)))
}

func TestResolveOpenStatus_ManualTrueWithoutScheduleIsOpen(t *testing.T) {
	manual := true
	assert.True(t, ResolveOpenStatus(&manual, nil, monday(3, 0)))
}

func TestResolveOpenStatus_ScheduleDecidesWhenManualOpen(t *testing.T) {
	manual := true
	schedule := `{"mon":{"open":"09:00","close":"22:00"}}`

	assert.True(t, ResolveOpenStatus(&manual, &schedule, monday(10, 0)))
	assert.False(t, ResolveOpenStatus(&manual, &schedule, monday(23, 0)))
}
