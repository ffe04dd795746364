package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	{
		ct, err := ParseClockTime("13:45")
		assert.Nil(t, err)
		assert.Equal(t, 13, ct.Hour)
		assert.Equal(t, 45, ct.Minute)
	}
	{
		ct, err := ParseClockTime("00:05")
		assert.Nil(t, err)
		assert.Equal(t, 0, ct.Hour)
		assert.Equal(t, 5, ct.Minute)
	}
	{
		ct, err := ParseClockTime("9:05")
		assert.Nil(t, err)
		assert.Equal(t, 9, ct.Hour)
	}
}

func TestParseClockTimeMeridiem(t *testing.T) {
	{
		ct, err := ParseClockTime("12:00 AM")
		assert.Nil(t, err)
		assert.Equal(t, 0, ct.Hour)
	}
	{
		ct, err := ParseClockTime("12:00 PM")
		assert.Nil(t, err)
		assert.Equal(t, 12, ct.Hour)
	}
	{
		ct, err := ParseClockTime("1:00 PM")
		assert.Nil(t, err)
		assert.Equal(t, 13, ct.Hour)
	}
	{
		ct, err := ParseClockTime("11:59 pm")
		assert.Nil(t, err)
		assert.Equal(t, 23, ct.Hour)
		assert.Equal(t, 59, ct.Minute)
	}
	{
		// marker does not have to sit next to the digits
		ct, err := ParseClockTime("exam at 1:30 in the PM slot")
		assert.Nil(t, err)
		assert.Equal(t, 13, ct.Hour)
	}
}

func TestParseClockTimeUnparseable(t *testing.T) {
	{
		_, err := ParseClockTime("")
		assert.Equal(t, ErrUnparseableTime, err)
	}
	{
		_, err := ParseClockTime("noon")
		assert.Equal(t, ErrUnparseableTime, err)
	}
	{
		_, err := ParseClockTime("25:00")
		assert.Equal(t, ErrUnparseableTime, err)
	}
	{
		_, err := ParseClockTime("13:00 PM")
		assert.Equal(t, ErrUnparseableTime, err)
	}
}

func TestParseClockTimeMinutePassThrough(t *testing.T) {
	// minutes 60-99 are carried as matched, not rejected
	ct, err := ParseClockTime("10:75")
	assert.Nil(t, err)
	assert.Equal(t, 10, ct.Hour)
	assert.Equal(t, 75, ct.Minute)
}

func TestMinuteOfDay(t *testing.T) {
	{
		ct := ClockTime{Hour: 13, Minute: 45}
		assert.Equal(t, 825, ct.MinuteOfDay())
	}
	{
		ct := ClockTime{}
		assert.Equal(t, 0, ct.MinuteOfDay())
	}
}
