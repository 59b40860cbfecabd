package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidClockTime(t *testing.T) {
	t.Parallel()

	valid := []string{"00:00", "09:00", "18:30", "23:59"}
	for _, s := range valid {
		assert.True(t, IsValidClockTime(s), s)
	}

	invalid := []string{"", "24:00", "9:00", "09:60", "09-00", "0900", "09:00:00"}
	for _, s := range invalid {
		assert.False(t, IsValidClockTime(s), s)
	}
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2026-02-28")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("28-02-2026")
	assert.False(t, ok)
}

func TestLatLonRange(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidLatitude(-6.2))
	assert.True(t, IsValidLongitude(106.8))
	assert.False(t, IsValidLatitude(91))
	assert.False(t, IsValidLongitude(-181))
}
