package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en-US", Normalize("en_US"))
	assert.Equal(t, "en-US", Normalize("en_us"))
	assert.Equal(t, "tr", Normalize(" tr "))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "not a tag", Normalize("not a tag"))
}

func TestIsSupported(t *testing.T) {
	src := NewCLDRSource()

	assert.True(t, src.IsSupported("en"))
	assert.True(t, src.IsSupported("en_US"))
	assert.True(t, src.IsSupported("tr_TR"))
	assert.False(t, src.IsSupported("en_ZZ"))
	assert.False(t, src.IsSupported("xx"))
	assert.False(t, src.IsSupported(""))
}

func TestFirstDayOfWeek(t *testing.T) {
	src := NewCLDRSource()
	// A Monday.
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, src.FirstDayOfWeek("en_US", now), "US weeks start on Sunday")
	assert.Equal(t, 1, src.FirstDayOfWeek("tr_TR", now), "Turkish weeks start on Monday")
	assert.Equal(t, 1, src.FirstDayOfWeek("de_DE", now))
	assert.Equal(t, 6, src.FirstDayOfWeek("ar_EG", now), "Egyptian weeks start on Saturday")
	// Bare languages resolve through their likely territory.
	assert.Equal(t, 7, src.FirstDayOfWeek("en", now))
	assert.Equal(t, 7, src.FirstDayOfWeek("ja", now))
	// Unparseable input keeps the CLDR default.
	assert.Equal(t, 1, src.FirstDayOfWeek("???", now))
}

func TestFirstDayOfWeekStableAcrossTheWeek(t *testing.T) {
	src := NewCLDRSource()
	for day := 15; day < 22; day++ {
		now := time.Date(2024, 7, day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 7, src.FirstDayOfWeek("en_US", now), "day %d", day)
	}
}

func TestFormatPercent(t *testing.T) {
	src := NewCLDRSource()

	assert.Equal(t, "25%", src.FormatPercent("en_US", 25))
	assert.Equal(t, "%25", src.FormatPercent("tr_TR", 25))
}

func TestIsoWeekday(t *testing.T) {
	assert.Equal(t, 1, isoWeekday(time.Monday))
	assert.Equal(t, 6, isoWeekday(time.Saturday))
	assert.Equal(t, 7, isoWeekday(time.Sunday))
}
