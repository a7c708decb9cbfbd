package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CLDRSource implements Source on top of golang.org/x/text and the
// CLDR-derived tables in this package.
type CLDRSource struct{}

// NewCLDRSource returns the CLDR-backed locale source.
func NewCLDRSource() *CLDRSource {
	return &CLDRSource{}
}

// Normalize converts identifiers like "en_us" into the canonical "en-US"
// form used by the tables and by golang.org/x/text.
func Normalize(id string) string {
	id = strings.TrimSpace(strings.ReplaceAll(id, "_", "-"))
	if id == "" {
		return ""
	}
	tag, err := language.Parse(id)
	if err != nil {
		return id
	}
	return tag.String()
}

// IsSupported reports whether the identifier maps to a known locale.
func (s *CLDRSource) IsSupported(id string) bool {
	_, ok := supportedLocales[Normalize(id)]
	return ok
}

// FirstDayOfWeek walks back from now to the start of the current week under
// the locale's convention and returns that day's ISO weekday number.
func (s *CLDRSource) FirstDayOfWeek(id string, now time.Time) int {
	first := firstDayForLocale(Normalize(id))
	today := isoWeekday(now.Weekday())
	offset := (today - first + 7) % 7
	start := now.AddDate(0, 0, -offset)
	return isoWeekday(start.Weekday())
}

// FormatPercent renders value as a percentage using the locale's CLDR
// percent pattern, so the percent sign lands wherever the locale puts it.
func (s *CLDRSource) FormatPercent(id string, value float64) string {
	tag := language.Make(Normalize(id))
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Percent(value/100))
}

func firstDayForLocale(id string) int {
	tag, err := language.Parse(id)
	if err != nil {
		return isoMonday
	}
	// Region() fills in the likely territory for bare language tags, so
	// "en" resolves to the US convention and "de" to the German one.
	region, _ := tag.Region()
	if day, ok := firstDayByTerritory[region.String()]; ok {
		return day
	}
	return isoMonday
}

func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}
