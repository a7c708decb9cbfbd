package localization

import "time"

// DateFormat is a date layout a company can pick for display.
type DateFormat string

const (
	DateFormatAbbrev DateFormat = "Jan 2, 2006"
	DateFormatDMY    DateFormat = "02/01/2006"
	DateFormatMDY    DateFormat = "01/02/2006"
	DateFormatYMD    DateFormat = "2006-01-02"
)

// DateFormats lists the selectable date layouts in form order.
var DateFormats = []DateFormat{DateFormatAbbrev, DateFormatDMY, DateFormatMDY, DateFormatYMD}

// Valid reports whether f is one of the selectable layouts.
func (f DateFormat) Valid() bool {
	for _, v := range DateFormats {
		if f == v {
			return true
		}
	}
	return false
}

// TimeFormat is a clock layout a company can pick for display.
type TimeFormat string

const (
	TimeFormat24Hour TimeFormat = "15:04"
	TimeFormat12Hour TimeFormat = "3:04 PM"
)

// TimeFormats lists the selectable clock layouts in form order.
var TimeFormats = []TimeFormat{TimeFormat24Hour, TimeFormat12Hour}

// Valid reports whether f is one of the selectable layouts.
func (f TimeFormat) Valid() bool {
	return f == TimeFormat24Hour || f == TimeFormat12Hour
}

// NumberFormat names a digit-grouping and decimal-separator convention.
type NumberFormat string

const (
	NumberFormatCommaDot   NumberFormat = "comma_dot"   // 1,234.56
	NumberFormatDotComma   NumberFormat = "dot_comma"   // 1.234,56
	NumberFormatSpaceDot   NumberFormat = "space_dot"   // 1 234.56
	NumberFormatSpaceComma NumberFormat = "space_comma" // 1 234,56
)

// NumberFormats lists the selectable conventions in form order.
var NumberFormats = []NumberFormat{NumberFormatCommaDot, NumberFormatDotComma, NumberFormatSpaceDot, NumberFormatSpaceComma}

// Valid reports whether f is one of the selectable conventions.
func (f NumberFormat) Valid() bool {
	for _, v := range NumberFormats {
		if f == v {
			return true
		}
	}
	return false
}

// WeekStart is the ISO weekday a company's weeks begin on.
type WeekStart int

const (
	WeekStartMonday    WeekStart = 1
	WeekStartTuesday   WeekStart = 2
	WeekStartWednesday WeekStart = 3
	WeekStartThursday  WeekStart = 4
	WeekStartFriday    WeekStart = 5
	WeekStartSaturday  WeekStart = 6
	WeekStartSunday    WeekStart = 7

	// DefaultWeekStart is used whenever the calendar source yields a value
	// outside the enum.
	DefaultWeekStart = WeekStartMonday
)

// WeekStarts lists the selectable week starts in form order.
var WeekStarts = []WeekStart{
	WeekStartMonday, WeekStartTuesday, WeekStartWednesday, WeekStartThursday,
	WeekStartFriday, WeekStartSaturday, WeekStartSunday,
}

// WeekStartFromISO maps an ISO weekday number onto the enum, falling back to
// the system default for anything out of range.
func WeekStartFromISO(day int) WeekStart {
	switch day {
	case 1, 2, 3, 4, 5, 6, 7:
		return WeekStart(day)
	default:
		return DefaultWeekStart
	}
}

// Valid reports whether w is a defined enum value.
func (w WeekStart) Valid() bool {
	return w >= WeekStartMonday && w <= WeekStartSunday
}

var weekStartNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w WeekStart) String() string {
	if !w.Valid() {
		return "Unknown"
	}
	return weekStartNames[w-1]
}

// Localization holds one company's localization settings. Exactly one row
// exists per company.
type Localization struct {
	ID                 int64        `json:"id"`
	CompanyID          int64        `json:"company_id"`
	Language           string       `json:"language"`
	Timezone           string       `json:"timezone"`
	DateFormat         DateFormat   `json:"date_format"`
	TimeFormat         TimeFormat   `json:"time_format"`
	FiscalYearEndMonth int          `json:"fiscal_year_end_month"`
	FiscalYearEndDay   int          `json:"fiscal_year_end_day"`
	WeekStart          WeekStart    `json:"week_start"`
	NumberFormat       NumberFormat `json:"number_format"`
	PercentFirst       bool         `json:"percent_first"`
	CreatedBy          int64        `json:"created_by"`
	UpdatedBy          int64        `json:"updated_by"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// Default returns the settings a company starts with before anyone visits
// the localization screen.
func Default(companyID int64) Localization {
	return Localization{
		CompanyID:          companyID,
		Language:           "en",
		Timezone:           "UTC",
		DateFormat:         DateFormatAbbrev,
		TimeFormat:         TimeFormat24Hour,
		FiscalYearEndMonth: 12,
		FiscalYearEndDay:   31,
		WeekStart:          DefaultWeekStart,
		NumberFormat:       NumberFormatCommaDot,
	}
}
