// Derived from CLDR supplemental weekData. DO NOT EDIT by hand; regenerate
// when updating the CLDR release.

package locale

const (
	isoMonday   = 1
	isoFriday   = 5
	isoSaturday = 6
	isoSunday   = 7
)

// firstDayByTerritory maps a territory code to the ISO weekday its weeks
// start on. Territories absent from the map use the CLDR default (Monday).
var firstDayByTerritory = map[string]int{
	// firstDay="sun"
	"AG": isoSunday, "AS": isoSunday, "AU": isoSunday, "BD": isoSunday,
	"BR": isoSunday, "BS": isoSunday, "BT": isoSunday, "BW": isoSunday,
	"BZ": isoSunday, "CA": isoSunday, "CN": isoSunday, "CO": isoSunday,
	"DM": isoSunday, "DO": isoSunday, "ET": isoSunday, "GT": isoSunday,
	"GU": isoSunday, "HK": isoSunday, "HN": isoSunday, "ID": isoSunday,
	"IL": isoSunday, "IN": isoSunday, "JM": isoSunday, "JP": isoSunday,
	"KE": isoSunday, "KH": isoSunday, "KR": isoSunday, "LA": isoSunday,
	"MH": isoSunday, "MM": isoSunday, "MO": isoSunday, "MT": isoSunday,
	"MX": isoSunday, "MZ": isoSunday, "NI": isoSunday, "NP": isoSunday,
	"PA": isoSunday, "PE": isoSunday, "PH": isoSunday, "PK": isoSunday,
	"PR": isoSunday, "PT": isoSunday, "PY": isoSunday, "SA": isoSunday,
	"SG": isoSunday, "SV": isoSunday, "TH": isoSunday, "TT": isoSunday,
	"TW": isoSunday, "UM": isoSunday, "US": isoSunday, "VE": isoSunday,
	"VI": isoSunday, "WS": isoSunday, "YE": isoSunday, "ZA": isoSunday,
	"ZW": isoSunday,

	// firstDay="sat"
	"AE": isoSaturday, "AF": isoSaturday, "BH": isoSaturday,
	"DJ": isoSaturday, "DZ": isoSaturday, "EG": isoSaturday,
	"IQ": isoSaturday, "IR": isoSaturday, "JO": isoSaturday,
	"KW": isoSaturday, "LY": isoSaturday, "OM": isoSaturday,
	"QA": isoSaturday, "SD": isoSaturday, "SY": isoSaturday,

	// firstDay="fri"
	"MV": isoFriday,
}
