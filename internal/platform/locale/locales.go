// Derived from CLDR modern coverage locales. DO NOT EDIT by hand; regenerate
// when updating the CLDR release.

package locale

// supportedLocales is the set of identifiers the source has data for, in
// canonical BCP 47 form.
var supportedLocales = map[string]struct{}{
	"af": {}, "af-ZA": {},
	"am": {}, "am-ET": {},
	"ar": {}, "ar-AE": {}, "ar-BH": {}, "ar-DZ": {}, "ar-EG": {},
	"ar-IQ": {}, "ar-JO": {}, "ar-KW": {}, "ar-LY": {}, "ar-MA": {},
	"ar-OM": {}, "ar-QA": {}, "ar-SA": {}, "ar-SY": {}, "ar-TN": {},
	"ar-YE": {},
	"az": {}, "az-AZ": {},
	"be": {}, "be-BY": {},
	"bg": {}, "bg-BG": {},
	"bn": {}, "bn-BD": {}, "bn-IN": {},
	"bs": {}, "bs-BA": {},
	"ca": {}, "ca-ES": {},
	"cs": {}, "cs-CZ": {},
	"cy": {}, "cy-GB": {},
	"da": {}, "da-DK": {},
	"de": {}, "de-AT": {}, "de-CH": {}, "de-DE": {}, "de-LI": {}, "de-LU": {},
	"el": {}, "el-CY": {}, "el-GR": {},
	"en": {}, "en-AU": {}, "en-CA": {}, "en-GB": {}, "en-HK": {},
	"en-IE": {}, "en-IN": {}, "en-KE": {}, "en-NG": {}, "en-NZ": {},
	"en-PH": {}, "en-SG": {}, "en-US": {}, "en-ZA": {},
	"es": {}, "es-AR": {}, "es-BO": {}, "es-CL": {}, "es-CO": {},
	"es-CR": {}, "es-DO": {}, "es-EC": {}, "es-ES": {}, "es-GT": {},
	"es-HN": {}, "es-MX": {}, "es-NI": {}, "es-PA": {}, "es-PE": {},
	"es-PR": {}, "es-PY": {}, "es-SV": {}, "es-US": {}, "es-UY": {},
	"es-VE": {},
	"et": {}, "et-EE": {},
	"eu": {}, "eu-ES": {},
	"fa": {}, "fa-IR": {},
	"fi": {}, "fi-FI": {},
	"fil": {}, "fil-PH": {},
	"fr": {}, "fr-BE": {}, "fr-CA": {}, "fr-CH": {}, "fr-FR": {},
	"fr-LU": {}, "fr-MA": {},
	"ga": {}, "ga-IE": {},
	"gl": {}, "gl-ES": {},
	"gu": {}, "gu-IN": {},
	"he": {}, "he-IL": {},
	"hi": {}, "hi-IN": {},
	"hr": {}, "hr-HR": {},
	"hu": {}, "hu-HU": {},
	"hy": {}, "hy-AM": {},
	"id": {}, "id-ID": {},
	"is": {}, "is-IS": {},
	"it": {}, "it-CH": {}, "it-IT": {},
	"ja": {}, "ja-JP": {},
	"ka": {}, "ka-GE": {},
	"kk": {}, "kk-KZ": {},
	"km": {}, "km-KH": {},
	"kn": {}, "kn-IN": {},
	"ko": {}, "ko-KR": {},
	"lo": {}, "lo-LA": {},
	"lt": {}, "lt-LT": {},
	"lv": {}, "lv-LV": {},
	"mk": {}, "mk-MK": {},
	"ml": {}, "ml-IN": {},
	"mn": {}, "mn-MN": {},
	"mr": {}, "mr-IN": {},
	"ms": {}, "ms-BN": {}, "ms-MY": {},
	"mt": {}, "mt-MT": {},
	"my": {}, "my-MM": {},
	"nb": {}, "nb-NO": {},
	"ne": {}, "ne-NP": {},
	"nl": {}, "nl-BE": {}, "nl-NL": {},
	"pa": {}, "pa-IN": {},
	"pl": {}, "pl-PL": {},
	"pt": {}, "pt-BR": {}, "pt-PT": {},
	"ro": {}, "ro-MD": {}, "ro-RO": {},
	"ru": {}, "ru-BY": {}, "ru-KZ": {}, "ru-RU": {}, "ru-UA": {},
	"si": {}, "si-LK": {},
	"sk": {}, "sk-SK": {},
	"sl": {}, "sl-SI": {},
	"sq": {}, "sq-AL": {},
	"sr": {}, "sr-RS": {},
	"sv": {}, "sv-FI": {}, "sv-SE": {},
	"sw": {}, "sw-KE": {}, "sw-TZ": {},
	"ta": {}, "ta-IN": {}, "ta-LK": {},
	"te": {}, "te-IN": {},
	"th": {}, "th-TH": {},
	"tr": {}, "tr-CY": {}, "tr-TR": {},
	"uk": {}, "uk-UA": {},
	"ur": {}, "ur-IN": {}, "ur-PK": {},
	"uz": {}, "uz-UZ": {},
	"vi": {}, "vi-VN": {},
	"zh": {}, "zh-CN": {}, "zh-HK": {}, "zh-MO": {}, "zh-SG": {}, "zh-TW": {},
	"zu": {}, "zu-ZA": {},
}
