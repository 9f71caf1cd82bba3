package analyzer

import "time"

// idMilestone is one calibration point: accounts with an ID strictly below
// UpperBound are assumed to have been created no later than Date.
type idMilestone struct {
	UpperBound int64
	Year       int
	Month      time.Month
	Day        int
}

// idMilestones maps identifier growth to known platform rollout milestones,
// strictly ascending by UpperBound. IDs are allocated monotonically, so the
// first milestone whose bound exceeds an ID brackets its creation date.
var idMilestones = []idMilestone{
	{1_000, 2013, time.August, 14},          // early beta users
	{10_000, 2013, time.September, 15},      // beta expansion
	{100_000, 2013, time.November, 1},       // public beta
	{1_000_000, 2014, time.March, 1},        // early 2014
	{10_000_000, 2015, time.June, 1},        // mid 2015
	{50_000_000, 2016, time.June, 1},        // mid 2016
	{100_000_000, 2017, time.January, 1},    // early 2017
	{200_000_000, 2017, time.August, 1},     // mid 2017
	{400_000_000, 2018, time.June, 1},       // mid 2018
	{600_000_000, 2019, time.March, 1},      // early 2019
	{800_000_000, 2019, time.September, 1},  // late 2019
	{1_000_000_000, 2020, time.March, 1},    // early 2020
	{1_200_000_000, 2020, time.August, 1},   // mid 2020
	{1_400_000_000, 2021, time.January, 1},  // early 2021
	{1_600_000_000, 2021, time.June, 1},     // mid 2021
	{1_800_000_000, 2022, time.January, 1},  // early 2022
	{2_000_000_000, 2022, time.June, 1},     // mid 2022
	{2_200_000_000, 2023, time.January, 1},  // early 2023
	{2_400_000_000, 2023, time.June, 1},     // mid 2023
	{2_600_000_000, 2024, time.January, 1},  // early 2024
}

// newestMilestone is the catch-all for IDs beyond every calibration point.
// It means "at least this recent", not a precise estimate.
var newestMilestone = idMilestone{Year: 2024, Month: time.June, Day: 1}

// regionByLanguage maps a lowercase two-letter language tag to a likely
// country or linguistic region. Labels are display strings, never ISO codes.
var regionByLanguage = map[string]string{
	"en": "English Speaking Region",
	"ru": "Russia/CIS Countries",
	"es": "Spain/Latin America",
	"pt": "Portugal/Brazil",
	"fr": "France/Francophone Countries",
	"de": "Germany/DACH Region",
	"it": "Italy",
	"tr": "Turkey",
	"ar": "Arabic Speaking Countries",
	"fa": "Iran/Persian Speaking",
	"hi": "India/Hindi Speaking",
	"zh": "China/Chinese Speaking",
	"ja": "Japan",
	"ko": "South Korea",
	"uk": "Ukraine",
	"pl": "Poland",
	"nl": "Netherlands",
	"sv": "Sweden",
	"da": "Denmark",
	"no": "Norway",
	"fi": "Finland",
	"cs": "Czech Republic",
	"hu": "Hungary",
	"ro": "Romania",
	"bg": "Bulgaria",
	"hr": "Croatia",
	"sk": "Slovakia",
	"sl": "Slovenia",
	"et": "Estonia",
	"lv": "Latvia",
	"lt": "Lithuania",
	"el": "Greece",
	"he": "Israel",
	"th": "Thailand",
	"vi": "Vietnam",
	"id": "Indonesia",
	"ms": "Malaysia",
	"tl": "Philippines",
	"bn": "Bangladesh/Bengal",
	"ur": "Pakistan/Urdu Speaking",
	"ta": "Tamil Speaking Regions",
	"te": "Telugu Speaking Regions",
	"ml": "Malayalam Speaking Regions",
	"kn": "Kannada Speaking Regions",
	"gu": "Gujarati Speaking Regions",
	"pa": "Punjabi Speaking Regions",
	"ne": "Nepal",
	"si": "Sri Lanka",
	"my": "Myanmar",
	"km": "Cambodia",
	"lo": "Laos",
	"ka": "Georgia",
	"hy": "Armenia",
	"az": "Azerbaijan",
	"kk": "Kazakhstan",
	"ky": "Kyrgyzstan",
	"uz": "Uzbekistan",
	"tg": "Tajikistan",
	"tk": "Turkmenistan",
	"mn": "Mongolia",
	"be": "Belarus",
	"mk": "North Macedonia",
	"sq": "Albania",
	"sr": "Serbia",
	"bs": "Bosnia and Herzegovina",
	"me": "Montenegro",
	"is": "Iceland",
	"mt": "Malta",
	"ga": "Ireland",
	"cy": "Wales",
	"gd": "Scotland",
	"eu": "Basque Region",
	"ca": "Catalonia",
	"gl": "Galicia",
	"af": "South Africa/Afrikaans",
	"sw": "East Africa/Swahili",
	"am": "Ethiopia",
	"zu": "South Africa/Zulu",
	"xh": "South Africa/Xhosa",
	"yo": "Nigeria/Yoruba",
	"ig": "Nigeria/Igbo",
	"ha": "West Africa/Hausa",
}

// countryByCallingCode maps an international calling-code prefix (1–3 digits,
// as a string of digits) to a country label. Prefixes of different lengths
// can share leading digits ("1" vs "962"), so lookups must try the longest
// prefix first.
var countryByCallingCode = map[string]string{
	"1":   "USA/Canada",
	"7":   "Russia/Kazakhstan",
	"20":  "Egypt",
	"27":  "South Africa",
	"30":  "Greece",
	"31":  "Netherlands",
	"32":  "Belgium",
	"33":  "France",
	"34":  "Spain",
	"36":  "Hungary",
	"39":  "Italy",
	"40":  "Romania",
	"41":  "Switzerland",
	"43":  "Austria",
	"44":  "United Kingdom",
	"45":  "Denmark",
	"46":  "Sweden",
	"47":  "Norway",
	"48":  "Poland",
	"49":  "Germany",
	"51":  "Peru",
	"52":  "Mexico",
	"53":  "Cuba",
	"54":  "Argentina",
	"55":  "Brazil",
	"56":  "Chile",
	"57":  "Colombia",
	"58":  "Venezuela",
	"60":  "Malaysia",
	"61":  "Australia",
	"62":  "Indonesia",
	"63":  "Philippines",
	"64":  "New Zealand",
	"65":  "Singapore",
	"66":  "Thailand",
	"81":  "Japan",
	"82":  "South Korea",
	"84":  "Vietnam",
	"86":  "China",
	"90":  "Turkey",
	"91":  "India",
	"92":  "Pakistan",
	"93":  "Afghanistan",
	"94":  "Sri Lanka",
	"95":  "Myanmar",
	"98":  "Iran",
	"212": "Morocco",
	"213": "Algeria",
	"216": "Tunisia",
	"218": "Libya",
	"220": "Gambia",
	"221": "Senegal",
	"222": "Mauritania",
	"223": "Mali",
	"224": "Guinea",
	"225": "Ivory Coast",
	"226": "Burkina Faso",
	"227": "Niger",
	"228": "Togo",
	"229": "Benin",
	"230": "Mauritius",
	"231": "Liberia",
	"232": "Sierra Leone",
	"233": "Ghana",
	"234": "Nigeria",
	"235": "Chad",
	"236": "Central African Republic",
	"237": "Cameroon",
	"238": "Cape Verde",
	"239": "São Tomé and Príncipe",
	"240": "Equatorial Guinea",
	"241": "Gabon",
	"242": "Republic of the Congo",
	"243": "Democratic Republic of the Congo",
	"244": "Angola",
	"245": "Guinea-Bissau",
	"246": "British Indian Ocean Territory",
	"248": "Seychelles",
	"249": "Sudan",
	"250": "Rwanda",
	"251": "Ethiopia",
	"252": "Somalia",
	"253": "Djibouti",
	"254": "Kenya",
	"255": "Tanzania",
	"256": "Uganda",
	"257": "Burundi",
	"258": "Mozambique",
	"260": "Zambia",
	"261": "Madagascar",
	"262": "Réunion",
	"263": "Zimbabwe",
	"264": "Namibia",
	"265": "Malawi",
	"266": "Lesotho",
	"267": "Botswana",
	"268": "Eswatini",
	"269": "Comoros",
	"290": "Saint Helena",
	"291": "Eritrea",
	"297": "Aruba",
	"298": "Faroe Islands",
	"299": "Greenland",
	"350": "Gibraltar",
	"351": "Portugal",
	"352": "Luxembourg",
	"353": "Ireland",
	"354": "Iceland",
	"355": "Albania",
	"356": "Malta",
	"357": "Cyprus",
	"358": "Finland",
	"359": "Bulgaria",
	"370": "Lithuania",
	"371": "Latvia",
	"372": "Estonia",
	"373": "Moldova",
	"374": "Armenia",
	"375": "Belarus",
	"376": "Andorra",
	"377": "Monaco",
	"378": "San Marino",
	"380": "Ukraine",
	"381": "Serbia",
	"382": "Montenegro",
	"383": "Kosovo",
	"385": "Croatia",
	"386": "Slovenia",
	"387": "Bosnia and Herzegovina",
	"389": "North Macedonia",
	"420": "Czech Republic",
	"421": "Slovakia",
	"423": "Liechtenstein",
	"500": "Falkland Islands",
	"501": "Belize",
	"502": "Guatemala",
	"503": "El Salvador",
	"504": "Honduras",
	"505": "Nicaragua",
	"506": "Costa Rica",
	"507": "Panama",
	"508": "Saint Pierre and Miquelon",
	"509": "Haiti",
	"590": "Guadeloupe",
	"591": "Bolivia",
	"592": "Guyana",
	"593": "Ecuador",
	"594": "French Guiana",
	"595": "Paraguay",
	"596": "Martinique",
	"597": "Suriname",
	"598": "Uruguay",
	"599": "Netherlands Antilles",
	"670": "East Timor",
	"672": "Australian External Territories",
	"673": "Brunei",
	"674": "Nauru",
	"675": "Papua New Guinea",
	"676": "Tonga",
	"677": "Solomon Islands",
	"678": "Vanuatu",
	"679": "Fiji",
	"680": "Palau",
	"681": "Wallis and Futuna",
	"682": "Cook Islands",
	"683": "Niue",
	"684": "American Samoa",
	"685": "Samoa",
	"686": "Kiribati",
	"687": "New Caledonia",
	"688": "Tuvalu",
	"689": "French Polynesia",
	"690": "Tokelau",
	"691": "Federated States of Micronesia",
	"692": "Marshall Islands",
	"850": "North Korea",
	"852": "Hong Kong",
	"853": "Macau",
	"855": "Cambodia",
	"856": "Laos",
	"880": "Bangladesh",
	"886": "Taiwan",
	"960": "Maldives",
	"961": "Lebanon",
	"962": "Jordan",
	"963": "Syria",
	"964": "Iraq",
	"965": "Kuwait",
	"966": "Saudi Arabia",
	"967": "Yemen",
	"968": "Oman",
	"970": "Palestine",
	"971": "United Arab Emirates",
	"972": "Israel",
	"973": "Bahrain",
	"974": "Qatar",
	"975": "Bhutan",
	"976": "Mongolia",
	"977": "Nepal",
	"992": "Tajikistan",
	"993": "Turkmenistan",
	"994": "Azerbaijan",
	"995": "Georgia",
	"996": "Kyrgyzstan",
	"998": "Uzbekistan",
}
