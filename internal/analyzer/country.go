package analyzer

import (
	"strings"

	"github.com/accountlens/accountlens/internal/models"
)

// UnknownRegionLabel is the single sentinel label returned when neither the
// language tag nor the phone number resolves to a region. Absent input and
// unrecognized input deliberately share it; the Source field is the only
// distinction callers get.
const UnknownRegionLabel = "Unknown"

// EstimateCountry infers a region label from an optional language tag and an
// optional phone string. The lookups run as an ordered pipeline:
//
//  1. language tag, lowercased, against the language→region table
//  2. phone digits, prefix lengths 3 then 2 then 1, against the calling-code table
//  3. the unknown sentinel
//
// A language match short-circuits the phone lookup. Longest-prefix-first is
// required because a 1-digit code and an unrelated 3-digit code can share a
// leading digit.
func EstimateCountry(langCode, phone string) models.CountryEstimate {
	if label, ok := regionFromLanguage(langCode); ok {
		return models.CountryEstimate{Label: label, Source: models.SourceLanguage}
	}
	if label, ok := countryFromPhone(phone); ok {
		return models.CountryEstimate{Label: label, Source: models.SourcePhone}
	}
	return models.CountryEstimate{Label: UnknownRegionLabel, Source: models.SourceUnknown}
}

func regionFromLanguage(langCode string) (string, bool) {
	if langCode == "" {
		return "", false
	}
	label, ok := regionByLanguage[strings.ToLower(langCode)]
	return label, ok
}

func countryFromPhone(phone string) (string, bool) {
	digits := digitsOnly(phone)
	if digits == "" {
		return "", false
	}
	for _, length := range []int{3, 2, 1} {
		if len(digits) < length {
			continue
		}
		if label, ok := countryByCallingCode[digits[:length]]; ok {
			return label, true
		}
	}
	return "", false
}

// digitsOnly strips every non-digit rune from a phone string.
func digitsOnly(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
