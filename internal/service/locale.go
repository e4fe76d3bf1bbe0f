package service

import (
	"strings"

	"golang.org/x/text/language"
)

// Gateway locale values.
const (
	LocaleVietnamese = "vn"
	LocaleEnglish    = "en"
)

var localeMatcher = language.NewMatcher([]language.Tag{
	language.Vietnamese,
	language.English,
})

// ResolveLocale maps a caller-supplied language to a vnp_Locale value.
// "vn" and "en" pass through; other BCP 47 tags ("vi-VN", "en-US") are
// matched against the two supported languages. Empty or unparseable input
// yields fallback.
func ResolveLocale(requested, fallback string) string {
	requested = strings.TrimSpace(requested)
	switch strings.ToLower(requested) {
	case "":
		return fallback
	case LocaleVietnamese:
		return LocaleVietnamese
	case LocaleEnglish:
		return LocaleEnglish
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return fallback
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return fallback
	}
	if idx == 1 {
		return LocaleEnglish
	}
	return LocaleVietnamese
}
