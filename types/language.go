package types

import (
	"fmt"
	"strings"
)

// Language is the locale used for textual fields such as weather descriptions.
type Language string

const (
	LanguageAfrikaans          Language = "af"
	LanguageAlbanian           Language = "al"
	LanguageArabic             Language = "ar"
	LanguageAzerbaijani        Language = "az"
	LanguageBulgarian          Language = "bg"
	LanguageCatalan            Language = "ca"
	LanguageCzech              Language = "cz"
	LanguageDanish             Language = "da"
	LanguageGerman             Language = "de"
	LanguageGreek              Language = "el"
	LanguageEnglish            Language = "en"
	LanguageBasque             Language = "eu"
	LanguagePersian            Language = "fa"
	LanguageFinnish            Language = "fi"
	LanguageFrench             Language = "fr"
	LanguageGalician           Language = "gl"
	LanguageHebrew             Language = "he"
	LanguageHindi              Language = "hi"
	LanguageCroatian           Language = "hr"
	LanguageHungarian          Language = "hu"
	LanguageIndonesian         Language = "id"
	LanguageItalian            Language = "it"
	LanguageJapanese           Language = "ja"
	LanguageKorean             Language = "kr"
	LanguageLatvian            Language = "la"
	LanguageLithuanian         Language = "lt"
	LanguageMacedonian         Language = "mk"
	LanguageNorwegian          Language = "no"
	LanguageDutch              Language = "nl"
	LanguagePolish             Language = "pl"
	LanguagePortuguese         Language = "pt"
	LanguagePortugueseBrazil   Language = "pt_br"
	LanguageRomanian           Language = "ro"
	LanguageRussian            Language = "ru"
	LanguageSwedish            Language = "sv"
	LanguageSlovak             Language = "sk"
	LanguageSlovenian          Language = "sl"
	LanguageSpanish            Language = "sp"
	LanguageSerbian            Language = "sr"
	LanguageThai               Language = "th"
	LanguageTurkish            Language = "tr"
	LanguageUkrainian          Language = "ua"
	LanguageVietnamese         Language = "vi"
	LanguageChineseSimplified  Language = "zh_cn"
	LanguageChineseTraditional Language = "zh_tw"
	LanguageZulu               Language = "zu"
)

var languages = map[Language]string{
	LanguageAfrikaans:          "Afrikaans",
	LanguageAlbanian:           "Albanian",
	LanguageArabic:             "Arabic",
	LanguageAzerbaijani:        "Azerbaijani",
	LanguageBulgarian:          "Bulgarian",
	LanguageCatalan:            "Catalan",
	LanguageCzech:              "Czech",
	LanguageDanish:             "Danish",
	LanguageGerman:             "German",
	LanguageGreek:              "Greek",
	LanguageEnglish:            "English",
	LanguageBasque:             "Basque",
	LanguagePersian:            "Persian (Farsi)",
	LanguageFinnish:            "Finnish",
	LanguageFrench:             "French",
	LanguageGalician:           "Galician",
	LanguageHebrew:             "Hebrew",
	LanguageHindi:              "Hindi",
	LanguageCroatian:           "Croatian",
	LanguageHungarian:          "Hungarian",
	LanguageIndonesian:         "Indonesian",
	LanguageItalian:            "Italian",
	LanguageJapanese:           "Japanese",
	LanguageKorean:             "Korean",
	LanguageLatvian:            "Latvian",
	LanguageLithuanian:         "Lithuanian",
	LanguageMacedonian:         "Macedonian",
	LanguageNorwegian:          "Norwegian",
	LanguageDutch:              "Dutch",
	LanguagePolish:             "Polish",
	LanguagePortuguese:         "Portuguese",
	LanguagePortugueseBrazil:   "Português Brasil",
	LanguageRomanian:           "Romanian",
	LanguageRussian:            "Russian",
	LanguageSwedish:            "Swedish",
	LanguageSlovak:             "Slovak",
	LanguageSlovenian:          "Slovenian",
	LanguageSpanish:            "Spanish",
	LanguageSerbian:            "Serbian",
	LanguageThai:               "Thai",
	LanguageTurkish:            "Turkish",
	LanguageUkrainian:          "Ukrainian",
	LanguageVietnamese:         "Vietnamese",
	LanguageChineseSimplified:  "Chinese Simplified",
	LanguageChineseTraditional: "Chinese Traditional",
	LanguageZulu:               "Zulu",
}

func (l Language) IsValid() bool {
	_, ok := languages[l]
	return ok
}

// Name returns the English display name, or "" for unknown codes.
func (l Language) Name() string {
	return languages[l]
}

// ParseLanguage resolves a language code. An empty string maps to English.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LanguageEnglish, nil
	}
	l := Language(strings.ReplaceAll(s, "-", "_"))
	if !l.IsValid() {
		return "", fmt.Errorf("unknown language %q", s)
	}
	return l, nil
}
