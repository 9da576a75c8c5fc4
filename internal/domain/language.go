package domain

import (
	"fmt"
	"strings"
)

// Language is one of the supported translation languages
type Language string

const (
	RU Language = "RU"
	EN Language = "EN"
)

// Languages lists all supported languages in a fixed order
var Languages = []Language{RU, EN}

// providerCodes maps a language to its code in AWS Translate
var providerCodes = map[Language]string{
	RU: "ru",
	EN: "en",
}

// Code returns the provider-specific language code
func (l Language) Code() string {
	return providerCodes[l]
}

// String returns the language name (RU, EN)
func (l Language) String() string {
	return string(l)
}

// ParseLanguage converts a language name into a Language
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := providerCodes[l]; !ok {
		return "", fmt.Errorf("unknown language %q", s)
	}
	return l, nil
}

// LanguagePair is an ordered (source, target) combination offered for translation
type LanguagePair struct {
	Source Language
	Target Language
}

// String returns the pair in SRC_TGT form
func (p LanguagePair) String() string {
	return p.Source.String() + "_" + p.Target.String()
}

// ParseLanguagePair converts a SRC_TGT string into a LanguagePair
func ParseLanguagePair(s string) (LanguagePair, error) {
	src, tgt, found := strings.Cut(s, "_")
	if !found {
		return LanguagePair{}, fmt.Errorf("invalid language pair %q", s)
	}

	source, err := ParseLanguage(src)
	if err != nil {
		return LanguagePair{}, fmt.Errorf("invalid language pair %q: %w", s, err)
	}
	target, err := ParseLanguage(tgt)
	if err != nil {
		return LanguagePair{}, fmt.Errorf("invalid language pair %q: %w", s, err)
	}
	if source == target {
		return LanguagePair{}, fmt.Errorf("invalid language pair %q: source equals target", s)
	}

	return LanguagePair{Source: source, Target: target}, nil
}

// LanguagePairs returns all ordered pairs of distinct supported
// languages, used to populate the language selection keyboard
func LanguagePairs() []LanguagePair {
	pairs := make([]LanguagePair, 0, len(Languages)*(len(Languages)-1))
	for _, source := range Languages {
		for _, target := range Languages {
			if source == target {
				continue
			}
			pairs = append(pairs, LanguagePair{Source: source, Target: target})
		}
	}
	return pairs
}
