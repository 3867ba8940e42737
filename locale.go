package seqalgo

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
)

// Locale drives case mapping and character classification for the
// case-insensitive and white-space related algorithms.
//
// Locales are immutable after creation and may be shared between goroutines.
type Locale struct {
	tag     language.Tag
	special unicode.SpecialCase // nil if the language has no special casing rules
}

// NewLocale creates a locale from a BCP 47 identifier like "en-US" or "tr".
// POSIX-style identifiers like "de_DE.UTF-8" are accepted as well.
func NewLocale(id string) (*Locale, error) {
	tag, err := language.Parse(normalizeLocaleID(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, id, err)
	}
	return LocaleFromTag(tag), nil
}

// LocaleFromTag creates a locale from a language tag.
func LocaleFromTag(tag language.Tag) *Locale {
	loc := &Locale{tag: tag}
	base, _ := tag.Base()
	switch base.String() {
	case "tr", "az":
		loc.special = unicode.TurkishCase
	}
	return loc
}

var defaultLocale = sync.OnceValue(func() *Locale {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		id := os.Getenv(env)
		if id == "" {
			continue
		}
		if loc, err := NewLocale(id); err == nil {
			T().Debugf("seqalgo: default locale %s from $%s", loc.tag, env)
			return loc
		}
	}
	return LocaleFromTag(language.Und)
})

// DefaultLocale returns the process-wide default locale. It is derived once
// from the environment ($LC_ALL, $LC_CTYPE, $LANG) and does not change
// afterwards.
func DefaultLocale() *Locale {
	return defaultLocale()
}

// localeOrDefault resolves nil to the default locale.
func localeOrDefault(loc *Locale) *Locale {
	if loc == nil {
		return DefaultLocale()
	}
	return loc
}

// Tag returns the language tag of the locale.
func (loc *Locale) Tag() language.Tag {
	return localeOrDefault(loc).tag
}

func (loc *Locale) String() string {
	return loc.Tag().String()
}

// ToUpper maps r to upper case, respecting special casing rules of the locale.
func (loc *Locale) ToUpper(r rune) rune {
	loc = localeOrDefault(loc)
	if loc.special != nil {
		return loc.special.ToUpper(r)
	}
	return unicode.ToUpper(r)
}

// ToLower maps r to lower case, respecting special casing rules of the locale.
func (loc *Locale) ToLower(r rune) rune {
	loc = localeOrDefault(loc)
	if loc.special != nil {
		return loc.special.ToLower(r)
	}
	return unicode.ToLower(r)
}

// IsSpace reports whether r is a white-space character.
func (loc *Locale) IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// normalizeLocaleID turns POSIX locale names into BCP 47 identifiers:
// "de_DE.UTF-8@euro" => "de-DE". "C" and "POSIX" denote the root locale.
func normalizeLocaleID(id string) string {
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	switch id {
	case "C", "POSIX", "":
		return "und"
	}
	return strings.ReplaceAll(id, "_", "-")
}
