package variant

import (
	"strings"

	"golang.org/x/text/language"
)

// DecomposedLocale holds the lowercased language, script, and region subtags
// extracted from a locale identifier. Script and Region are empty when the
// identifier does not carry them.
type DecomposedLocale struct {
	Language string
	Script   string
	Region   string
}

// posixModifiers maps POSIX locale @modifiers to BCP 47 subtags.
// Unknown modifiers are dropped.
var posixModifiers = map[string]string{
	"latin":    "-Latn",
	"cyrillic": "-Cyrl",
	"valencia": "-valencia",
	"euro":     "",
}

// Decompose extracts the language, script, and region subtags from a locale
// identifier. It accepts BCP 47 tags ("zh-Hant-TW", "en_US") as well as
// POSIX-style identifiers ("zh_TW.UTF-8", "sr@latin"). An identifier with no
// recognizable language subtag decomposes to the zero value; callers treat an
// empty Language as "no variant", never as an error.
func Decompose(identifier string) DecomposedLocale {
	cleaned := cleanIdentifier(identifier)
	if cleaned == "" {
		return DecomposedLocale{}
	}

	// Parse is lenient: an unknown region or script still yields a usable
	// base language, which is all the mapping needs.
	tag, _ := language.Parse(cleaned)
	if tag == language.Und {
		return DecomposedLocale{}
	}

	base, script, region := tag.Raw()

	d := DecomposedLocale{Language: strings.ToLower(base.String())}
	if d.Language == "und" {
		return DecomposedLocale{}
	}
	if s := script.String(); s != "Zzzz" {
		d.Script = strings.ToLower(s)
	}
	if r := region.String(); r != "ZZ" {
		d.Region = strings.ToLower(r)
	}
	return d
}

// cleanIdentifier strips the POSIX codeset suffix and maps the @modifier, if
// any, to its BCP 47 equivalent ("sr@latin" becomes "sr-Latn").
func cleanIdentifier(id string) string {
	id = strings.TrimSpace(id)

	if i := strings.IndexByte(id, '.'); i >= 0 {
		j := strings.LastIndexByte(id, '@')
		if j < i {
			j = len(id)
		}
		id = id[:i] + id[j:]
	}

	if i := strings.IndexByte(id, '@'); i >= 0 {
		id = id[:i] + posixModifiers[strings.ToLower(id[i+1:])]
	}

	return id
}
