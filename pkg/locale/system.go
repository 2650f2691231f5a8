package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// localeEnvVars in precedence order, per POSIX.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Current returns the tag of the environment's active locale, falling back to
// English when none can be determined. Never cached: the environment can
// change between calls.
func Current() language.Tag {
	for _, env := range localeEnvVars {
		if tag, ok := parseEnvLocale(os.Getenv(env)); ok {
			return tag
		}
	}
	return language.English
}

// Preferred returns the ordered locale identifiers preferred by the
// environment, most preferred first. The colon-separated LANGUAGE list takes
// precedence, followed by the first defined of LC_ALL, LC_MESSAGES, LANG.
// When no locale variables are set, a platform-specific fallback is consulted
// (the global language preference on macOS). Identifiers are returned raw;
// consumers normalize and deduplicate during resolution.
func Preferred() []string {
	var out []string

	if v := os.Getenv("LANGUAGE"); v != "" {
		for _, id := range strings.Split(v, ":") {
			id = strings.TrimSpace(id)
			if id != "" && id != "C" && id != "POSIX" {
				out = append(out, id)
			}
		}
	}

	for _, env := range localeEnvVars {
		if v := os.Getenv(env); v != "" && v != "C" && v != "POSIX" {
			out = append(out, v)
			break
		}
	}

	if len(out) == 0 {
		out = systemPreferred()
	}

	return out
}

// parseEnvLocale parses a locale environment value like "sv_SE.UTF-8",
// rejecting the C and POSIX locales and anything unparseable.
func parseEnvLocale(v string) (language.Tag, bool) {
	if v == "" || v == "C" || v == "POSIX" {
		return language.Und, false
	}
	if i := strings.IndexByte(v, '.'); i >= 0 {
		v = v[:i]
	}
	if i := strings.IndexByte(v, '@'); i >= 0 {
		v = v[:i]
	}
	tag, err := language.Parse(v)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}
