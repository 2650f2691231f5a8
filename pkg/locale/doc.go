// Package locale reads the operating system's locale preferences and resolves
// language codes to language.Tag values.
//
// Preferred returns the raw ordered locale identifiers the environment asks
// for (the LANGUAGE list, then the usual LC_* precedence, with a macOS
// fallback to the global AppleLanguages preference). It is the canonical
// locale source for a variant.Preferences snapshot:
//
//	prefs := variant.NewPreferences(resolver, locale.Preferred)
//
// Cache memoizes code-to-tag resolution for the process lifetime:
//
//	tags := locale.NewCache()
//	tags.Tag("zh-hant") // parsed tag
//	tags.Tag("simple")  // language.English
//	tags.Tag("")        // live system tag, never cached
//
// Unrecognized codes resolve to the system tag observed at first lookup and
// are cached under the code, so later lookups stay stable even if the system
// locale changes.
package locale
