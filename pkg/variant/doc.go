// Package variant resolves operating-system locale preferences into the
// content-variant codes understood by a multi-script, multi-region content
// platform, and synthesizes weighted Accept-Language headers from them.
//
// The center of the package is a three-level mapping table keyed by language,
// script, and region. The script and region levels each support a "default"
// entry, so a single table can express rules like "zh-Hant in Taiwan is
// zh-tw, any other traditional-script Chinese is zh-hant, everything else is
// zh":
//
//	zh:
//	  hant:
//	    tw: zh-tw
//	    default: zh-hant
//	  default:
//	    default: zh
//
// # Loading a mapping
//
// Mappings are loaded once at startup from an fs.FS, typically an embedded
// resource:
//
//	//go:embed variants.yaml
//	var resources embed.FS
//
//	mapping := variant.LoadMapping(resources, "variants.yaml")
//	resolver := variant.NewResolver(mapping)
//
// A missing or malformed resource yields an empty mapping, never an error:
// resolution degrades to "no variant" and the rest of the system keeps
// working.
//
// # Resolving preferences
//
// Resolution is total; failure is an absent result, not an error:
//
//	code, ok := resolver.ResolveVariant("zh-Hant-TW") // "zh-tw", true
//
//	prefs := resolver.BuildPreferenceList(
//		[]string{"zh-Hant-TW", "en-US", "en-GB"}, true,
//	) // ["zh-tw", "en"]
//
// A Preferences value snapshots the OS-preferred locales once per process and
// memoizes the derived lists and header:
//
//	p := variant.NewPreferences(resolver, locale.Preferred)
//	p.VariantCodes()   // variant codes only
//	p.AcceptLanguage() // "zh-tw, en;q=0.5"
//
// # Header synthesis
//
// SynthesizeAcceptLanguage spreads weights evenly from 1.0 down to 1/n:
//
//	variant.SynthesizeAcceptLanguage([]string{"en", "fr", "de"})
//	// "en, fr;q=0.67, de;q=0.33"
//
// ParseAcceptLanguage performs the inverse, server-side selection of the best
// available code for an incoming header.
//
// # Concurrency
//
// Mapping, Resolver, and all free functions are immutable or pure and safe
// for unsynchronized concurrent use. Preferences guards its one-time
// computations internally.
package variant
