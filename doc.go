// Package langkit resolves operating-system locale preferences into the
// content-variant codes a multi-script, multi-region content platform
// understands, and synthesizes weighted Accept-Language headers expressing
// those preferences.
//
// The resolution packages are small and composable; langkit itself is a thin
// facade that wires them together for the common case:
//
//	//go:embed variants.yaml
//	var resources embed.FS
//
//	kit := langkit.New(
//	    langkit.WithMapping(resources, "variants.yaml"),
//	)
//
//	kit.VariantCodes()            // e.g. ["zh-tw", "sr-el"]
//	kit.AcceptLanguage()          // e.g. "zh, sr;q=0.67, en;q=0.33"
//	kit.PreferredVariant("zh")    // "zh-tw", true
//	kit.Locales().Tag("zh-hant")  // language.Tag
//
// The preference lists and header are a deliberate process-wide snapshot:
// they are computed once from the OS-preferred locales and memoized for the
// lifetime of the Kit.
//
// Packages:
//
//   - pkg/variant: mapping table, locale decomposition, variant resolution,
//     preference lists, and header synthesis. The algorithmic core.
//   - pkg/locale: OS locale preferences and a language.Tag cache.
//   - pkg/summary: a fetch-and-persist coordinator that consumes the variant
//     preferences when requesting content.
//   - pkg/textmark: selection formatting markers for editing views.
//   - pkg/logger: slog factory used by the boundary components.
//
// Resolution is total: malformed locale identifiers, unknown languages, and
// missing mapping resources all degrade to "no variant" rather than errors.
package langkit
