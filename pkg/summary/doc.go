// Package summary coordinates fetching page summaries over HTTP and
// persisting them as records, one per content-variant language and title.
//
// The Client speaks a REST page-summary endpoint and reduces HTML extracts to
// sanitized plain text. The Coordinator wires a Client to a Store and applies
// the user's variant preferences when choosing which content variant of a
// language to fetch:
//
//	client := summary.NewClient("https://api.example.org",
//		summary.WithAcceptLanguage(prefs.AcceptLanguage()),
//	)
//	coord := summary.NewCoordinator(client, summary.NewMemoryStore(),
//		summary.WithVariantPreferences(prefs.VariantCodes()),
//	)
//
//	rec, err := coord.FetchAndStore(ctx, "zh", "Taiwan")
//	// fetched as "zh-tw" when that is the user's preferred zh variant
//
// Stores: NewMemoryStore for tests and single-process use, NewRedisStore for
// shared deployments. Both are safe for concurrent use; concurrent fetches of
// the same page collapse into one upstream request.
package summary
