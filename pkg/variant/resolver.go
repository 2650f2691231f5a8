package variant

import "strings"

// Resolver maps locale identifiers to canonical content-variant codes using
// an immutable Mapping. All methods are pure and safe for concurrent use.
type Resolver struct {
	mapping Mapping
}

// NewResolver creates a Resolver over the given mapping. A nil mapping is
// treated as empty: every resolution reports "no variant".
func NewResolver(m Mapping) *Resolver {
	if m == nil {
		m = Mapping{}
	}
	return &Resolver{mapping: m}
}

// ResolveVariant decomposes a locale identifier and looks up its variant
// code. Returns false when the identifier has no recognizable language or the
// mapping has no entry for it.
func (r *Resolver) ResolveVariant(identifier string) (string, bool) {
	d := Decompose(identifier)
	if d.Language == "" {
		return "", false
	}
	return r.mapping.Lookup(d.Language, d.Script, d.Region)
}

// PreferredVariant returns the first code in prefs that is a hyphenated
// variant of lang ("zh" matches "zh-hant" but not "zho"). The scan honors the
// order of prefs; the first match wins even when a later entry would be a
// closer match. Returns false when no entry qualifies.
func PreferredVariant(lang string, prefs []string) (string, bool) {
	prefix := strings.ToLower(lang) + "-"
	for _, code := range prefs {
		if strings.HasPrefix(strings.ToLower(code), prefix) {
			return code, true
		}
	}
	return "", false
}
