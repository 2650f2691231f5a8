package variant

import "sync"

// LocaleSource returns the ordered list of locale identifiers preferred by
// the surrounding environment, most preferred first.
type LocaleSource func() []string

// BuildPreferenceList resolves raw locale identifiers, in order, into a
// deduplicated preference list. A locale that resolves to a variant code
// contributes that code and nothing else; one that does not contributes its
// bare language code only when includeWithoutVariant is set. Entries with no
// recognizable language are skipped. The output preserves the position of the
// first occurrence of every code and never contains duplicates.
func (r *Resolver) BuildPreferenceList(raw []string, includeWithoutVariant bool) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	appendOnce := func(code string) {
		if _, dup := seen[code]; dup {
			return
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}

	for _, id := range raw {
		d := Decompose(id)
		if d.Language == "" {
			continue
		}
		if code, ok := r.mapping.Lookup(d.Language, d.Script, d.Region); ok {
			appendOnce(code)
			continue
		}
		if includeWithoutVariant {
			appendOnce(d.Language)
		}
	}

	return out
}

// BareLanguageCodes reduces raw locale identifiers to their deduplicated bare
// language codes, in first-occurrence order. Entries with no recognizable
// language are skipped. Unlike BuildPreferenceList, this never consults the
// variant mapping.
func BareLanguageCodes(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, id := range raw {
		d := Decompose(id)
		if d.Language == "" {
			continue
		}
		if _, dup := seen[d.Language]; dup {
			continue
		}
		seen[d.Language] = struct{}{}
		out = append(out, d.Language)
	}
	return out
}

// Preferences is a process-lifetime snapshot of the user's resolved language
// preferences. Each derived value is computed once, on first use, from the
// locale source; later changes to the underlying OS preferences are
// deliberately not observed. Construct a fresh Preferences to re-read them.
//
// Safe for concurrent use; first-time computation is guarded per value.
type Preferences struct {
	resolver *Resolver
	source   LocaleSource

	variantsOnce sync.Once
	variants     []string

	codesOnce sync.Once
	codes     []string

	headerOnce sync.Once
	header     string
}

// NewPreferences creates a preference snapshot over the given resolver and
// locale source. A nil resolver behaves as one with an empty mapping; a nil
// source yields empty lists.
func NewPreferences(r *Resolver, source LocaleSource) *Preferences {
	if r == nil {
		r = NewResolver(nil)
	}
	if source == nil {
		source = func() []string { return nil }
	}
	return &Preferences{resolver: r, source: source}
}

// VariantCodes returns the preference list restricted to codes that resolved
// to a mapped variant.
func (p *Preferences) VariantCodes() []string {
	p.variantsOnce.Do(func() {
		p.variants = p.resolver.BuildPreferenceList(p.source(), false)
	})
	return p.variants
}

// Codes returns the full preference list: variant codes where the mapping has
// one, bare language codes everywhere else.
func (p *Preferences) Codes() []string {
	p.codesOnce.Do(func() {
		p.codes = p.resolver.BuildPreferenceList(p.source(), true)
	})
	return p.codes
}

// AcceptLanguage returns the weighted content-negotiation header synthesized
// from the deduplicated bare language codes of the locale source. This list
// does not route through variant resolution.
func (p *Preferences) AcceptLanguage() string {
	p.headerOnce.Do(func() {
		p.header = SynthesizeAcceptLanguage(BareLanguageCodes(p.source()))
	})
	return p.header
}
