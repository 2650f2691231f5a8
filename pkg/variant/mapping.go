package variant

import "strings"

// DefaultKey is the wildcard key consulted at the script and region levels
// when no exact key matches.
const DefaultKey = "default"

// Mapping is a three-level variant lookup table keyed by language code, then
// script code, then region code. The script and region levels each support a
// "default" entry that catches codes without an exact match at that level.
//
// A Mapping is immutable after construction and safe for concurrent use.
type Mapping map[string]map[string]map[string]string

// NewMapping builds a Mapping from raw entries, lowercasing every key so
// lookups never have to re-normalize stored keys. The input is deep-copied;
// the caller may reuse or mutate it afterwards.
func NewMapping(entries map[string]map[string]map[string]string) Mapping {
	m := make(Mapping, len(entries))
	for lang, scripts := range entries {
		scriptMap := make(map[string]map[string]string, len(scripts))
		for script, regions := range scripts {
			regionMap := make(map[string]string, len(regions))
			for region, code := range regions {
				regionMap[strings.ToLower(region)] = code
			}
			scriptMap[strings.ToLower(script)] = regionMap
		}
		m[strings.ToLower(lang)] = scriptMap
	}
	return m
}

// Lookup resolves the canonical content-variant code for a language, script,
// and region. Inputs are matched case-insensitively; script and region may be
// empty. A script or region that matches no exact key falls through to that
// level's "default" entry. Returns false when no entry applies at any level.
func (m Mapping) Lookup(lang, script, region string) (string, bool) {
	scripts, ok := m[strings.ToLower(lang)]
	if !ok {
		return "", false
	}

	regions, ok := scripts[strings.ToLower(script)]
	if !ok {
		regions, ok = scripts[DefaultKey]
	}
	if !ok {
		return "", false
	}

	code, ok := regions[strings.ToLower(region)]
	if !ok {
		code, ok = regions[DefaultKey]
	}
	if !ok {
		return "", false
	}

	return code, true
}

// Languages returns the number of languages with at least one variant entry.
func (m Mapping) Languages() int {
	return len(m)
}
