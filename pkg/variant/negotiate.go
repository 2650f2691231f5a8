package variant

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

type weightedCode struct {
	code   string
	weight float64
}

// ParseAcceptLanguage picks the best matching code from available for an
// incoming Accept-Language header value. Codes are matched in descending
// weight order: an exact (case-insensitive) match wins, then a bare-language
// match ("en-US" matches an available "en" and vice versa). When nothing
// matches, or the header is empty, the first available code is returned.
// Returns "" when available is empty.
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	for _, wc := range parseWeightedCodes(header) {
		for _, avail := range available {
			if strings.EqualFold(wc.code, avail) {
				return avail
			}
		}
		lang := Decompose(wc.code).Language
		if lang == "" {
			continue
		}
		for _, avail := range available {
			if Decompose(avail).Language == lang {
				return avail
			}
		}
	}

	return available[0]
}

// parseWeightedCodes splits an Accept-Language value into codes sorted by
// descending q-value. Malformed q parameters fall back to 1.0; wildcard and
// empty entries are dropped.
func parseWeightedCodes(header string) []weightedCode {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var codes []weightedCode
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code, qPart, hasQ := strings.Cut(part, ";")
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || code == "*" {
			continue
		}

		weight := 1.0
		if hasQ {
			qPart = strings.TrimSpace(qPart)
			if v, ok := strings.CutPrefix(qPart, "q="); ok {
				if q, err := strconv.ParseFloat(v, 64); err == nil && q >= 0 && q <= 1 {
					weight = q
				}
			}
		}

		codes = append(codes, weightedCode{code: code, weight: weight})
	}

	slices.SortStableFunc(codes, func(a, b weightedCode) int {
		return cmp.Compare(b.weight, a.weight)
	})

	return codes
}
