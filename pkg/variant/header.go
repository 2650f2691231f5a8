package variant

import (
	"strconv"
	"strings"
)

// SynthesizeAcceptLanguage renders an ordered code list as a weighted
// Accept-Language header value. Weights descend evenly from 1.0 in steps of
// 1/n, so the last code carries weight 1/n. The first code is emitted without
// an explicit q parameter (implicit 1.0); the rest append ";q=" with the
// weight formatted to two significant digits. An empty list yields "".
func SynthesizeAcceptLanguage(codes []string) string {
	n := len(codes)
	if n == 0 {
		return ""
	}

	step := 1.0 / float64(n)

	var b strings.Builder
	for i, code := range codes {
		if i == 0 {
			b.WriteString(code)
			continue
		}
		b.WriteString(", ")
		b.WriteString(code)
		b.WriteString(";q=")
		b.WriteString(strconv.FormatFloat(1.0-float64(i)*step, 'g', 2, 64))
	}
	return b.String()
}
