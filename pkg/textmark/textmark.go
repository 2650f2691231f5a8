// Package textmark toggles symmetric formatting markers around a text
// selection, the way an editing view wraps wiki markup ("'''bold'''") around
// the selected range. It is plain string manipulation with no dependency on
// the resolution packages.
package textmark

import "strings"

// Span is a selection over a string as byte offsets, Start inclusive and End
// exclusive.
type Span struct {
	Start int
	End   int
}

// clamp constrains the span to the bounds of text and normalizes an inverted
// selection.
func (s Span) clamp(text string) Span {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > len(text) {
		s.End = len(text)
	}
	if s.End < s.Start {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// Wrapped reports whether the selection already carries the marker, either
// just inside the selection edges or immediately around them.
func Wrapped(text string, sel Span, marker string) bool {
	if marker == "" {
		return false
	}
	sel = sel.clamp(text)
	return wrappedInside(text, sel, marker) || wrappedAround(text, sel, marker)
}

// Toggle wraps the selection in marker on both sides, or removes the markers
// when the selection is already wrapped. Returns the rewritten text and the
// span covering the same content in it.
func Toggle(text string, sel Span, marker string) (string, Span) {
	sel = sel.clamp(text)
	if marker == "" {
		return text, sel
	}

	n := len(marker)

	switch {
	case wrappedInside(text, sel, marker):
		inner := text[sel.Start+n : sel.End-n]
		out := text[:sel.Start] + inner + text[sel.End:]
		return out, Span{Start: sel.Start, End: sel.End - 2*n}

	case wrappedAround(text, sel, marker):
		out := text[:sel.Start-n] + text[sel.Start:sel.End] + text[sel.End+n:]
		return out, Span{Start: sel.Start - n, End: sel.End - n}

	default:
		out := text[:sel.Start] + marker + text[sel.Start:sel.End] + marker + text[sel.End:]
		return out, Span{Start: sel.Start + n, End: sel.End + n}
	}
}

func wrappedInside(text string, sel Span, marker string) bool {
	selected := text[sel.Start:sel.End]
	return len(selected) >= 2*len(marker) &&
		strings.HasPrefix(selected, marker) &&
		strings.HasSuffix(selected, marker)
}

func wrappedAround(text string, sel Span, marker string) bool {
	n := len(marker)
	return n > 0 &&
		sel.Start >= n && sel.End+n <= len(text) &&
		text[sel.Start-n:sel.Start] == marker &&
		text[sel.End:sel.End+n] == marker
}
