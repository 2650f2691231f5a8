package variant_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/variant"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		want      string
	}{
		{
			name:      "empty available returns empty",
			header:    "en-US,en;q=0.9",
			available: nil,
			want:      "",
		},
		{
			name:      "empty header returns first available",
			header:    "",
			available: []string{"en", "pl"},
			want:      "en",
		},
		{
			name:      "exact match",
			header:    "pl",
			available: []string{"en", "pl", "de"},
			want:      "pl",
		},
		{
			name:      "quality values decide order",
			header:    "de;q=0.5,pl;q=0.9,en;q=0.8",
			available: []string{"en", "pl", "de"},
			want:      "pl",
		},
		{
			name:      "regional tag matches base",
			header:    "en-US",
			available: []string{"en", "pl"},
			want:      "en",
		},
		{
			name:      "base tag matches regional variant",
			header:    "en",
			available: []string{"en-US", "pl"},
			want:      "en-US",
		},
		{
			name:      "case-insensitive matching",
			header:    "EN-us,PL;q=0.9",
			available: []string{"pl", "en"},
			want:      "en",
		},
		{
			name:      "wildcard is ignored",
			header:    "*,pl;q=0.5",
			available: []string{"en", "pl"},
			want:      "pl",
		},
		{
			name:      "no match falls back to first available",
			header:    "fr,es;q=0.9",
			available: []string{"en", "pl"},
			want:      "en",
		},
		{
			name:      "malformed quality defaults to 1.0",
			header:    "pl;q=broken,en;q=0.9",
			available: []string{"en", "pl"},
			want:      "pl",
		},
		{
			name:      "oversized header is truncated not rejected",
			header:    "pl," + strings.Repeat("x", 8192),
			available: []string{"en", "pl"},
			want:      "pl",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, variant.ParseAcceptLanguage(tt.header, tt.available))
		})
	}
}

// Synthesized headers must negotiate back to the most preferred code.
func TestSynthesizeParseRoundTrip(t *testing.T) {
	t.Parallel()

	header := variant.SynthesizeAcceptLanguage([]string{"zh-tw", "en", "fr"})
	require.Equal(t, "zh-tw", variant.ParseAcceptLanguage(header, []string{"fr", "en", "zh-tw"}))
}
