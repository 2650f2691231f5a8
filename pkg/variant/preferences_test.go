package variant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/variant"
)

func TestBuildPreferenceList(t *testing.T) {
	t.Parallel()

	resolver := variant.NewResolver(chineseMapping())
	empty := variant.NewResolver(nil)

	tests := []struct {
		name        string
		resolver    *variant.Resolver
		raw         []string
		includeBare bool
		want        []string
	}{
		{
			name:        "variants resolved in order",
			resolver:    resolver,
			raw:         []string{"zh-Hant-TW", "zh-Hans-CN", "en-US"},
			includeBare: true,
			want:        []string{"zh-tw", "zh", "en"},
		},
		{
			name:        "variants only",
			resolver:    resolver,
			raw:         []string{"en-US", "zh-Hant-TW", "fr-FR"},
			includeBare: false,
			want:        []string{"zh-tw"},
		},
		{
			name:        "bare code dedup keeps first occurrence",
			resolver:    empty,
			raw:         []string{"en-US", "fr-FR", "en-GB"},
			includeBare: true,
			want:        []string{"en", "fr"},
		},
		{
			name:        "empty mapping variants-only is empty",
			resolver:    empty,
			raw:         []string{"en-US", "zh-Hant-TW"},
			includeBare: false,
			want:        []string{},
		},
		{
			name:        "resolved variant suppresses its bare code",
			resolver:    resolver,
			raw:         []string{"zh-Hant-TW", "zh-Hant-HK"},
			includeBare: true,
			want:        []string{"zh-tw", "zh-hant"},
		},
		{
			name:        "duplicate variants collapse",
			resolver:    resolver,
			raw:         []string{"zh-Hant-HK", "zh-Hant-MO", "en"},
			includeBare: true,
			want:        []string{"zh-hant", "en"},
		},
		{
			name:        "unparseable entries are skipped",
			resolver:    empty,
			raw:         []string{"???", "", "de-DE"},
			includeBare: true,
			want:        []string{"de"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.resolver.BuildPreferenceList(tt.raw, tt.includeBare)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBareLanguageCodes(t *testing.T) {
	t.Parallel()

	got := variant.BareLanguageCodes([]string{"en-US", "zh-Hant-TW", "en-GB", "???"})
	require.Equal(t, []string{"en", "zh"}, got)
}

func TestPreferencesMemoization(t *testing.T) {
	t.Parallel()

	calls := 0
	source := func() []string {
		calls++
		return []string{"zh-Hant-TW", "en-US"}
	}

	p := variant.NewPreferences(variant.NewResolver(chineseMapping()), source)

	require.Equal(t, []string{"zh-tw"}, p.VariantCodes())
	require.Equal(t, []string{"zh-tw"}, p.VariantCodes())
	require.Equal(t, []string{"zh-tw", "en"}, p.Codes())
	require.Equal(t, "zh, en;q=0.5", p.AcceptLanguage())

	// Each derived value reads the source exactly once.
	require.Equal(t, 3, calls)

	require.Equal(t, "zh, en;q=0.5", p.AcceptLanguage())
	require.Equal(t, 3, calls)
}

// The header is built from bare language codes, not resolved variants.
func TestPreferencesHeaderSkipsVariantResolution(t *testing.T) {
	t.Parallel()

	p := variant.NewPreferences(
		variant.NewResolver(chineseMapping()),
		func() []string { return []string{"zh-Hant-TW", "zh-Hans-CN", "en-US"} },
	)

	require.Equal(t, "zh, en;q=0.5", p.AcceptLanguage())
}

func TestPreferencesNilSource(t *testing.T) {
	t.Parallel()

	p := variant.NewPreferences(variant.NewResolver(nil), nil)
	require.Empty(t, p.VariantCodes())
	require.Empty(t, p.Codes())
	require.Equal(t, "", p.AcceptLanguage())
}
