package langkit

import (
	"io/fs"

	"github.com/dmitrymomot/langkit/pkg/locale"
	"github.com/dmitrymomot/langkit/pkg/variant"
)

// Kit bundles a variant resolver, a process-wide preference snapshot, and a
// locale tag cache behind one constructor. Safe for concurrent use.
type Kit struct {
	resolver *variant.Resolver
	prefs    *variant.Preferences
	locales  *locale.Cache
}

// Option configures a Kit.
type Option func(*config)

type config struct {
	mappingFS   fs.FS
	mappingName string
	source      variant.LocaleSource
}

// WithMapping loads the variant mapping from a resource in fsys. A missing or
// malformed resource leaves the kit with an empty mapping; resolution then
// reports "no variant" for every input.
func WithMapping(fsys fs.FS, name string) Option {
	return func(c *config) {
		c.mappingFS = fsys
		c.mappingName = name
	}
}

// WithLocaleSource replaces the OS-preferred locale source, mainly for tests.
// Default: locale.Preferred.
func WithLocaleSource(source variant.LocaleSource) Option {
	return func(c *config) {
		if source != nil {
			c.source = source
		}
	}
}

// New creates a Kit. Without options it has an empty mapping and reads locale
// preferences from the environment.
func New(opts ...Option) *Kit {
	cfg := &config{source: locale.Preferred}
	for _, opt := range opts {
		opt(cfg)
	}

	mapping := variant.Mapping{}
	if cfg.mappingFS != nil {
		mapping = variant.LoadMapping(cfg.mappingFS, cfg.mappingName)
	}

	resolver := variant.NewResolver(mapping)
	return &Kit{
		resolver: resolver,
		prefs:    variant.NewPreferences(resolver, cfg.source),
		locales:  locale.NewCache(),
	}
}

// Resolver returns the variant resolver.
func (k *Kit) Resolver() *variant.Resolver {
	return k.resolver
}

// Preferences returns the process-wide preference snapshot.
func (k *Kit) Preferences() *variant.Preferences {
	return k.prefs
}

// Locales returns the locale tag cache.
func (k *Kit) Locales() *locale.Cache {
	return k.locales
}

// VariantCodes returns the user's ordered variant preference list.
func (k *Kit) VariantCodes() []string {
	return k.prefs.VariantCodes()
}

// AcceptLanguage returns the synthesized preferred-languages header.
func (k *Kit) AcceptLanguage() string {
	return k.prefs.AcceptLanguage()
}

// PreferredVariant returns the user's preferred variant of the given
// language, or false when the preferences name none.
func (k *Kit) PreferredVariant(lang string) (string, bool) {
	return variant.PreferredVariant(lang, k.prefs.VariantCodes())
}
