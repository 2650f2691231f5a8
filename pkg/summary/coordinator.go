package summary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/langkit/pkg/logger"
	"github.com/dmitrymomot/langkit/pkg/variant"
)

// Coordinator turns fetched page summaries into stored records, picking the
// content variant for each target language from the user's ordered variant
// preferences.
type Coordinator struct {
	client *Client
	store  Store
	prefs  []string
	log    *slog.Logger
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithVariantPreferences sets the ordered variant preference list, typically
// variant.Preferences.VariantCodes(). Without it every fetch uses the bare
// target language.
func WithVariantPreferences(prefs []string) CoordinatorOption {
	return func(c *Coordinator) {
		c.prefs = prefs
	}
}

// WithLogger sets the logger. Default: discard.
func WithLogger(log *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCoordinator creates a coordinator over a client and a store.
func NewCoordinator(client *Client, store Store, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		client: client,
		store:  store,
		log:    logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Target returns the content-variant code the coordinator fetches for a
// target language: the first preferred variant of that language, or the bare
// language code when the preferences name none.
func (c *Coordinator) Target(lang string) string {
	if v, ok := variant.PreferredVariant(lang, c.prefs); ok {
		return v
	}
	return lang
}

// FetchAndStore returns the stored summary record of title for the given
// language, fetching and persisting it first when the store has none. A
// present record is returned without a network round trip.
func (c *Coordinator) FetchAndStore(ctx context.Context, lang, title string) (Record, error) {
	if lang == "" {
		return Record{}, ErrEmptyLang
	}
	if title == "" {
		return Record{}, ErrEmptyTitle
	}

	target := c.Target(lang)

	if rec, err := c.store.Get(ctx, target, title); err == nil {
		return rec, nil
	}

	sum, err := c.client.Fetch(ctx, target, title)
	if err != nil {
		c.log.ErrorContext(ctx, "summary fetch failed",
			slog.String("lang", target),
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return Record{}, errors.Join(ErrFetchFailed, err)
	}

	// Keyed by the requested title, not the canonical one the endpoint
	// reports, so later lookups with the same input hit the store.
	rec := Record{
		ID:        uuid.NewString(),
		Lang:      target,
		Title:     title,
		Extract:   sum.Extract,
		FetchedAt: time.Now().UTC(),
	}

	if err := c.store.Put(ctx, rec); err != nil {
		return Record{}, errors.Join(ErrStoreFailed, err)
	}

	c.log.InfoContext(ctx, "summary stored",
		slog.String("lang", target),
		slog.String("title", rec.Title),
		slog.String("id", rec.ID),
	)
	return rec, nil
}
