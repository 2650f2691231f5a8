package locale

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// englishAliases are codes that request English content without naming a real
// locale (e.g., test wikis and the simplified-English project).
var englishAliases = map[string]struct{}{
	"simple": {},
	"test":   {},
}

// Cache resolves language codes to language.Tag values and memoizes the
// results for the process lifetime. It grows monotonically; there is no
// eviction. Safe for concurrent use.
type Cache struct {
	mu   sync.Mutex
	tags map[string]language.Tag
}

// NewCache creates an empty tag cache.
func NewCache() *Cache {
	return &Cache{tags: make(map[string]language.Tag)}
}

// Tag resolves a language code to a tag. An empty code always yields the
// live system tag and is never cached, since the system locale can change.
//
// Otherwise, resolution order is: a parseable code yields its parsed tag; an
// English alias yields language.English; anything else yields the system tag
// observed at first lookup. Every non-empty code is cached, including the
// system-tag fallback, so repeated lookups of an unrecognized code stay
// stable even if the system locale changes later.
func (c *Cache) Tag(code string) language.Tag {
	if code == "" {
		return Current()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if tag, ok := c.tags[code]; ok {
		return tag
	}

	tag := resolveTag(code)
	c.tags[code] = tag
	return tag
}

// Len returns the number of cached tags.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tags)
}

func resolveTag(code string) language.Tag {
	if tag, err := language.Parse(code); err == nil && tag != language.Und {
		return tag
	}
	if _, ok := englishAliases[strings.ToLower(code)]; ok {
		return language.English
	}
	return Current()
}
