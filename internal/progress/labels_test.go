package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelsResolve(t *testing.T) {
	l := NewLabels(nil)

	assert.Equal(t, "Created", l.Resolve("created"))
	assert.Equal(t, "garbage collection", l.Resolve("garbage-collection"))
	assert.Equal(t, "no.such.label", l.Resolve("no.such.label"), "unknown ids fall back to themselves")
}

func TestLabelsOverrides(t *testing.T) {
	l := NewLabels(map[string]string{
		"created":          "Angelegt",
		"custom.one":       "1 thing",
		"custom.many":      "%s things",
		"progress.deletion": "Löschfortschritt:",
	})

	assert.Equal(t, "Angelegt", l.Resolve("created"))
	assert.Equal(t, "Updated", l.Resolve("updated"), "defaults survive partial overrides")
	assert.Equal(t, "1 thing", l.CountLine("custom", 1))
	assert.Equal(t, "2 things", l.CountLine("custom", 2))
	assert.Equal(t, "Löschfortschritt:", l.Resolve("progress.deletion"))
}

func TestLabelsCountLine(t *testing.T) {
	l := NewLabels(nil)

	tests := []struct {
		name  string
		base  string
		count int64
		want  string
	}{
		{"singular is verbatim", "entities.loaded", 1, "1 entity loaded"},
		{"zero is plural", "entities.loaded", 0, "0 entities loaded"},
		{"two is plural", "entities.loaded", 2, "2 entities loaded"},
		{"thousands separator", "entities.loaded", 1234, "1,234 entities loaded"},
		{"mappings", "mappings.loaded", 1, "1 identifier mapping loaded"},
		{"cache", "cache.populated", 500, "500 destination records cached"},
		{"sweep", "sweep.identified", 1, "1 entity scheduled for deletion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.CountLine(tt.base, tt.count))
		})
	}
}

func TestLabelsOrphanLine(t *testing.T) {
	l := NewLabels(nil)

	assert.Equal(t, "Removing 40 orphan identifier mappings", l.OrphanLine("delete", 40))
	assert.Equal(t, "Checking 1,200 orphan identifier mappings", l.OrphanLine("keep", 1200))
	assert.Equal(t, "3 orphan identifier mappings", l.OrphanLine("archive", 3), "unknown behaviors get the plain fallback")
}
