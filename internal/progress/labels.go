package progress

import "fmt"

// defaultLabels maps display identifiers to their built-in strings.
// Identifiers are dotted for engine messages and bare for outcome and
// segment-kind names. Count-dependent messages come in ".one"/".many"
// pairs; ".many" is a format string receiving the thousands-formatted count.
var defaultLabels = map[string]string{
	"created":   "Created",
	"updated":   "Updated",
	"deleted":   "Deleted",
	"failed":    "Failed",
	"unchanged": "Unchanged",

	"migration":          "migration",
	"garbage-collection": "garbage collection",

	"mappings.loading":     "Loading identifier mappings",
	"mappings.loaded.one":  "1 identifier mapping loaded",
	"mappings.loaded.many": "%s identifier mappings loaded",

	"cache.populating":     "Populating destination cache",
	"cache.populated.one":  "1 destination record cached",
	"cache.populated.many": "%s destination records cached",

	"entities.loading":     "Loading entities",
	"entities.loaded.one":  "1 entity loaded",
	"entities.loaded.many": "%s entities loaded",

	"sweep.identifying":     "Identifying entities to delete",
	"sweep.identified.one":  "1 entity scheduled for deletion",
	"sweep.identified.many": "%s entities scheduled for deletion",

	"progress.migration": "Migration progress:",
	"progress.deletion":  "Deletion progress:",

	"orphan.delete": "Removing %s orphan identifier mappings",
	"orphan.keep":   "Checking %s orphan identifier mappings",
}

// Labels resolves display identifiers to localized strings, falling back to
// the identifier's own name when nothing is registered. Missing labels are
// a cosmetic degradation, never an error.
type Labels struct {
	table map[string]string
}

// NewLabels builds a label table from the defaults plus host overrides.
func NewLabels(overrides map[string]string) *Labels {
	table := make(map[string]string, len(defaultLabels)+len(overrides))
	for k, v := range defaultLabels {
		table[k] = v
	}
	for k, v := range overrides {
		table[k] = v
	}
	return &Labels{table: table}
}

// Resolve returns the display string for an identifier, or the identifier
// itself when no label is registered.
func (l *Labels) Resolve(id string) string {
	if s, ok := l.table[id]; ok {
		return s
	}
	return id
}

// CountLine renders a count-dependent message: the ".one" label verbatim
// when count is exactly 1, otherwise the ".many" format with the
// thousands-formatted count substituted.
func (l *Labels) CountLine(base string, count int64) string {
	if count == 1 {
		return l.Resolve(base + ".one")
	}
	return fmt.Sprintf(l.Resolve(base+".many"), FormatCount(count))
}

// OrphanLine renders the orphan-phase label for a behavior identifier.
// Behaviors without a registered format fall back to a plain
// thousands-formatted count.
func (l *Labels) OrphanLine(behavior string, total int64) string {
	if format, ok := l.table["orphan."+behavior]; ok {
		return fmt.Sprintf(format, FormatCount(total))
	}
	return fmt.Sprintf("%s orphan identifier mappings", FormatCount(total))
}
