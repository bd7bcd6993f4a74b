package analyze

import (
	"sort"
	"strconv"

	"github.com/factorio-tools/bpeditor/internal/blueprint/codec"
	"github.com/factorio-tools/bpeditor/internal/editor"
)

// Report describes one analyzed exchange string.
type Report struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Label string `json:"label,omitempty"`

	// Blueprint fields.
	TotalEntities int      `json:"total_entities,omitempty"`
	TotalTiles    int      `json:"total_tiles,omitempty"`
	EntityNames   []string `json:"entity_names,omitempty"`

	// Book fields.
	TotalBlueprints int      `json:"total_blueprints,omitempty"`
	BlueprintLabels []string `json:"blueprint_labels,omitempty"`

	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`

	// Source is the file the string came from, for tree scans.
	Source string `json:"source,omitempty"`
}

// Summary aggregates a batch of reports.
type Summary struct {
	TotalStrings  int `json:"total_strings"`
	Valid         int `json:"valid"`
	Blueprints    int `json:"blueprints"`
	Books         int `json:"books"`
	Invalid       int `json:"invalid"`
	TotalEntities int `json:"total_entities"`

	MostComplexLabel    string `json:"most_complex_label,omitempty"`
	MostComplexEntities int    `json:"most_complex_entities,omitempty"`
}

// String analyzes a single exchange string. Index is carried through to
// the report so batch callers can correlate.
func String(s string, index int) Report {
	report := Report{Index: index}

	bp, book, kind, err := codec.DecodeAny(s)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Kind = string(kind)
	report.Valid = true

	switch kind {
	case codec.KindBlueprint:
		ed := editor.Wrap(bp)
		stats := ed.Stats()
		report.Label = bp.Label
		if report.Label == "" {
			report.Label = "Unnamed"
		}
		report.TotalEntities = stats.TotalEntities
		report.TotalTiles = stats.TotalTiles
		report.EntityNames = sortedKeys(stats.EntityCounts)

	case codec.KindBook:
		ed := editor.WrapBook(book)
		stats := ed.Stats()
		report.Label = book.Label
		if report.Label == "" {
			report.Label = "Unnamed Book"
		}
		report.TotalBlueprints = stats.TotalBlueprints
		report.TotalEntities = stats.TotalEntities
		report.TotalTiles = stats.TotalTiles
		for i, entry := range book.Blueprints {
			label := ""
			switch {
			case entry.Blueprint != nil:
				label = entry.Blueprint.Label
			case entry.Book != nil:
				label = entry.Book.Label
			}
			if label == "" {
				label = defaultSlotLabel(i)
			}
			report.BlueprintLabels = append(report.BlueprintLabels, label)
		}
	}

	return report
}

// Text extracts every exchange string from free-form text and analyzes
// each one.
func Text(text string) ([]Report, Summary) {
	strings := codec.Extract(text)
	reports := make([]Report, 0, len(strings))
	for i, s := range strings {
		reports = append(reports, String(s, i+1))
	}
	return reports, Summarize(reports)
}

// Summarize aggregates reports into batch totals.
func Summarize(reports []Report) Summary {
	summary := Summary{TotalStrings: len(reports)}
	for _, r := range reports {
		if !r.Valid {
			summary.Invalid++
			continue
		}
		summary.Valid++
		summary.TotalEntities += r.TotalEntities
		switch r.Kind {
		case string(codec.KindBlueprint):
			summary.Blueprints++
			if r.TotalEntities > summary.MostComplexEntities {
				summary.MostComplexEntities = r.TotalEntities
				summary.MostComplexLabel = r.Label
			}
		case string(codec.KindBook):
			summary.Books++
		}
	}
	return summary
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func defaultSlotLabel(i int) string {
	return "Blueprint " + strconv.Itoa(i+1)
}
