package editor

import (
	"fmt"

	"github.com/factorio-tools/bpeditor/internal/blueprint"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is one finding from Validate.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Validate inspects the blueprint and reports problems the game would
// complain about on import plus advisory warnings. An empty result means
// no findings; encoding never depends on this.
func (e *Editor) Validate() []Issue {
	var issues []Issue

	type box struct {
		x0, y0, x1, y1 float64
		number         int
		name           string
	}
	var boxes []box

	for _, ent := range e.bp.Entities {
		if ent.Name == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("entity %d has no name", ent.EntityNumber),
			})
			continue
		}

		if ent.Direction != 0 && !blueprint.ValidDirection(ent.Direction) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("entity %d (%s): direction %d out of range", ent.EntityNumber, ent.Name, ent.Direction),
			})
		}

		def, known := e.catalog.Entity(ent.Name)
		if !known {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("entity %d: unknown prototype %q", ent.EntityNumber, ent.Name),
			})
			continue
		}

		w, h := def.Footprint(ent.Direction)
		halfW, halfH := float64(w)/2, float64(h)/2
		boxes = append(boxes, box{
			x0:     ent.Position.X - halfW,
			y0:     ent.Position.Y - halfH,
			x1:     ent.Position.X + halfW,
			y1:     ent.Position.Y + halfH,
			number: ent.EntityNumber,
			name:   ent.Name,
		})
	}

	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			a, b := boxes[i], boxes[j]
			if a.x0 < b.x1 && b.x0 < a.x1 && a.y0 < b.y1 && b.y0 < a.y1 {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("entities %d (%s) and %d (%s) overlap", a.number, a.name, b.number, b.name),
				})
			}
		}
	}

	for _, t := range e.bp.Tiles {
		if !e.catalog.Tile(t.Name) {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("unknown tile prototype %q", t.Name),
			})
		}
	}

	if len(e.bp.Icons) > 4 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Message:  fmt.Sprintf("too many icons: %d (max 4)", len(e.bp.Icons)),
		})
	}

	return issues
}
