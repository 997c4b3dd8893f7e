package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PanelID uniquely identifies a panel on the canvas.
type PanelID string

// NewPanelID returns a fresh random panel identifier.
func NewPanelID() PanelID {
	return PanelID(uuid.NewString())
}

// Short returns the first 8 characters of the id, for logs and tables.
func (id PanelID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// PanelKind is the closed set of panel variants. The string form is what
// gets persisted.
type PanelKind string

const (
	PanelText     PanelKind = "TEXT"
	PanelModel3D  PanelKind = "MODEL_3D"
	PanelImage    PanelKind = "IMAGE"
	PanelStandard PanelKind = "STANDARD"
	PanelMinimal  PanelKind = "MINIMAL"
	PanelReadOnly PanelKind = "READ_ONLY"
)

// AllPanelKinds lists every known kind in display order.
func AllPanelKinds() []PanelKind {
	return []PanelKind{PanelText, PanelModel3D, PanelImage, PanelStandard, PanelMinimal, PanelReadOnly}
}

// Valid reports whether k is one of the known kinds.
func (k PanelKind) Valid() bool {
	for _, known := range AllPanelKinds() {
		if k == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (k PanelKind) String() string {
	return string(k)
}

// ParsePanelKind accepts the persisted form case-insensitively, with
// dashes or spaces in place of underscores.
func ParsePanelKind(s string) (PanelKind, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	switch norm {
	case "3D", "MODEL3D":
		norm = string(PanelModel3D)
	case "READONLY":
		norm = string(PanelReadOnly)
	}
	k := PanelKind(norm)
	if !k.Valid() {
		return "", fmt.Errorf("unknown panel kind %q", s)
	}
	return k, nil
}
