package usps

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Tracking asks the TrackV2 API for the status of one package.
type Tracking struct {
	Number string
}

// Action implements Request.
func (Tracking) Action() Action { return ActionTracking }

// Build implements Request.
func (r Tracking) Build(env Envelope) (*etree.Document, error) {
	if strings.TrimSpace(r.Number) == "" {
		return nil, fmt.Errorf("%w: tracking number is required", ErrInvalidRequest)
	}
	doc, root := env.NewDocument("TrackFieldRequest")
	root.CreateElement("TrackID").CreateAttr("ID", r.Number)
	return doc, nil
}
