package colour

import (
	"fmt"
	"strings"
)

// Report names the top three palette entries. Primary is present
// whenever at least one cluster is populated; Secondary and Tertiary
// are optional and absent when fewer populated clusters exist.
type Report struct {
	Primary   *Swatch `json:"primary,omitempty"`
	Secondary *Swatch `json:"secondary,omitempty"`
	Tertiary  *Swatch `json:"tertiary,omitempty"`
}

// NewReport maps the first three palette entries onto the named slots.
func NewReport(p *Palette) Report {
	var r Report
	if len(p.Swatches) > 0 {
		r.Primary = &p.Swatches[0]
	}
	if len(p.Swatches) > 1 {
		r.Secondary = &p.Swatches[1]
	}
	if len(p.Swatches) > 2 {
		r.Tertiary = &p.Swatches[2]
	}
	return r
}

// String lists only the slots that are present, in the form
// "Primary: #rrggbb, Secondary: #rrggbb, Tertiary: #rrggbb".
func (r Report) String() string {
	var parts []string
	if r.Primary != nil {
		parts = append(parts, fmt.Sprintf("Primary: %s", r.Primary.Hex))
	}
	if r.Secondary != nil {
		parts = append(parts, fmt.Sprintf("Secondary: %s", r.Secondary.Hex))
	}
	if r.Tertiary != nil {
		parts = append(parts, fmt.Sprintf("Tertiary: %s", r.Tertiary.Hex))
	}
	if len(parts) == 0 {
		return "No colours available"
	}
	return strings.Join(parts, ", ")
}
