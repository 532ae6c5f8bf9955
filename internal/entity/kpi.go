package entity

import "context"

type Variant string

const (
	VariantDefault Variant = "default"
	VariantWarning Variant = "warning"
	VariantSuccess Variant = "success"
	VariantInfo    Variant = "info"
)

type KPICard struct {
	Title   string  `json:"title"`
	Count   int     `json:"count"`
	Leads   int     `json:"leads"`
	Variant Variant `json:"variant,omitempty"`
	Tooltip string  `json:"tooltip,omitempty"`
}

type KPISection struct {
	Title   string    `json:"title"`
	Variant Variant   `json:"variant"`
	Cards   []KPICard `json:"cards"`
}

// Resolved returns a copy where cards without a variant take the section's.
func (s KPISection) Resolved() KPISection {
	out := s
	out.Cards = make([]KPICard, len(s.Cards))
	for i, c := range s.Cards {
		if c.Variant == "" {
			c.Variant = s.Variant
		}
		out.Cards[i] = c
	}
	return out
}

type KPIProvider interface {
	Sections(ctx context.Context) ([]KPISection, error)
}
