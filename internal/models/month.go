package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Month owns its offers and the derived record sets. There are no
// cross-month references; the whole Plan is the unit of persistence.
type Month struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Theme string  `json:"theme"`
	Offers []Offer `json:"offers"`

	MarketingCollateral RecordSet[MarketingCollateral] `json:"marketingCollateral"`
	CRMTimeline         RecordSet[CRMTimeline]         `json:"crmTimeline"`
}

// FindOffer returns the offer with the given id, or nil.
func (m *Month) FindOffer(id string) *Offer {
	for i := range m.Offers {
		if m.Offers[i].ID == id {
			return &m.Offers[i]
		}
	}
	return nil
}

// Plan is the full yearly document: an ordered list of 12 months.
type Plan struct {
	Year   int     `json:"year"`
	Months []Month `json:"months"`
}

// FindMonth returns the month with the given id, or nil.
func (p *Plan) FindMonth(id string) *Month {
	for i := range p.Months {
		if p.Months[i].ID == id {
			return &p.Months[i]
		}
	}
	return nil
}

// Clone returns a deep copy via a JSON round trip, preserving the
// populated/unpopulated state of every record set.
func (p *Plan) Clone() (*Plan, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("clone plan: %w", err)
	}
	var out Plan
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("clone plan: %w", err)
	}
	return &out, nil
}

var defaultThemes = [12]string{
	"New Year New You",
	"Heart Health",
	"Spring Reset",
	"Summer Shred Prep",
	"Summer Shred",
	"Mid-Year Momentum",
	"Monsoon Motivation",
	"Strength Month",
	"Festive Prep",
	"Festive Fit",
	"Gratitude Gains",
	"Year-End Finale",
}

// DefaultPlan is the bundled dataset used when nothing loads from storage:
// 12 empty months with seasonal themes, record sets left unpopulated so the
// first reconcile seeds them.
func DefaultPlan(year int) *Plan {
	months := make([]Month, 0, 12)
	for i, name := range MonthNames() {
		months = append(months, Month{
			ID:     strings.ToLower(name[:3]),
			Name:   name,
			Theme:  defaultThemes[i],
			Offers: []Offer{},
		})
	}
	return &Plan{Year: year, Months: months}
}
