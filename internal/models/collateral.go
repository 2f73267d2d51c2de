package models

// MarketingCollateral is a creative-asset requirement, either derived from an
// offer's channel/type selections or added manually by an admin.
//
// Offer is matched to Offer.Title by string equality in the legacy document
// format; OfferID carries the explicit reference for records produced by this
// backend. Both are kept so older documents keep loading.
type MarketingCollateral struct {
	ID               string `json:"id"`
	OfferID          string `json:"offerId,omitempty"`
	Offer            string `json:"offer"`
	Type             string `json:"type"`
	CollateralNeeded string `json:"collateralNeeded"`
	Medium           string `json:"medium"`
	Messaging        string `json:"messaging"`
	DueDate          string `json:"dueDate"`
	Notes            string `json:"notes,omitempty"`
	CTALinks         string `json:"ctaLinks,omitempty"`
}

// CollateralPatch is a partial update applied to one record by id. Nil fields
// are left untouched.
type CollateralPatch struct {
	Offer            *string `json:"offer,omitempty"`
	Type             *string `json:"type,omitempty"`
	CollateralNeeded *string `json:"collateralNeeded,omitempty"`
	Medium           *string `json:"medium,omitempty"`
	Messaging        *string `json:"messaging,omitempty"`
	DueDate          *string `json:"dueDate,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	CTALinks         *string `json:"ctaLinks,omitempty"`
}

// Apply merges the patch into the record.
func (p CollateralPatch) Apply(r *MarketingCollateral) {
	if p.Offer != nil {
		r.Offer = *p.Offer
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.CollateralNeeded != nil {
		r.CollateralNeeded = *p.CollateralNeeded
	}
	if p.Medium != nil {
		r.Medium = *p.Medium
	}
	if p.Messaging != nil {
		r.Messaging = *p.Messaging
	}
	if p.DueDate != nil {
		r.DueDate = *p.DueDate
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.CTALinks != nil {
		r.CTALinks = *p.CTALinks
	}
}
