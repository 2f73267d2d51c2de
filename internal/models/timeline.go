package models

// CRMTimeline is one scheduled customer touchpoint (email, WhatsApp, ads
// flight or organic post) tied to an offer.
type CRMTimeline struct {
	ID           string `json:"id"`
	OfferID      string `json:"offerId,omitempty"`
	Offer        string `json:"offer"`
	Content      string `json:"content"`
	SendDate     string `json:"sendDate"`
	AdsStartDate string `json:"adsStartDate,omitempty"`
	AdsEndDate   string `json:"adsEndDate,omitempty"`
}

// TimelinePatch is a partial update applied to one record by id.
type TimelinePatch struct {
	Offer        *string `json:"offer,omitempty"`
	Content      *string `json:"content,omitempty"`
	SendDate     *string `json:"sendDate,omitempty"`
	AdsStartDate *string `json:"adsStartDate,omitempty"`
	AdsEndDate   *string `json:"adsEndDate,omitempty"`
}

// Apply merges the patch into the record.
func (p TimelinePatch) Apply(r *CRMTimeline) {
	if p.Offer != nil {
		r.Offer = *p.Offer
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
	if p.SendDate != nil {
		r.SendDate = *p.SendDate
	}
	if p.AdsStartDate != nil {
		r.AdsStartDate = *p.AdsStartDate
	}
	if p.AdsEndDate != nil {
		r.AdsEndDate = *p.AdsEndDate
	}
}
