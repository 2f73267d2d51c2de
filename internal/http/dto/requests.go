package dto

import "github.com/sales-plan/backend/internal/models"

type LoginRequest struct {
	Code string `json:"code"`
}

type UpdateMonthRequest struct {
	Name  *string `json:"name,omitempty"`
	Theme *string `json:"theme,omitempty"`
}

// OfferRequest carries the mutable fields of an offer; the id is assigned
// by the server on create and immutable on update.
type OfferRequest struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	Pricing    string `json:"pricing,omitempty"`
	Discount   string `json:"discount,omitempty"`
	WhyItWorks string `json:"whyItWorks,omitempty"`

	MarketingCollateral string `json:"marketingCollateral,omitempty"`

	CollateralChannels *models.ChannelFlags `json:"collateralChannels,omitempty"`
	CollateralTypes    *models.TypeFlags    `json:"collateralTypes,omitempty"`

	Cancelled bool `json:"cancelled,omitempty"`
}

func (r OfferRequest) ToModel() models.Offer {
	return models.Offer{
		Title:               r.Title,
		Type:                r.Type,
		Pricing:             r.Pricing,
		Discount:            r.Discount,
		WhyItWorks:          r.WhyItWorks,
		MarketingCollateral: r.MarketingCollateral,
		CollateralChannels:  r.CollateralChannels,
		CollateralTypes:     r.CollateralTypes,
		Cancelled:           r.Cancelled,
	}
}

type CollateralRequest struct {
	Offer            string `json:"offer"`
	Type             string `json:"type"`
	CollateralNeeded string `json:"collateralNeeded"`
	Medium           string `json:"medium,omitempty"`
	Messaging        string `json:"messaging,omitempty"`
	DueDate          string `json:"dueDate,omitempty"`
	Notes            string `json:"notes,omitempty"`
	CTALinks         string `json:"ctaLinks,omitempty"`
}

func (r CollateralRequest) ToModel() models.MarketingCollateral {
	return models.MarketingCollateral{
		Offer:            r.Offer,
		Type:             r.Type,
		CollateralNeeded: r.CollateralNeeded,
		Medium:           r.Medium,
		Messaging:        r.Messaging,
		DueDate:          r.DueDate,
		Notes:            r.Notes,
		CTALinks:         r.CTALinks,
	}
}

type TimelineRequest struct {
	Offer        string `json:"offer"`
	Content      string `json:"content"`
	SendDate     string `json:"sendDate"`
	AdsStartDate string `json:"adsStartDate,omitempty"`
	AdsEndDate   string `json:"adsEndDate,omitempty"`
}

func (r TimelineRequest) ToModel() models.CRMTimeline {
	return models.CRMTimeline{
		Offer:        r.Offer,
		Content:      r.Content,
		SendDate:     r.SendDate,
		AdsStartDate: r.AdsStartDate,
		AdsEndDate:   r.AdsEndDate,
	}
}

type EmailExportRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Scope   string `json:"scope,omitempty"` // current/all
	Month   string `json:"month,omitempty"`
}
