package models

// Offer types shown in the dashboard dropdown.
const (
	OfferTypeMembership       = "Membership"
	OfferTypeClassPack        = "Class Pack"
	OfferTypePersonalTraining = "Personal Training"
	OfferTypeChallenge        = "Challenge"
	OfferTypeReferral         = "Referral"
	OfferTypeRetail           = "Retail"
)

// ChannelFlags marks which distribution channels an offer is promoted on.
// A nil *ChannelFlags on an Offer means the selector was never opened for
// that offer; a zero-value struct means it was opened and everything
// unchecked. Derivation treats the two differently.
type ChannelFlags struct {
	WhatsApp    bool `json:"whatsapp,omitempty"`
	Email       bool `json:"email,omitempty"`
	InStudio    bool `json:"inStudio,omitempty"`
	Website     bool `json:"website,omitempty"`
	SocialMedia bool `json:"socialMedia,omitempty"`
	MetaAds     bool `json:"metaAds,omitempty"`
}

// TypeFlags marks which creative asset types an offer needs.
type TypeFlags struct {
	TentCards     bool `json:"tentCards,omitempty"`
	ImageCreative bool `json:"imageCreative,omitempty"`
	VideoCreative bool `json:"videoCreative,omitempty"`
	EaselStandee  bool `json:"easelStandee,omitempty"`
	EmailTemplate bool `json:"emailTemplate,omitempty"`
	LandingPage   bool `json:"landingPage,omitempty"`
	SocialPosts   bool `json:"socialPosts,omitempty"`
	StoryTemplate bool `json:"storyTemplate,omitempty"`
}

// Offer is one promotional item within a month. JSON tags are camelCase for
// compatibility with the stored plan document.
type Offer struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Pricing    string `json:"pricing,omitempty"`
	Discount   string `json:"discount,omitempty"`
	WhyItWorks string `json:"whyItWorks,omitempty"`

	// MarketingCollateral is the legacy free-text description of desired
	// collateral. Consulted only when neither flag set is present.
	MarketingCollateral string `json:"marketingCollateral,omitempty"`

	CollateralChannels *ChannelFlags `json:"collateralChannels,omitempty"`
	CollateralTypes    *TypeFlags    `json:"collateralTypes,omitempty"`

	Cancelled bool `json:"cancelled,omitempty"`
}

// HasFlagSelections reports whether the channel/type selectors were ever
// touched for this offer. Even an all-false selection counts: it routes
// derivation down the flag path instead of the legacy text path.
func (o Offer) HasFlagSelections() bool {
	return o.CollateralChannels != nil || o.CollateralTypes != nil
}

// Channels returns the channel flags, defaulting to all-off when absent.
func (o Offer) Channels() ChannelFlags {
	if o.CollateralChannels == nil {
		return ChannelFlags{}
	}
	return *o.CollateralChannels
}

// Types returns the creative type flags, defaulting to all-off when absent.
func (o Offer) Types() TypeFlags {
	if o.CollateralTypes == nil {
		return TypeFlags{}
	}
	return *o.CollateralTypes
}
