// Package derive holds the pure core of the planner: turning an offer's
// channel/type selections into marketing-collateral and CRM-timeline
// candidate records, deduplicating timelines, and reconciling candidates
// against stored state. Nothing in here does I/O.
package derive

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sales-plan/backend/internal/models"
)

// Media labels used on derived records.
const (
	MediumWhatsApp = "WhatsApp Broadcast"
	MediumEmail    = "Email"
	MediumInStudio = "In-Studio Display"
	MediumSocial   = "Social Media"
	MediumMetaAds  = "Meta Ads"
	MediumWebsite  = "Website"
	MediumMixed    = "Mixed Media"
)

// MonthContext carries the month-level inputs derivation needs.
type MonthContext struct {
	MonthName string
	Theme     string
	Dates     models.KeyDates
}

// ContextFor builds the derivation context for a month in a given year.
func ContextFor(m *models.Month, year int) MonthContext {
	return MonthContext{
		MonthName: m.Name,
		Theme:     m.Theme,
		Dates:     models.MonthKeyDates(m.Name, year),
	}
}

// Collateral derives creative-asset requirements for all non-cancelled
// offers of a month. Offers with channel/type selections (even all-false)
// go through the rule table; offers with only legacy free text go through
// the keyword scan; offers with neither produce nothing.
func Collateral(offers []models.Offer, mc MonthContext) []models.MarketingCollateral {
	var out []models.MarketingCollateral
	for _, o := range offers {
		if o.Cancelled {
			continue
		}
		switch {
		case o.HasFlagSelections():
			out = append(out, collateralFromFlags(o, mc)...)
		case strings.TrimSpace(o.MarketingCollateral) != "":
			out = append(out, collateralFromLegacyText(o, mc)...)
		}
	}
	return out
}

func collateralFromFlags(o models.Offer, mc MonthContext) []models.MarketingCollateral {
	ch := o.Channels()
	ct := o.Types()
	var recs []models.MarketingCollateral

	add := func(recType, needed, medium string) {
		recs = append(recs, newCollateral(o, mc, recType, needed, medium))
	}

	if ch.WhatsApp && (ct.ImageCreative || ct.SocialPosts) {
		add("WhatsApp Campaign", joinSet(
			pick(ct.ImageCreative, "Image Creative"),
			pick(ct.SocialPosts, "Social Posts"),
		), MediumWhatsApp)
	}
	if ch.Email && (ct.EmailTemplate || ct.ImageCreative) {
		add("Email Campaign", joinSet(
			pick(ct.EmailTemplate, "Email Template"),
			pick(ct.ImageCreative, "Image Creative"),
		), MediumEmail)
	}
	if ch.InStudio && (ct.TentCards || ct.EaselStandee) {
		add("In-Studio Materials", joinSet(
			pick(ct.TentCards, "Tent Cards"),
			pick(ct.EaselStandee, "Easel Standee"),
		), MediumInStudio)
	}
	if ch.SocialMedia && (ct.ImageCreative || ct.VideoCreative || ct.SocialPosts || ct.StoryTemplate) {
		add("Social Media Content", joinSet(
			pick(ct.ImageCreative, "Image Creative"),
			pick(ct.VideoCreative, "Video Creative"),
			pick(ct.SocialPosts, "Social Posts"),
			pick(ct.StoryTemplate, "Story Template"),
		), MediumSocial)
	}
	if ch.MetaAds && (ct.ImageCreative || ct.VideoCreative) {
		add("Meta Ads Campaign", joinSet(
			pick(ct.ImageCreative, "Image Creative"),
			pick(ct.VideoCreative, "Video Creative"),
		), MediumMetaAds)
	}
	if ch.Website && ct.LandingPage {
		add("Landing Page", "Landing Page", MediumWebsite)
	}

	return recs
}

// Legacy keyword categories, scanned in a fixed order so output is stable.
// "landing page"/"website" mentions are recognized but deliberately emit
// nothing: website work is tracked outside the collateral list.
func collateralFromLegacyText(o models.Offer, mc MonthContext) []models.MarketingCollateral {
	text := strings.ToLower(o.MarketingCollateral)
	var recs []models.MarketingCollateral
	matched := false

	if strings.Contains(text, "email") {
		matched = true
		recs = append(recs, newCollateral(o, mc, "Email Campaign", "Email Template", MediumEmail))
	}
	if strings.Contains(text, "whatsapp") {
		matched = true
		recs = append(recs, newCollateral(o, mc, "WhatsApp Blast", "Image Creative", MediumWhatsApp))
	}
	if strings.Contains(text, "poster") || strings.Contains(text, "easel") {
		matched = true
		recs = append(recs, newCollateral(o, mc, "In-Studio Materials", "Easel Standee", MediumInStudio))
	}
	if strings.Contains(text, "tent card") {
		matched = true
		recs = append(recs, newCollateral(o, mc, "In-Studio Materials", "Tent Cards", MediumInStudio))
	}
	if strings.Contains(text, "meta ads") || strings.Contains(text, "instagram") || strings.Contains(text, "facebook") {
		matched = true
		recs = append(recs, newCollateral(o, mc, "Meta Ads Campaign", "Image Creative", MediumMetaAds))
	}
	if strings.Contains(text, "landing page") || strings.Contains(text, "website") {
		matched = true
	}

	if !matched {
		recs = append(recs, newCollateral(o, mc, "Mixed Media", firstSegment(o.MarketingCollateral), MediumMixed))
	}
	return recs
}

// Timeline derives the CRM send schedule. Only channel flags matter here;
// creative types do not influence sends. The legacy scan runs only when the
// channel selector was never touched at all.
func Timeline(offers []models.Offer, mc MonthContext) []models.CRMTimeline {
	var out []models.CRMTimeline
	for _, o := range offers {
		if o.Cancelled {
			continue
		}
		if o.CollateralChannels != nil {
			out = append(out, timelineFromChannels(o, mc)...)
		} else if strings.TrimSpace(o.MarketingCollateral) != "" {
			out = append(out, timelineFromLegacyText(o, mc)...)
		}
	}
	return out
}

func timelineFromChannels(o models.Offer, mc MonthContext) []models.CRMTimeline {
	ch := o.Channels()
	var recs []models.CRMTimeline

	if ch.MetaAds {
		recs = append(recs, models.CRMTimeline{
			ID:           uuid.New().String(),
			OfferID:      o.ID,
			Offer:        o.Title,
			Content:      messaging(MediumMetaAds, o, mc),
			SendDate:     mc.Dates.Launch,
			AdsStartDate: mc.Dates.AdsStart,
			AdsEndDate:   mc.Dates.AdsEnd,
		})
	}
	if ch.Email {
		recs = append(recs, newTimeline(o, messaging(MediumEmail, o, mc), mc.Dates.Prelaunched))
	}
	if ch.WhatsApp {
		recs = append(recs, newTimeline(o, messaging(MediumWhatsApp, o, mc), mc.Dates.Launch))
	}
	if ch.SocialMedia {
		recs = append(recs, newTimeline(o, messaging(MediumSocial, o, mc), mc.Dates.Prelaunched))
	}
	return recs
}

func timelineFromLegacyText(o models.Offer, mc MonthContext) []models.CRMTimeline {
	text := strings.ToLower(o.MarketingCollateral)
	var recs []models.CRMTimeline

	if strings.Contains(text, "meta") || strings.Contains(text, "instagram") ||
		strings.Contains(text, "facebook") || strings.Contains(text, "google ads") {
		recs = append(recs, models.CRMTimeline{
			ID:           uuid.New().String(),
			OfferID:      o.ID,
			Offer:        o.Title,
			Content:      messaging(MediumMetaAds, o, mc),
			SendDate:     mc.Dates.Launch,
			AdsStartDate: mc.Dates.AdsStart,
			AdsEndDate:   mc.Dates.AdsEnd,
		})
	}
	if strings.Contains(text, "email") {
		recs = append(recs, newTimeline(o, messaging(MediumEmail, o, mc), mc.Dates.Prelaunched))
	}
	if strings.Contains(text, "whatsapp") {
		recs = append(recs, newTimeline(o, messaging(MediumWhatsApp, o, mc), mc.Dates.Launch))
	}
	return recs
}

// messaging renders the per-medium copy template, interpolating the offer
// type and the lower-cased month theme.
func messaging(medium string, o models.Offer, mc MonthContext) string {
	theme := strings.ToLower(strings.TrimSpace(mc.Theme))
	offerType := o.Type
	if offerType == "" {
		offerType = "special"
	}
	switch medium {
	case MediumWhatsApp:
		return fmt.Sprintf("It's time for %s! Our %s offer %q goes live on %s. Reply YES to claim your spot.", theme, offerType, o.Title, mc.Dates.Launch)
	case MediumEmail:
		return fmt.Sprintf("Kick off %s with our %s offer %q. Early access opens %s.", theme, offerType, o.Title, mc.Dates.Prelaunched)
	case MediumInStudio:
		return fmt.Sprintf("Ask the front desk about %q, our %s offer for %s.", o.Title, offerType, theme)
	case MediumSocial:
		return fmt.Sprintf("Organic post: %s is here. Tease the %s offer %q ahead of launch on %s.", theme, offerType, o.Title, mc.Dates.Launch)
	case MediumMetaAds:
		return fmt.Sprintf("Paid reach for %q: %s offer targeting %s, ads run %s to %s.", o.Title, offerType, theme, mc.Dates.AdsStart, mc.Dates.AdsEnd)
	case MediumWebsite:
		return fmt.Sprintf("Landing page for %q, the %s offer anchoring %s.", o.Title, offerType, theme)
	default:
		return fmt.Sprintf("Promote %q, our %s offer for %s.", o.Title, offerType, theme)
	}
}

func newCollateral(o models.Offer, mc MonthContext, recType, needed, medium string) models.MarketingCollateral {
	return models.MarketingCollateral{
		ID:               uuid.New().String(),
		OfferID:          o.ID,
		Offer:            o.Title,
		Type:             recType,
		CollateralNeeded: needed,
		Medium:           medium,
		Messaging:        messaging(medium, o, mc),
		DueDate:          mc.Dates.Prelaunched,
		Notes:            o.WhyItWorks,
	}
}

func newTimeline(o models.Offer, content, sendDate string) models.CRMTimeline {
	return models.CRMTimeline{
		ID:       uuid.New().String(),
		OfferID:  o.ID,
		Offer:    o.Title,
		Content:  content,
		SendDate: sendDate,
	}
}

func pick(set bool, label string) string {
	if set {
		return label
	}
	return ""
}

func joinSet(labels ...string) string {
	var kept []string
	for _, l := range labels {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, ", ")
}

// firstSegment is the Mixed Media fallback name: the text up to the first
// comma, or the first 50 characters when there is no comma.
func firstSegment(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, ","); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	runes := []rune(text)
	if len(runes) > 50 {
		return strings.TrimSpace(string(runes[:50]))
	}
	return text
}
