package derive

import (
	"strings"

	"github.com/sales-plan/backend/internal/models"
)

// ReconcileResult reports which record sets a reconcile pass rewrote.
type ReconcileResult struct {
	CollateralChanged bool
	TimelineChanged   bool
}

// Changed reports whether anything was written.
func (r ReconcileResult) Changed() bool {
	return r.CollateralChanged || r.TimelineChanged
}

// ReconcileMonth brings a month's derived record sets in line with its
// offers. An unpopulated set is seeded exactly once, even with an empty
// candidate list; after that it only gets rewritten when the candidate
// signature stops matching the stored one. A user-cleared (populated, empty)
// set with an empty candidate list therefore stays untouched, and manual
// edits to non-identity fields survive any number of passes.
//
// The rewrite is a whole-list replacement: ids churn and manual additions or
// edits in a rewritten set are discarded.
func ReconcileMonth(m *models.Month, year int) ReconcileResult {
	mc := ContextFor(m, year)
	var res ReconcileResult

	collateral := Collateral(m.Offers, mc)
	if !m.MarketingCollateral.Populated() ||
		!SignaturesEqual(CollateralSignature(m.MarketingCollateral.Records()), CollateralSignature(collateral)) {
		m.MarketingCollateral = models.PopulatedSet(collateral)
		res.CollateralChanged = true
	}

	timeline := DedupeTimeline(Timeline(m.Offers, mc))
	if !m.CRMTimeline.Populated() ||
		!SignaturesEqual(TimelineSignature(m.CRMTimeline.Records()), TimelineSignature(timeline)) {
		m.CRMTimeline = models.PopulatedSet(timeline)
		res.TimelineChanged = true
	}

	return res
}

// SeedMonth runs only the one-time UNINITIALIZED transition: unpopulated
// sets are derived and populated (possibly empty), populated sets are left
// exactly as stored. Used on load and by the background sweep, where no
// watched offer field has changed.
func SeedMonth(m *models.Month, year int) ReconcileResult {
	mc := ContextFor(m, year)
	var res ReconcileResult

	if !m.MarketingCollateral.Populated() {
		m.MarketingCollateral = models.PopulatedSet(Collateral(m.Offers, mc))
		res.CollateralChanged = true
	}
	if !m.CRMTimeline.Populated() {
		m.CRMTimeline = models.PopulatedSet(DedupeTimeline(Timeline(m.Offers, mc)))
		res.TimelineChanged = true
	}
	return res
}

// OffersFingerprint hashes the watched offer fields (id, channel flags, type
// flags). Reconciliation only re-runs when this value changes; edits to
// title, pricing or free text leave derived records alone until the next
// watched change.
func OffersFingerprint(offers []models.Offer) string {
	var b strings.Builder
	for _, o := range offers {
		b.WriteString(o.ID)
		b.WriteByte(':')
		if o.CollateralChannels != nil {
			ch := *o.CollateralChannels
			writeBits(&b, ch.WhatsApp, ch.Email, ch.InStudio, ch.Website, ch.SocialMedia, ch.MetaAds)
		} else {
			b.WriteByte('-')
		}
		b.WriteByte(':')
		if o.CollateralTypes != nil {
			ct := *o.CollateralTypes
			writeBits(&b, ct.TentCards, ct.ImageCreative, ct.VideoCreative, ct.EaselStandee,
				ct.EmailTemplate, ct.LandingPage, ct.SocialPosts, ct.StoryTemplate)
		} else {
			b.WriteByte('-')
		}
		if o.Cancelled {
			b.WriteString(":x")
		}
		b.WriteByte(';')
	}
	return b.String()
}

func writeBits(b *strings.Builder, bits ...bool) {
	for _, set := range bits {
		if set {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
}
