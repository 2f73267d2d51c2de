package derive

import (
	"testing"

	"github.com/sales-plan/backend/internal/models"
)

func januaryMonth(offers ...models.Offer) *models.Month {
	return &models.Month{
		ID:     "jan",
		Name:   "January",
		Theme:  "New Year New You",
		Offers: offers,
	}
}

func TestSeedMonthInitializesOnceAndStaysStable(t *testing.T) {
	m := januaryMonth(flagOffer(
		models.ChannelFlags{WhatsApp: true, Email: true},
		models.TypeFlags{ImageCreative: true, EmailTemplate: true},
	))

	res := SeedMonth(m, 2026)
	if !res.CollateralChanged || !res.TimelineChanged {
		t.Fatal("first seed must populate both sets")
	}
	if m.MarketingCollateral.Len() != 2 {
		t.Fatalf("collateral = %d records, want 2 (WhatsApp + Email)", m.MarketingCollateral.Len())
	}
	for _, r := range m.MarketingCollateral.Records() {
		if r.DueDate != "Jan 10, 2026" {
			t.Errorf("dueDate = %q, want Jan 10, 2026", r.DueDate)
		}
	}

	// No offer change: a second full reconcile must write nothing ...
	if res := ReconcileMonth(m, 2026); res.Changed() {
		t.Error("reconcile after seed with unchanged offers reported a write")
	}
	// ... and seeding again is a no-op by construction.
	if res := SeedMonth(m, 2026); res.Changed() {
		t.Error("second seed reported a write")
	}
}

func TestSeedMonthSkipsUserClearedSets(t *testing.T) {
	m := januaryMonth(flagOffer(
		models.ChannelFlags{WhatsApp: true},
		models.TypeFlags{ImageCreative: true},
	))
	// User deliberately cleared everything: populated but empty.
	m.MarketingCollateral = models.PopulatedSet([]models.MarketingCollateral{})
	m.CRMTimeline = models.PopulatedSet([]models.CRMTimeline{})

	if res := SeedMonth(m, 2026); res.Changed() {
		t.Fatal("seed repopulated a user-cleared set")
	}
	if m.MarketingCollateral.Len() != 0 || m.CRMTimeline.Len() != 0 {
		t.Fatal("user-cleared sets must stay empty")
	}
}

func TestSeedMonthPersistsEmptyDerivation(t *testing.T) {
	m := januaryMonth() // no offers at all
	res := SeedMonth(m, 2026)
	if !res.Changed() {
		t.Fatal("seed of an untouched month must still populate (empty) sets")
	}
	if !m.MarketingCollateral.Populated() || m.MarketingCollateral.Len() != 0 {
		t.Error("collateral should be populated and empty")
	}
	if !m.CRMTimeline.Populated() || m.CRMTimeline.Len() != 0 {
		t.Error("timeline should be populated and empty")
	}
}

func TestReconcilePreservesManualEditsToNonIdentityFields(t *testing.T) {
	m := januaryMonth(flagOffer(
		models.ChannelFlags{Email: true},
		models.TypeFlags{EmailTemplate: true},
	))
	SeedMonth(m, 2026)

	// Manual edits to messaging/notes/dueDate are outside the identity key.
	records := m.MarketingCollateral.Records()
	records[0].Messaging = "hand-tuned copy"
	records[0].Notes = "designer picked a better hook"
	records[0].DueDate = "Jan 5, 2026"
	m.MarketingCollateral = models.PopulatedSet(records)

	if res := ReconcileMonth(m, 2026); res.CollateralChanged {
		t.Fatal("reconcile rewrote a list whose identity signature matched")
	}
	if got := m.MarketingCollateral.Records()[0].Messaging; got != "hand-tuned copy" {
		t.Errorf("messaging = %q, manual edit was lost", got)
	}
}

func TestReconcileRewritesOnIdentityChange(t *testing.T) {
	offer := flagOffer(
		models.ChannelFlags{Email: true},
		models.TypeFlags{EmailTemplate: true},
	)
	m := januaryMonth(offer)
	SeedMonth(m, 2026)

	records := m.MarketingCollateral.Records()
	records[0].Messaging = "hand-tuned copy"
	m.MarketingCollateral = models.PopulatedSet(records)

	// Widening the selection changes the identity signature: the whole list
	// is replaced and the manual edit goes with it.
	m.Offers[0].CollateralChannels.WhatsApp = true
	m.Offers[0].CollateralTypes.ImageCreative = true

	res := ReconcileMonth(m, 2026)
	if !res.CollateralChanged {
		t.Fatal("reconcile did not rewrite after a watched change")
	}
	if m.MarketingCollateral.Len() != 2 {
		t.Fatalf("collateral = %d records, want 2", m.MarketingCollateral.Len())
	}
	for _, r := range m.MarketingCollateral.Records() {
		if r.Messaging == "hand-tuned copy" {
			t.Error("manual edit unexpectedly survived a full rewrite")
		}
	}
}

func TestReconcileDropsRecordsOfDeletedOffer(t *testing.T) {
	keep := flagOffer(models.ChannelFlags{Email: true}, models.TypeFlags{EmailTemplate: true})
	gone := models.Offer{
		ID: "offer-2", Title: "Doomed Offer", Type: models.OfferTypeChallenge,
		CollateralChannels: &models.ChannelFlags{WhatsApp: true},
		CollateralTypes:    &models.TypeFlags{ImageCreative: true},
	}
	m := januaryMonth(keep, gone)
	SeedMonth(m, 2026)
	if m.MarketingCollateral.Len() != 2 {
		t.Fatalf("setup: collateral = %d, want 2", m.MarketingCollateral.Len())
	}

	m.Offers = m.Offers[:1]
	res := ReconcileMonth(m, 2026)
	if !res.CollateralChanged {
		t.Fatal("reconcile did not react to the deleted offer")
	}
	for _, r := range m.MarketingCollateral.Records() {
		if r.Offer == "Doomed Offer" {
			t.Error("derived record for deleted offer survived")
		}
	}
}

func TestSignatureIgnoresIDChurn(t *testing.T) {
	a := []models.MarketingCollateral{{ID: "1", Offer: "X", Type: "Email Campaign", CollateralNeeded: "Email Template", Messaging: "a"}}
	b := []models.MarketingCollateral{{ID: "2", Offer: "X", Type: "Email Campaign", CollateralNeeded: "Email Template", Messaging: "b"}}
	if !SignaturesEqual(CollateralSignature(a), CollateralSignature(b)) {
		t.Error("signature should ignore id and messaging differences")
	}

	c := []models.MarketingCollateral{{ID: "1", Offer: "X", Type: "WhatsApp Campaign", CollateralNeeded: "Image Creative"}}
	if SignaturesEqual(CollateralSignature(a), CollateralSignature(c)) {
		t.Error("signature should differ when the type changes")
	}
	if SignaturesEqual(CollateralSignature(a), CollateralSignature(nil)) {
		t.Error("signature should differ on length")
	}
}

func TestOffersFingerprint(t *testing.T) {
	base := func() []models.Offer {
		return []models.Offer{flagOffer(
			models.ChannelFlags{Email: true},
			models.TypeFlags{EmailTemplate: true},
		)}
	}

	t.Run("title change is not watched", func(t *testing.T) {
		a, b := base(), base()
		b[0].Title = "Renamed"
		b[0].WhyItWorks = "different rationale"
		if OffersFingerprint(a) != OffersFingerprint(b) {
			t.Error("fingerprint moved on unwatched fields")
		}
	})

	t.Run("flag change is watched", func(t *testing.T) {
		a, b := base(), base()
		b[0].CollateralChannels.WhatsApp = true
		if OffersFingerprint(a) == OffersFingerprint(b) {
			t.Error("fingerprint ignored a channel flag change")
		}
	})

	t.Run("absent flags differ from all-false flags", func(t *testing.T) {
		a, b := base(), base()
		b[0].CollateralChannels = nil
		if OffersFingerprint(a) == OffersFingerprint(b) {
			t.Error("fingerprint conflated nil and zero channel flags")
		}
	})

	t.Run("cancellation is watched", func(t *testing.T) {
		a, b := base(), base()
		b[0].Cancelled = true
		if OffersFingerprint(a) == OffersFingerprint(b) {
			t.Error("fingerprint ignored cancellation")
		}
	})
}
