package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/sales-plan/backend/internal/models"
)

func sampleMonths() []models.Month {
	jan := models.Month{
		ID:    "jan",
		Name:  "January",
		Theme: "New Year New You",
		Offers: []models.Offer{
			{
				ID: "o1", Title: "Kickstart Membership", Type: models.OfferTypeMembership,
				Pricing: "₹4999/mo", Discount: "20% off", WhyItWorks: "Resolution season",
				CollateralChannels: &models.ChannelFlags{WhatsApp: true, Email: true},
				CollateralTypes:    &models.TypeFlags{ImageCreative: true},
			},
			{ID: "o2", Title: "Dropped Promo", Type: models.OfferTypeClassPack, Cancelled: true},
		},
	}
	jan.MarketingCollateral = models.PopulatedSet([]models.MarketingCollateral{
		{Offer: "Kickstart Membership", Type: "WhatsApp Campaign", CollateralNeeded: "Image Creative", DueDate: "Jan 10, 2026"},
	})
	jan.CRMTimeline = models.PopulatedSet([]models.CRMTimeline{
		{Offer: "Kickstart Membership", SendDate: "Jan 15, 2026", Content: "Launch blast"},
	})

	feb := models.Month{ID: "feb", Name: "February", Theme: "Heart Health", Offers: []models.Offer{}}
	return []models.Month{jan, feb}
}

func TestWriteOffersCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOffersCSV(&buf, sampleMonths()); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 offers", len(rows))
	}
	if rows[0][0] != "Month" || rows[0][2] != "Title" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	first := rows[1]
	if first[0] != "January" || first[2] != "Kickstart Membership" {
		t.Errorf("first row = %v", first)
	}
	if first[7] != "WhatsApp, Email" {
		t.Errorf("channels = %q, want WhatsApp, Email", first[7])
	}
	if first[8] != "Image Creative" {
		t.Errorf("types = %q", first[8])
	}
	if first[9] != "active" || rows[2][9] != "cancelled" {
		t.Error("status column should reflect cancellation")
	}
}

func TestOffersJSON(t *testing.T) {
	data, err := OffersJSON(sampleMonths())
	if err != nil {
		t.Fatal(err)
	}
	var rows []OfferRow
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Month != "January" || rows[0].MonthTheme != "New Year New You" {
		t.Errorf("month fields not flattened: %+v", rows[0])
	}
	if rows[0].Title != "Kickstart Membership" {
		t.Errorf("offer fields not embedded: %+v", rows[0])
	}
}

func TestOffersJSONEmptyPlanIsArray(t *testing.T) {
	data, err := OffersJSON(nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty export = %s, want []", data)
	}
}

func TestBuildEmailHTML(t *testing.T) {
	html, err := BuildEmailHTML(sampleMonths(), 2026)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	if got := doc.Find("h1").Text(); got != "Sales Plan 2026" {
		t.Errorf("h1 = %q", got)
	}
	if n := doc.Find("section.month").Length(); n != 2 {
		t.Errorf("month sections = %d, want 2", n)
	}

	// Cancelled offers are excluded, so January's table has one data row.
	if n := doc.Find("table.offers tr").Length(); n != 2 {
		t.Errorf("offer table rows = %d, want header + 1", n)
	}
	if doc.Find("table.offers").Text() != "" && strings.Contains(doc.Find("table.offers").Text(), "Dropped Promo") {
		t.Error("cancelled offer leaked into the digest")
	}

	if n := doc.Find("ul.collateral li").Length(); n != 1 {
		t.Errorf("collateral items = %d, want 1", n)
	}
	if got := doc.Find("ul.timeline li").First().Text(); !strings.Contains(got, "Jan 15, 2026") {
		t.Errorf("timeline item = %q, want send date", got)
	}

	// February has no offers and no derived records.
	second := doc.Find("section.month").Eq(1)
	if !strings.Contains(second.Text(), "No offers planned.") {
		t.Error("empty month should say so")
	}
	if second.Find("ul").Length() != 0 {
		t.Error("empty month should have no record lists")
	}
}

func TestScopeMonths(t *testing.T) {
	plan := models.DefaultPlan(2026)

	t.Run("all", func(t *testing.T) {
		months, err := ScopeMonths(plan, ScopeAll, "")
		if err != nil || len(months) != 12 {
			t.Fatalf("months = %d, err = %v", len(months), err)
		}
	})
	t.Run("default scope is all", func(t *testing.T) {
		months, err := ScopeMonths(plan, "", "")
		if err != nil || len(months) != 12 {
			t.Fatalf("months = %d, err = %v", len(months), err)
		}
	})
	t.Run("current month", func(t *testing.T) {
		months, err := ScopeMonths(plan, ScopeCurrent, "mar")
		if err != nil {
			t.Fatal(err)
		}
		if len(months) != 1 || months[0].Name != "March" {
			t.Fatalf("months = %+v", months)
		}
	})
	t.Run("current without a valid month", func(t *testing.T) {
		if _, err := ScopeMonths(plan, ScopeCurrent, "nope"); err == nil {
			t.Error("expected an error for an unknown month")
		}
	})
	t.Run("unknown scope", func(t *testing.T) {
		if _, err := ScopeMonths(plan, "weekly", ""); err == nil {
			t.Error("expected an error for an unknown scope")
		}
	})
}
