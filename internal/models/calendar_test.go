package models

import "testing"

func TestMonthKeyDates(t *testing.T) {
	tests := []struct {
		month string
		want  KeyDates
	}{
		{"January", KeyDates{Prelaunched: "Jan 10, 2026", AdsStart: "Jan 12, 2026", Launch: "Jan 15, 2026", AdsEnd: "Jan 31, 2026"}},
		{"February", KeyDates{Prelaunched: "Feb 10, 2026", AdsStart: "Feb 12, 2026", Launch: "Feb 15, 2026", AdsEnd: "Feb 28, 2026"}},
		{"April", KeyDates{Prelaunched: "Apr 10, 2026", AdsStart: "Apr 12, 2026", Launch: "Apr 15, 2026", AdsEnd: "Apr 30, 2026"}},
		{"December", KeyDates{Prelaunched: "Dec 10, 2026", AdsStart: "Dec 12, 2026", Launch: "Dec 15, 2026", AdsEnd: "Dec 31, 2026"}},
		{"  january ", KeyDates{Prelaunched: "Jan 10, 2026", AdsStart: "Jan 12, 2026", Launch: "Jan 15, 2026", AdsEnd: "Jan 31, 2026"}},
		{"Nonsense", KeyDates{Prelaunched: "Jan 10, 2026", AdsStart: "Jan 12, 2026", Launch: "Jan 15, 2026", AdsEnd: "Jan 31, 2026"}},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			if got := MonthKeyDates(tt.month, 2026); got != tt.want {
				t.Errorf("MonthKeyDates(%q, 2026) = %+v, want %+v", tt.month, got, tt.want)
			}
		})
	}
}

func TestMonthKeyDatesLeapFebruary(t *testing.T) {
	got := MonthKeyDates("February", 2028)
	if got.AdsEnd != "Feb 29, 2028" {
		t.Errorf("AdsEnd = %q, want Feb 29, 2028", got.AdsEnd)
	}
}

func TestDefaultPlanShape(t *testing.T) {
	p := DefaultPlan(2026)
	if p.Year != 2026 {
		t.Errorf("year = %d", p.Year)
	}
	if len(p.Months) != 12 {
		t.Fatalf("months = %d, want 12", len(p.Months))
	}
	for i, name := range MonthNames() {
		m := p.Months[i]
		if m.Name != name {
			t.Errorf("month %d name = %q, want %q", i, m.Name, name)
		}
		if m.Theme == "" {
			t.Errorf("month %q has no theme", name)
		}
		if m.Offers == nil || len(m.Offers) != 0 {
			t.Errorf("month %q should start with an empty offer list", name)
		}
		if m.MarketingCollateral.Populated() || m.CRMTimeline.Populated() {
			t.Errorf("month %q record sets must start unpopulated", name)
		}
	}
	if p.FindMonth("jan") == nil || p.FindMonth("dec") == nil {
		t.Error("month ids should be the lowercase three-letter prefix")
	}
	if p.FindMonth("nope") != nil {
		t.Error("FindMonth on an unknown id should return nil")
	}
}

func TestPlanClonePreservesRecordSetState(t *testing.T) {
	p := DefaultPlan(2026)
	p.Months[0].CRMTimeline = PopulatedSet([]CRMTimeline{})

	c, err := p.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if c.Months[0].MarketingCollateral.Populated() {
		t.Error("clone populated an unpopulated set")
	}
	if !c.Months[0].CRMTimeline.Populated() {
		t.Error("clone lost the populated-empty state")
	}

	// Mutating the clone must not touch the original.
	c.Months[0].Theme = "changed"
	if p.Months[0].Theme == "changed" {
		t.Error("clone shares memory with the original")
	}
}
