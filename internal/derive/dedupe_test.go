package derive

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sales-plan/backend/internal/models"
)

func TestDedupeTimelineKeepsFirstOccurrence(t *testing.T) {
	list := []models.CRMTimeline{
		{ID: "a", Offer: "Launch Sale", SendDate: "Jan 15, 2026", Content: "Big launch"},
		{ID: "b", Offer: "Launch Sale", SendDate: "Jan 15, 2026", Content: "Big launch"},
		{ID: "c", Offer: "Other Offer", SendDate: "Jan 15, 2026", Content: "Big launch"},
	}

	out := DedupeTimeline(list)
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}
	if out[0].ID != "a" {
		t.Errorf("kept %q, want the earliest record a", out[0].ID)
	}
	if out[1].ID != "c" {
		t.Errorf("second record = %q, want c", out[1].ID)
	}
}

func TestDedupeTimelineIdempotent(t *testing.T) {
	list := []models.CRMTimeline{
		{ID: "a", Offer: "X", SendDate: "Jan 15, 2026", Content: "one"},
		{ID: "b", Offer: "X", SendDate: "Jan 15, 2026", Content: "one"},
		{ID: "c", Offer: "X", SendDate: "Jan 16, 2026", Content: "two"},
		{ID: "d", Offer: "Y", SendDate: "Jan 15, 2026", Content: "one"},
	}

	once := DedupeTimeline(list)
	twice := DedupeTimeline(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("dedupe is not idempotent: %v vs %v", once, twice)
	}
	if len(once) > len(list) {
		t.Errorf("dedupe grew the list: %d > %d", len(once), len(list))
	}

	// Every key of the input appears exactly once in the output.
	wantKeys := map[string]bool{}
	for _, r := range list {
		wantKeys[TimelineKey(r)] = true
	}
	gotKeys := map[string]int{}
	for _, r := range once {
		gotKeys[TimelineKey(r)]++
	}
	for k := range wantKeys {
		if gotKeys[k] != 1 {
			t.Errorf("key %q appears %d times in output, want 1", k, gotKeys[k])
		}
	}
}

func TestDedupeTimelineNormalization(t *testing.T) {
	content := strings.Repeat("a", 50)
	list := []models.CRMTimeline{
		{ID: "a", Offer: "Launch Sale", SendDate: "Jan 15, 2026", Content: content + " extra tail"},
		{ID: "b", Offer: " launch sale ", SendDate: "Jan 15, 2026", Content: content + " different tail entirely"},
	}

	out := DedupeTimeline(list)
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1: offer case/whitespace and content beyond 50 chars must not matter", len(out))
	}
	if out[0].ID != "a" {
		t.Errorf("kept %q, want a", out[0].ID)
	}
}

func TestTimelineKey(t *testing.T) {
	tests := []struct {
		name string
		a, b models.CRMTimeline
		same bool
	}{
		{
			name: "case insensitive offer",
			a:    models.CRMTimeline{Offer: "Sale", SendDate: "Jan 15, 2026", Content: "hi"},
			b:    models.CRMTimeline{Offer: "SALE", SendDate: "Jan 15, 2026", Content: "hi"},
			same: true,
		},
		{
			name: "different send dates",
			a:    models.CRMTimeline{Offer: "Sale", SendDate: "Jan 15, 2026", Content: "hi"},
			b:    models.CRMTimeline{Offer: "Sale", SendDate: "Jan 16, 2026", Content: "hi"},
			same: false,
		},
		{
			name: "content differs within prefix",
			a:    models.CRMTimeline{Offer: "Sale", SendDate: "Jan 15, 2026", Content: "hello"},
			b:    models.CRMTimeline{Offer: "Sale", SendDate: "Jan 15, 2026", Content: "goodbye"},
			same: false,
		},
		{
			name: "id is ignored",
			a:    models.CRMTimeline{ID: "x", Offer: "Sale", SendDate: "Jan 15, 2026", Content: "hi"},
			b:    models.CRMTimeline{ID: "y", Offer: "Sale", SendDate: "Jan 15, 2026", Content: "hi"},
			same: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimelineKey(tt.a) == TimelineKey(tt.b); got != tt.same {
				t.Errorf("keys equal = %v, want %v", got, tt.same)
			}
		})
	}
}
