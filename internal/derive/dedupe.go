package derive

import (
	"strings"

	"github.com/sales-plan/backend/internal/models"
)

// TimelineKey is the semantic identity of a timeline record: normalized
// offer name, send date, and the first 50 characters of the content. Records
// sharing a key are the same touchpoint regardless of id.
func TimelineKey(r models.CRMTimeline) string {
	prefix := []rune(r.Content)
	if len(prefix) > 50 {
		prefix = prefix[:50]
	}
	return strings.ToLower(strings.TrimSpace(r.Offer)) + "|" +
		strings.TrimSpace(r.SendDate) + "|" +
		strings.ToLower(strings.TrimSpace(string(prefix)))
}

// DedupeTimeline keeps the first record for each key, preserving order.
// Applied defensively on every read and to freshly derived candidates.
func DedupeTimeline(list []models.CRMTimeline) []models.CRMTimeline {
	seen := make(map[string]struct{}, len(list))
	out := make([]models.CRMTimeline, 0, len(list))
	for _, r := range list {
		key := TimelineKey(r)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
