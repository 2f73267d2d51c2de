package derive

import "github.com/sales-plan/backend/internal/models"

// Signatures are the coarse change-detection keys of the reconciler: one
// identity string per record, in list order, built from the fields that
// derivation controls. Ids and user-editable fields (messaging, notes, due
// date, CTA links) are deliberately excluded so manual edits to them do not
// force a rewrite.

// CollateralSignature keys each record by (offer, type, collateralNeeded).
func CollateralSignature(records []models.MarketingCollateral) []string {
	sig := make([]string, len(records))
	for i, r := range records {
		sig[i] = r.Offer + "|" + r.Type + "|" + r.CollateralNeeded
	}
	return sig
}

// TimelineSignature keys each record by (offer, content, sendDate).
func TimelineSignature(records []models.CRMTimeline) []string {
	sig := make([]string, len(records))
	for i, r := range records {
		sig[i] = r.Offer + "|" + r.Content + "|" + r.SendDate
	}
	return sig
}

// SignaturesEqual compares two signatures element-wise.
func SignaturesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
