package export

import (
	"encoding/json"

	"github.com/sales-plan/backend/internal/models"
)

// OfferRow is one flattened offer in the JSON export.
type OfferRow struct {
	Month      string `json:"month"`
	MonthTheme string `json:"monthTheme,omitempty"`
	models.Offer
}

// OffersJSON flattens every offer of the given months into a JSON blob.
func OffersJSON(months []models.Month) ([]byte, error) {
	rows := make([]OfferRow, 0)
	for _, m := range months {
		for _, o := range m.Offers {
			rows = append(rows, OfferRow{Month: m.Name, MonthTheme: m.Theme, Offer: o})
		}
	}
	return json.MarshalIndent(rows, "", "  ")
}
