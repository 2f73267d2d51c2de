package export

import (
	"fmt"

	"github.com/sales-plan/backend/internal/models"
)

// Export scopes.
const (
	ScopeCurrent = "current"
	ScopeAll     = "all"
)

// ScopeMonths resolves an export scope to the months it covers: the whole
// plan, or the single named month.
func ScopeMonths(plan *models.Plan, scope, monthID string) ([]models.Month, error) {
	switch scope {
	case "", ScopeAll:
		return plan.Months, nil
	case ScopeCurrent:
		m := plan.FindMonth(monthID)
		if m == nil {
			return nil, fmt.Errorf("unknown month %q", monthID)
		}
		return []models.Month{*m}, nil
	default:
		return nil, fmt.Errorf("unknown scope %q", scope)
	}
}
