package billing

import (
	"fmt"
	"time"

	"converso.io/billing/models"
	"converso.io/billing/utils"
)

// planMonthDays is the commercial month length. A full calendar month
// always charges exactly the plan price, whatever its real length.
const planMonthDays = 30

type ProrationCalculator struct{}

// PlanItem computes the base plan charge for [start, end]. Dates must
// arrive normalized to start-of-day/end-of-day.
func (ProrationCalculator) PlanItem(workspace *models.Workspace, start, end time.Time) models.PaymentItem {
	days := utils.WholeDays(start, end)
	if utils.IsFullMonth(start, end) {
		days = planMonthDays
	}
	unitPrice := workspace.PlanPrice / planMonthDays
	return models.PaymentItem{
		ItemDescription: planDescription(workspace),
		Quantity:        float64(days),
		UnitPrice:       unitPrice,
		TotalPrice:      utils.RoundMoney(float64(days) * unitPrice),
		Type:            models.ItemTypePlan,
	}
}

func planDescription(workspace *models.Workspace) string {
	if workspace.BillingMode == models.BillingModePerChannel {
		return "Plano mensal"
	}
	var conversationLimit, userLimit int64
	if workspace.ConversationLimit != nil {
		conversationLimit = *workspace.ConversationLimit
	}
	if workspace.UserLimit != nil {
		userLimit = *workspace.UserLimit
	}
	return fmt.Sprintf("Plano mensal: %d Atendimentos, %d Usuários", conversationLimit, userLimit)
}
