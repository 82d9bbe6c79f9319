package billing

import (
	"github.com/pkg/errors"
	"converso.io/billing/models"
	"converso.io/billing/repository"
	"converso.io/billing/utils"
)

// VirtualItemAssembler builds the full, not-yet-persisted item list of
// an open payment: proration, overage for the workspace's billing
// mode, and specification items. Items are recomputed on every call
// and never stored while the payment is opened.
type VirtualItemAssembler struct {
	proration      ProrationCalculator
	overage        *OverageCalculator
	channelOverage *ChannelOverageCalculator
	specifications *SpecificationEngine
}

func NewVirtualItemAssembler(workspaces repository.WorkspaceRepository, usage repository.UsageReader, specifications repository.SpecificationRepository) *VirtualItemAssembler {
	engine := NewSpecificationEngine(specifications)
	engine.Register(SpecTypeChannelDiscount, NewChannelDiscountStrategy(workspaces, usage))
	return &VirtualItemAssembler{
		overage:        NewOverageCalculator(usage),
		channelOverage: NewChannelOverageCalculator(workspaces, usage),
		specifications: engine,
	}
}

func (a *VirtualItemAssembler) VirtualItems(workspace *models.Workspace, payment *models.Payment) ([]models.PaymentItem, error) {
	start := utils.StartOfDay(payment.BillingStartDate)
	end := utils.EndOfDay(payment.BillingEndDate)

	items := []models.PaymentItem{a.proration.PlanItem(workspace, start, end)}

	var overageItems []models.PaymentItem
	var err error
	if workspace.BillingMode == models.BillingModePerChannel {
		overageItems, err = a.channelOverage.Items(workspace, start, end)
	} else {
		overageItems, err = a.overage.Items(workspace, start, end)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "computing overage for workspace %d", workspace.Id)
	}
	items = append(items, overageItems...)

	specItems, err := a.specifications.WorkspaceItems(workspace, start, end)
	if err != nil {
		return nil, errors.Wrapf(err, "computing specification items for workspace %d", workspace.Id)
	}
	items = append(items, specItems...)

	for i := range items {
		items[i].PaymentId = payment.Id
	}
	return items, nil
}

// Total sums item totals the way the close operation does.
func Total(items []models.PaymentItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.TotalPrice
	}
	return utils.RoundMoney(total)
}
