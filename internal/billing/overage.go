package billing

import (
	"time"

	"github.com/pkg/errors"
	"converso.io/billing/models"
	"converso.io/billing/repository"
	"converso.io/billing/utils"
)

// OverageCalculator compares usage against the workspace plan limits
// in global billing mode. Dimensions without a configured limit are
// unbounded and skipped; a message limit without an overage price is a
// workspace misconfiguration and aborts the computation.
type OverageCalculator struct {
	usage repository.UsageReader
}

func NewOverageCalculator(usage repository.UsageReader) *OverageCalculator {
	return &OverageCalculator{usage: usage}
}

func (oc *OverageCalculator) Items(workspace *models.Workspace, start, end time.Time) ([]models.PaymentItem, error) {
	var items []models.PaymentItem

	if workspace.MessageLimit != nil {
		if workspace.ExceededMessagePrice == nil {
			return nil, errors.Wrapf(models.ErrMissingExceededMessagePrice, "workspace %d", workspace.Id)
		}
		used, err := oc.usage.CountMessages(workspace.Id, start, end)
		if err != nil {
			return nil, errors.Wrap(err, "counting messages")
		}
		if item := overageItem(used, *workspace.MessageLimit, *workspace.ExceededMessagePrice,
			"Mensagens excedentes", models.ItemTypeExceededMessage); item != nil {
			items = append(items, *item)
		}
	}

	if workspace.HsmMessageLimit != nil && workspace.ExceededHsmMessagePrice != nil {
		used, err := oc.usage.CountHsmMessages(workspace.Id, start, end)
		if err != nil {
			return nil, errors.Wrap(err, "counting hsm messages")
		}
		if item := overageItem(used, *workspace.HsmMessageLimit, *workspace.ExceededHsmMessagePrice,
			"Mensagens HSM excedentes", models.ItemTypeExceededHsmMessage); item != nil {
			items = append(items, *item)
		}
	}

	if workspace.ConversationLimit != nil && workspace.ExceededConversationPrice != nil {
		used, err := oc.usage.CountConversations(workspace.Id, start, end)
		if err != nil {
			return nil, errors.Wrap(err, "counting conversations")
		}
		if item := overageItem(used, *workspace.ConversationLimit, *workspace.ExceededConversationPrice,
			"Atendimentos excedentes", models.ItemTypeExceededConversation); item != nil {
			items = append(items, *item)
		}
	}

	if workspace.UserLimit != nil && workspace.ExceededUserPrice != nil {
		seats, err := oc.usage.CountSeats(workspace.Id)
		if err != nil {
			return nil, errors.Wrap(err, "counting seats")
		}
		if item := overageItem(seats, *workspace.UserLimit, *workspace.ExceededUserPrice,
			"Usuários adicionais", models.ItemTypeExceededUser); item != nil {
			items = append(items, *item)
		}
	}

	return items, nil
}

func overageItem(used int64, limit int64, unitPrice float64, description string, itemType models.PaymentItemType) *models.PaymentItem {
	if used <= limit {
		return nil
	}
	quantity := used - limit
	return &models.PaymentItem{
		ItemDescription: description,
		Quantity:        float64(quantity),
		UnitPrice:       unitPrice,
		TotalPrice:      utils.RoundMoney(float64(quantity) * unitPrice),
		Type:            itemType,
	}
}
