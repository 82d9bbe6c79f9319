package billing

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"converso.io/billing/models"
	"converso.io/billing/repository"
	"converso.io/billing/utils"
)

// ChannelOverageCalculator bills overage per channel in perChannel
// mode, reading the precomputed resume counters. A channel is only
// billed when the workspace exceeds its aggregate limit for that
// dimension, and the quantities billed across channels never sum to
// more than the workspace's aggregate excess.
type ChannelOverageCalculator struct {
	workspaces repository.WorkspaceRepository
	usage      repository.UsageReader
}

func NewChannelOverageCalculator(workspaces repository.WorkspaceRepository, usage repository.UsageReader) *ChannelOverageCalculator {
	return &ChannelOverageCalculator{workspaces: workspaces, usage: usage}
}

func (cc *ChannelOverageCalculator) Items(workspace *models.Workspace, start, end time.Time) ([]models.PaymentItem, error) {
	specs, err := cc.workspaces.GetChannelSpecifications(workspace.Id)
	if err != nil {
		return nil, errors.Wrap(err, "loading channel specifications")
	}
	if len(specs) == 0 {
		return nil, nil
	}

	resumes, err := cc.workspaces.GetChannelResumes(workspace.Id, utils.BillingMonth(start))
	if err != nil {
		return nil, errors.Wrap(err, "loading channel resumes")
	}
	byChannel := make(map[string]models.WorkspaceChannelResume, len(resumes))
	for _, resume := range resumes {
		byChannel[resume.Channel] = resume
	}

	conversationBudget, err := cc.exceededBudget(workspace.ConversationLimit, func() (int64, error) {
		return cc.usage.CountConversations(workspace.Id, start, end)
	})
	if err != nil {
		return nil, errors.Wrap(err, "counting workspace conversations")
	}
	messageBudget, err := cc.exceededBudget(workspace.MessageLimit, func() (int64, error) {
		return cc.usage.CountMessages(workspace.Id, start, end)
	})
	if err != nil {
		return nil, errors.Wrap(err, "counting workspace messages")
	}

	var items []models.PaymentItem
	for _, spec := range specs {
		resume := byChannel[spec.Channel]

		if spec.ConversationLimit != nil && spec.ExceededConversationPrice != nil {
			quantity := billableExcess(resume.ConversationCount, *spec.ConversationLimit, conversationBudget)
			if quantity > 0 {
				items = append(items, channelItem(spec.Channel, quantity, *spec.ExceededConversationPrice,
					"Atendimentos excedentes", models.ItemTypeChannelExceededConversation))
			}
		}

		if spec.MessageLimit != nil && spec.ExceededMessagePrice != nil {
			quantity := billableExcess(resume.MessageCount, *spec.MessageLimit, messageBudget)
			if quantity > 0 {
				items = append(items, channelItem(spec.Channel, quantity, *spec.ExceededMessagePrice,
					"Mensagens excedentes", models.ItemTypeChannelExceededMessage))
			}
		}
	}
	return items, nil
}

// exceededBudget computes the workspace-wide excess for one dimension.
// A nil workspace limit leaves the budget nil: channels are then billed
// on their own limits only.
func (cc *ChannelOverageCalculator) exceededBudget(limit *int64, count func() (int64, error)) (*int64, error) {
	if limit == nil {
		return nil, nil
	}
	total, err := count()
	if err != nil {
		return nil, err
	}
	exceeded := total - *limit
	if exceeded < 0 {
		exceeded = 0
	}
	return &exceeded, nil
}

// billableExcess caps the channel's own excess at the remaining
// workspace budget and consumes it.
func billableExcess(used int64, limit int64, budget *int64) int64 {
	if used <= limit {
		return 0
	}
	quantity := used - limit
	if budget == nil {
		return quantity
	}
	if quantity > *budget {
		quantity = *budget
	}
	*budget -= quantity
	return quantity
}

func channelItem(channel string, quantity int64, unitPrice float64, description string, itemType models.PaymentItemType) models.PaymentItem {
	return models.PaymentItem{
		ItemDescription: fmt.Sprintf("%s - %s", description, channel),
		Quantity:        float64(quantity),
		UnitPrice:       unitPrice,
		TotalPrice:      utils.RoundMoney(float64(quantity) * unitPrice),
		Type:            itemType,
	}
}
