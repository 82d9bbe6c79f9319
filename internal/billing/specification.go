package billing

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"converso.io/billing/models"
	"converso.io/billing/repository"
	"converso.io/billing/utils"
)

// StrategyContext carries everything a strategy needs to produce its
// line item.
type StrategyContext struct {
	Workspace     *models.Workspace
	Specification models.PaymentItemSpecification
	Start         time.Time
	End           time.Time
}

// ItemStrategy turns one specification into zero or one line items.
type ItemStrategy interface {
	ComputeItems(ctx *StrategyContext) ([]models.PaymentItem, error)
}

// SpecificationEngine resolves a workspace's active specifications and
// dispatches each to the strategy registered for its type. Types
// without a strategy contribute nothing.
type SpecificationEngine struct {
	specifications repository.SpecificationRepository
	strategies     map[string]ItemStrategy
	logger         *logrus.Entry
}

func NewSpecificationEngine(specifications repository.SpecificationRepository) *SpecificationEngine {
	return &SpecificationEngine{
		specifications: specifications,
		strategies:     make(map[string]ItemStrategy),
		logger:         logrus.WithField("component", "specification_engine"),
	}
}

func (e *SpecificationEngine) Register(specType string, strategy ItemStrategy) {
	e.strategies[specType] = strategy
}

func (e *SpecificationEngine) WorkspaceItems(workspace *models.Workspace, start, end time.Time) ([]models.PaymentItem, error) {
	specs, err := e.specifications.ListActiveSpecifications(workspace.Id, end)
	if err != nil {
		return nil, errors.Wrap(err, "resolving workspace specifications")
	}

	var items []models.PaymentItem
	for _, spec := range specs {
		strategy, ok := e.strategies[spec.Type]
		if !ok {
			e.logger.Warnf("no strategy registered for specification type %s, skipping", spec.Type)
			continue
		}
		computed, err := strategy.ComputeItems(&StrategyContext{
			Workspace:     workspace,
			Specification: spec,
			Start:         start,
			End:           end,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "computing items for specification %d", spec.Id)
		}
		items = append(items, computed...)
	}
	return items, nil
}

// SpecTypeChannelDiscount applies a flat per-unit discount to the
// conversation overage attributed to one named channel.
const SpecTypeChannelDiscount = "channelDiscount"

type ChannelDiscountStrategy struct {
	workspaces repository.WorkspaceRepository
	usage      repository.UsageReader
}

func NewChannelDiscountStrategy(workspaces repository.WorkspaceRepository, usage repository.UsageReader) *ChannelDiscountStrategy {
	return &ChannelDiscountStrategy{workspaces: workspaces, usage: usage}
}

func (s *ChannelDiscountStrategy) ComputeItems(ctx *StrategyContext) ([]models.PaymentItem, error) {
	workspace := ctx.Workspace
	if workspace.ConversationLimit == nil {
		return nil, nil
	}
	total, err := s.usage.CountConversations(workspace.Id, ctx.Start, ctx.End)
	if err != nil {
		return nil, errors.Wrap(err, "counting workspace conversations")
	}
	exceeded := total - *workspace.ConversationLimit
	if exceeded <= 0 {
		return nil, nil
	}

	resumes, err := s.workspaces.GetChannelResumes(workspace.Id, utils.BillingMonth(ctx.Start))
	if err != nil {
		return nil, errors.Wrap(err, "loading channel resumes")
	}
	var channelUsage int64
	for _, resume := range resumes {
		if resume.Channel == ctx.Specification.Channel {
			channelUsage = resume.ConversationCount
			break
		}
	}
	if channelUsage == 0 {
		return nil, nil
	}

	// Same cap as channel overage: never discount more units than the
	// workspace's aggregate excess.
	quantity := channelUsage
	if quantity > exceeded {
		quantity = exceeded
	}
	unitPrice := -ctx.Specification.UnitPrice
	return []models.PaymentItem{{
		ItemDescription: fmt.Sprintf("Desconto - %s", ctx.Specification.Channel),
		Quantity:        float64(quantity),
		UnitPrice:       unitPrice,
		TotalPrice:      utils.RoundMoney(float64(quantity) * unitPrice),
		Type:            models.ItemTypeChannelDiscount,
	}}, nil
}
