package payment

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"converso.io/billing/handlers/gateway"
	"converso.io/billing/internal/billing"
	"converso.io/billing/models"
	"converso.io/billing/repository"
	"converso.io/billing/utils"
)

// Manager owns the payment state machine: creation, closing, deletion,
// gateway reconciliation and invoicing.
type Manager struct {
	db         *sql.DB
	workspaces repository.WorkspaceRepository
	payments   repository.PaymentRepository
	assembler  *billing.VirtualItemAssembler
	gateway    gateway.Client
	events     repository.EventPublisher
	logger     *logrus.Entry
}

func NewManager(db *sql.DB, workspaces repository.WorkspaceRepository, payments repository.PaymentRepository,
	assembler *billing.VirtualItemAssembler, gatewayClient gateway.Client, events repository.EventPublisher) *Manager {
	return &Manager{
		db:         db,
		workspaces: workspaces,
		payments:   payments,
		assembler:  assembler,
		gateway:    gatewayClient,
		events:     events,
		logger:     logrus.WithField("component", "payment_manager"),
	}
}

// CreatePayment opens the next billing period for a workspace. With an
// explicit billingMonth the period is that calendar month; otherwise
// it advances from the workspace's last payment, or starts at the
// workspace activation date. The payment row is persisted first;
// virtual items are then computed read-only for the created event.
func (m *Manager) CreatePayment(workspaceId int, accountId int, billingMonth string) (*models.Payment, []models.PaymentItem, error) {
	workspace, err := m.workspaces.GetWorkspace(workspaceId)
	if err != nil {
		return nil, nil, err
	}
	account, err := m.workspaces.GetAccount(accountId)
	if err != nil {
		return nil, nil, err
	}
	if workspace.AccountId != account.Id {
		return nil, nil, models.ErrWorkspaceDontBelongsToAccount
	}

	start, end, err := m.nextPeriod(workspace, billingMonth)
	if err != nil {
		return nil, nil, err
	}
	month := utils.BillingMonth(start)

	conflict, err := m.payments.FindConflictingPayment(workspaceId, accountId, month)
	if err != nil {
		return nil, nil, err
	}
	if conflict != nil {
		return nil, nil, errors.Wrapf(models.ErrPaymentConflict, "billing month %s", month)
	}

	payment := &models.Payment{
		WorkspaceId:      workspaceId,
		AccountId:        accountId,
		BillingMonth:     month,
		BillingStartDate: utils.StartOfDay(start),
		BillingEndDate:   utils.EndOfDay(end),
		Status:           models.PaymentStatusOpened,
	}
	if err := m.payments.CreatePayment(payment); err != nil {
		return nil, nil, err
	}

	items, err := m.assembler.VirtualItems(workspace, payment)
	if err != nil {
		m.logger.WithField("payment_id", payment.Id).Error("could not compute virtual items: " + err.Error())
		return payment, nil, err
	}

	if m.events != nil {
		event := &models.PaymentCreatedEvent{Payment: *payment, Items: items}
		if err := m.events.PublishPaymentCreated(event); err != nil {
			// best effort, trackers catch up on the next sync
			m.logger.WithField("payment_id", payment.Id).Warn("could not publish payment created event: " + err.Error())
		}
	}
	return payment, items, nil
}

func (m *Manager) nextPeriod(workspace *models.Workspace, billingMonth string) (time.Time, time.Time, error) {
	if billingMonth != "" {
		first, err := utils.ParseBillingMonth(billingMonth)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrapf(err, "invalid billing month %s", billingMonth)
		}
		return utils.StartOfMonth(first), utils.EndOfMonth(first), nil
	}

	last, err := m.payments.GetLastPayment(workspace.Id)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if last == nil {
		// first period runs from activation to the end of that month
		return workspace.StartAt, utils.EndOfMonth(workspace.StartAt), nil
	}
	// the day after the last period end lands in the next billing month
	next := last.BillingEndDate.AddDate(0, 0, 1)
	return utils.StartOfMonth(next), utils.EndOfMonth(next), nil
}

// VirtualItems recomputes the item list of an open payment. Closed
// payments are frozen: their persisted items are returned as-is.
func (m *Manager) VirtualItems(paymentId int) ([]models.PaymentItem, error) {
	payment, err := m.payments.GetPayment(paymentId)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentStatusOpened {
		return m.payments.GetItems(paymentId)
	}
	workspace, err := m.workspaces.GetWorkspace(payment.WorkspaceId)
	if err != nil {
		return nil, err
	}
	persisted, err := m.payments.GetItems(paymentId)
	if err != nil {
		return nil, err
	}
	virtual, err := m.assembler.VirtualItems(workspace, payment)
	if err != nil {
		return nil, err
	}
	return append(persisted, virtual...), nil
}

// DeletePayment hard deletes a payment, allowed only while opened.
func (m *Manager) DeletePayment(paymentId int) error {
	payment, err := m.payments.GetPayment(paymentId)
	if err != nil {
		return err
	}
	if payment.Status != models.PaymentStatusOpened {
		return errors.Wrapf(models.ErrPaymentNotOpened, "payment %d is %s", paymentId, payment.Status)
	}
	return m.payments.DeleteOpenPayment(paymentId)
}

// AddManualItem persists an ad-hoc "extra" line on an open payment.
func (m *Manager) AddManualItem(paymentId int, description string, quantity float64, unitPrice float64) (*models.PaymentItem, error) {
	payment, err := m.payments.GetPayment(paymentId)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentStatusOpened {
		return nil, errors.Wrapf(models.ErrPaymentNotOpened, "payment %d is %s", paymentId, payment.Status)
	}
	item := &models.PaymentItem{
		PaymentId:       paymentId,
		ItemDescription: description,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		TotalPrice:      utils.RoundMoney(quantity * unitPrice),
		Type:            models.ItemTypeExtra,
	}
	if err := m.payments.AddManualItem(item); err != nil {
		return nil, err
	}
	return item, nil
}
