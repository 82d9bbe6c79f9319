package payment

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"converso.io/billing/handlers/gateway"
	"converso.io/billing/internal/billing"
	"converso.io/billing/models"
	"converso.io/billing/utils"
)

const (
	chargeFinePercent     = 2.0
	chargeInterestPercent = 1.0

	// overdue due dates are pushed this many days into the future
	latePaymentGraceDays = 10
)

// ExternalReference is the deterministic gateway idempotency key for a
// payment's charge.
func ExternalReference(paymentId int) string {
	return fmt.Sprintf("INVOICE:%d", paymentId)
}

// ClosePayment materializes the virtual items of an open payment,
// charges the gateway and moves the payment to awaitingPayment. Items,
// total and gateway ids are written in one transaction; any failure,
// including the gateway call, rolls everything back.
func (m *Manager) ClosePayment(accountId int, workspaceId int, paymentId int) (*models.Payment, error) {
	payment, err := m.payments.GetPayment(paymentId)
	if err != nil {
		return nil, err
	}
	if payment.WorkspaceId != workspaceId || payment.AccountId != accountId {
		return nil, models.ErrPaymentNotFound
	}
	if payment.Status != models.PaymentStatusOpened {
		return nil, errors.Wrapf(models.ErrPaymentNotOpened, "payment %d is %s", paymentId, payment.Status)
	}
	workspace, err := m.workspaces.GetWorkspace(workspaceId)
	if err != nil {
		return nil, err
	}
	account, err := m.workspaces.GetAccount(accountId)
	if err != nil {
		return nil, err
	}
	if workspace.AccountId != account.Id {
		return nil, models.ErrWorkspaceDontBelongsToAccount
	}

	persisted, err := m.payments.GetItems(paymentId)
	if err != nil {
		return nil, err
	}
	virtual, err := m.assembler.VirtualItems(workspace, payment)
	if err != nil {
		return nil, err
	}
	allItems := append(append([]models.PaymentItem{}, persisted...), virtual...)
	totalPayment := billing.Total(allItems)
	dueDate := computeDueDate(payment.BillingMonth, workspace.DueDay, time.Now())

	customerId, err := m.ensureGatewayCustomer(account)
	if err != nil {
		return nil, err
	}

	tx, err := m.db.Begin()
	if err != nil {
		return nil, errors.Wrap(err, "opening close transaction")
	}

	stmt, err := tx.Prepare("INSERT INTO payment_items (`payment_id`, `item_description`, `quantity`, `unit_price`, `total_price`, `type`) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "preparing item insert")
	}
	defer stmt.Close()
	for _, item := range virtual {
		_, err = stmt.Exec(paymentId, item.ItemDescription, item.Quantity, item.UnitPrice, item.TotalPrice, item.Type)
		if err != nil {
			tx.Rollback()
			return nil, errors.Wrap(err, "materializing virtual item")
		}
	}

	charge, err := m.gateway.CreateCharge(&gateway.ChargeRequest{
		CustomerId:        customerId,
		Value:             totalPayment,
		DueDate:           dueDate,
		Description:       m.chargeDescription(workspace, payment),
		ExternalReference: ExternalReference(paymentId),
		FinePercent:       chargeFinePercent,
		InterestPercent:   chargeInterestPercent,
	})
	if err != nil {
		tx.Rollback()
		return nil, errors.Wrapf(err, "charging payment %d on gateway", paymentId)
	}

	_, err = tx.Exec(`UPDATE payments SET status = ?, total_value = ?, gateway_payment_id = ?, gateway_original_value = ?, gateway_net_value = ?, gateway_due_date = ?, updated_at = ? WHERE id = ?`,
		models.PaymentStatusAwaitingPayment, totalPayment, charge.Id, charge.OriginalValue,
		charge.NetValue, charge.DueDate, time.Now(), paymentId)
	if err != nil {
		tx.Rollback()
		return nil, errors.Wrapf(err, "updating payment %d after charge", paymentId)
	}
	if err = tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "committing close of payment %d", paymentId)
	}

	payment.Status = models.PaymentStatusAwaitingPayment
	payment.TotalValue = &totalPayment
	payment.GatewayPaymentId = charge.Id
	payment.GatewayOriginalValue = charge.OriginalValue
	payment.GatewayNetValue = charge.NetValue
	payment.GatewayDueDate = charge.DueDate
	return payment, nil
}

// ensureGatewayCustomer lazily creates the gateway customer for an
// account and persists the id, so the creation happens at most once.
func (m *Manager) ensureGatewayCustomer(account *models.Account) (string, error) {
	if account.GatewayCustomerId != "" {
		return account.GatewayCustomerId, nil
	}
	customerId, err := m.gateway.CreateCustomer(&gateway.CustomerProfile{
		Name:          account.Name,
		Email:         account.Email,
		Document:      account.Document,
		Phone:         account.Phone,
		PostalCode:    account.PostalCode,
		AddressNumber: account.AddressNumber,
	})
	if err != nil {
		return "", errors.Wrapf(err, "creating gateway customer for account %d", account.Id)
	}
	if err := m.workspaces.SetAccountGatewayCustomerId(account.Id, customerId); err != nil {
		return "", err
	}
	account.GatewayCustomerId = customerId
	return customerId, nil
}

func (m *Manager) chargeDescription(workspace *models.Workspace, payment *models.Payment) string {
	if workspace.PaymentDescription != "" {
		return utils.RenderDescription(workspace.PaymentDescription, map[string]string{
			"billingMonth": payment.BillingMonth,
			"workspace":    workspace.Name,
		})
	}
	return fmt.Sprintf("Fatura %s - %s", payment.BillingMonth, workspace.Name)
}

// computeDueDate places the due date on the workspace's due day in the
// month following the billing month, pushed forward when it has
// already passed.
func computeDueDate(billingMonth string, dueDay int, now time.Time) time.Time {
	first, err := utils.ParseBillingMonth(billingMonth)
	if err != nil {
		return now.AddDate(0, 0, latePaymentGraceDays)
	}
	due := utils.StartOfMonth(first).AddDate(0, 1, 0).AddDate(0, 0, dueDay-1)
	if due.Before(now) {
		due = now.AddDate(0, 0, latePaymentGraceDays)
	}
	return due
}
