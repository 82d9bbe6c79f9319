package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"converso.io/billing/models"
)

type PaymentRepository interface {
	GetPayment(id int) (*models.Payment, error)
	GetLastPayment(workspaceId int) (*models.Payment, error)
	FindConflictingPayment(workspaceId int, accountId int, billingMonth string) (*models.Payment, error)
	CreatePayment(payment *models.Payment) error
	DeleteOpenPayment(id int) error
	GetItems(paymentId int) ([]models.PaymentItem, error)
	AddManualItem(item *models.PaymentItem) error
	ListPaymentsForSync() ([]models.Payment, error)
	ListPaymentsForInvoicing() ([]models.Payment, error)
	UpdateGatewaySync(id int, status models.PaymentStatus, originalValue float64, netValue float64, paymentDate *time.Time, dueDate *time.Time) error
	SetGatewayInvoiceId(id int, invoiceId string) error
}

type PaymentService struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &PaymentService{db: db}
}

const paymentColumns = `id, workspace_id, account_id, billing_month, billing_start_date, billing_end_date,
	status, total_value, gateway_payment_id, gateway_invoice_id, gateway_original_value,
	gateway_net_value, gateway_payment_date, gateway_due_date, created_at, updated_at`

func (ps *PaymentService) GetPayment(id int) (*models.Payment, error) {
	row := ps.db.QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id)
	payment, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return nil, models.ErrPaymentNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetching payment %d", id)
	}
	return payment, nil
}

// GetLastPayment returns the most recent non-deleted payment of the
// workspace, or nil when the workspace has never been billed.
func (ps *PaymentService) GetLastPayment(workspaceId int) (*models.Payment, error) {
	row := ps.db.QueryRow(`SELECT `+paymentColumns+` FROM payments
		WHERE workspace_id = ? AND status != ? ORDER BY billing_end_date DESC LIMIT 1`,
		workspaceId, models.PaymentStatusDeleted)
	payment, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetching last payment of workspace %d", workspaceId)
	}
	return payment, nil
}

func (ps *PaymentService) FindConflictingPayment(workspaceId int, accountId int, billingMonth string) (*models.Payment, error) {
	row := ps.db.QueryRow(`SELECT `+paymentColumns+` FROM payments
		WHERE workspace_id = ? AND account_id = ? AND billing_month = ? AND status != ? LIMIT 1`,
		workspaceId, accountId, billingMonth, models.PaymentStatusDeleted)
	payment, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "checking billing month %s of workspace %d", billingMonth, workspaceId)
	}
	return payment, nil
}

func (ps *PaymentService) CreatePayment(payment *models.Payment) error {
	stmt, err := ps.db.Prepare("INSERT INTO payments (`workspace_id`, `account_id`, `billing_month`, `billing_start_date`, `billing_end_date`, `status`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing payment insert")
	}
	defer stmt.Close()
	now := time.Now()
	res, err := stmt.Exec(payment.WorkspaceId, payment.AccountId, payment.BillingMonth,
		payment.BillingStartDate, payment.BillingEndDate, payment.Status, now, now)
	if err != nil {
		return errors.Wrap(err, "inserting payment")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "reading payment insert id")
	}
	payment.Id = int(id)
	payment.CreatedAt = now
	payment.UpdatedAt = now
	return nil
}

// DeleteOpenPayment hard deletes a payment and its manual items. Only
// opened payments may be removed; everything else is soft deleted via
// status by the lifecycle manager.
func (ps *PaymentService) DeleteOpenPayment(id int) error {
	_, err := ps.db.Exec(`DELETE FROM payment_items WHERE payment_id = ?`, id)
	if err != nil {
		return errors.Wrapf(err, "deleting items of payment %d", id)
	}
	_, err = ps.db.Exec(`DELETE FROM payments WHERE id = ? AND status = ?`, id, models.PaymentStatusOpened)
	return errors.Wrapf(err, "deleting payment %d", id)
}

func (ps *PaymentService) GetItems(paymentId int) ([]models.PaymentItem, error) {
	rows, err := ps.db.Query(`SELECT id, payment_id, item_description, quantity, unit_price, total_price, type
		FROM payment_items WHERE payment_id = ?`, paymentId)
	if err != nil {
		return nil, errors.Wrapf(err, "listing items of payment %d", paymentId)
	}
	defer rows.Close()

	var items []models.PaymentItem
	for rows.Next() {
		var item models.PaymentItem
		err = rows.Scan(&item.Id, &item.PaymentId, &item.ItemDescription,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.Type)
		if err != nil {
			return nil, errors.Wrap(err, "scanning payment item row")
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (ps *PaymentService) AddManualItem(item *models.PaymentItem) error {
	stmt, err := ps.db.Prepare("INSERT INTO payment_items (`payment_id`, `item_description`, `quantity`, `unit_price`, `total_price`, `type`) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing manual item insert")
	}
	defer stmt.Close()
	res, err := stmt.Exec(item.PaymentId, item.ItemDescription, item.Quantity,
		item.UnitPrice, item.TotalPrice, item.Type)
	if err != nil {
		return errors.Wrap(err, "inserting manual item")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "reading manual item insert id")
	}
	item.Id = int(id)
	return nil
}

// ListPaymentsForSync returns non-terminal payments that already exist
// on the gateway.
func (ps *PaymentService) ListPaymentsForSync() ([]models.Payment, error) {
	return ps.listPayments(`SELECT `+paymentColumns+` FROM payments
		WHERE gateway_payment_id != '' AND status NOT IN (?, ?, ?)`,
		models.PaymentStatusPaid, models.PaymentStatusDeleted, models.PaymentStatusReceivedInCash)
}

// ListPaymentsForInvoicing returns charged payments without a gateway
// invoice yet.
func (ps *PaymentService) ListPaymentsForInvoicing() ([]models.Payment, error) {
	return ps.listPayments(`SELECT `+paymentColumns+` FROM payments
		WHERE gateway_payment_id != '' AND gateway_invoice_id = '' AND status NOT IN (?, ?)`,
		models.PaymentStatusOpened, models.PaymentStatusDeleted)
}

func (ps *PaymentService) listPayments(query string, args ...interface{}) ([]models.Payment, error) {
	rows, err := ps.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing payments")
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning payment row")
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}

// UpdateGatewaySync writes the status and gateway mirror fields during
// reconciliation. Mirror fields are refreshed even when the status did
// not change.
func (ps *PaymentService) UpdateGatewaySync(id int, status models.PaymentStatus, originalValue float64, netValue float64, paymentDate *time.Time, dueDate *time.Time) error {
	stmt, err := ps.db.Prepare(`UPDATE payments SET status = ?, gateway_original_value = ?, gateway_net_value = ?, gateway_payment_date = ?, gateway_due_date = ?, updated_at = ? WHERE id = ?`)
	if err != nil {
		return errors.Wrap(err, "preparing gateway sync update")
	}
	defer stmt.Close()
	_, err = stmt.Exec(status, originalValue, netValue, paymentDate, dueDate, time.Now(), id)
	return errors.Wrapf(err, "syncing payment %d", id)
}

func (ps *PaymentService) SetGatewayInvoiceId(id int, invoiceId string) error {
	_, err := ps.db.Exec(`UPDATE payments SET gateway_invoice_id = ?, updated_at = ? WHERE id = ?`,
		invoiceId, time.Now(), id)
	return errors.Wrapf(err, "saving invoice id on payment %d", id)
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	var payment models.Payment
	var totalValue sql.NullFloat64
	var gatewayPaymentId, gatewayInvoiceId sql.NullString
	var gatewayOriginalValue, gatewayNetValue sql.NullFloat64
	var gatewayPaymentDate, gatewayDueDate sql.NullTime
	err := row.Scan(&payment.Id, &payment.WorkspaceId, &payment.AccountId, &payment.BillingMonth,
		&payment.BillingStartDate, &payment.BillingEndDate, &payment.Status, &totalValue,
		&gatewayPaymentId, &gatewayInvoiceId, &gatewayOriginalValue, &gatewayNetValue,
		&gatewayPaymentDate, &gatewayDueDate, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	payment.TotalValue = nullFloat(totalValue)
	payment.GatewayPaymentId = gatewayPaymentId.String
	payment.GatewayInvoiceId = gatewayInvoiceId.String
	payment.GatewayOriginalValue = gatewayOriginalValue.Float64
	payment.GatewayNetValue = gatewayNetValue.Float64
	if gatewayPaymentDate.Valid {
		payment.GatewayPaymentDate = &gatewayPaymentDate.Time
	}
	if gatewayDueDate.Valid {
		payment.GatewayDueDate = &gatewayDueDate.Time
	}
	return &payment, nil
}
