package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"converso.io/billing/models"
)

var paymentTestColumns = []string{
	"id", "workspace_id", "account_id", "billing_month", "billing_start_date", "billing_end_date",
	"status", "total_value", "gateway_payment_id", "gateway_invoice_id", "gateway_original_value",
	"gateway_net_value", "gateway_payment_date", "gateway_due_date", "created_at", "updated_at",
}

func paymentTestRow(id int, status models.PaymentStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(paymentTestColumns).
		AddRow(id, 1, 2, "02/26", now, now, status, nil, "", "", nil, nil, nil, nil, now, now)
}

func TestGetPayment(t *testing.T) {
	t.Parallel()

	t.Run("Should load a payment by id", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery("SELECT (.+) FROM payments WHERE id = ?").
			WithArgs(7).
			WillReturnRows(paymentTestRow(7, models.PaymentStatusOpened))

		payment, err := NewPaymentRepository(db).GetPayment(7)
		assert.NoError(t, err)
		assert.Equal(t, 7, payment.Id)
		assert.Equal(t, models.PaymentStatusOpened, payment.Status)
		assert.Nil(t, payment.TotalValue)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should report a missing payment", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery("SELECT (.+) FROM payments WHERE id = ?").
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(paymentTestColumns))

		_, err = NewPaymentRepository(db).GetPayment(7)
		assert.Equal(t, models.ErrPaymentNotFound, err)
	})
}

func TestGetLastPayment(t *testing.T) {
	t.Parallel()

	t.Run("Should return nil for a never billed workspace", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery("SELECT (.+) FROM payments").
			WithArgs(1, "deleted").
			WillReturnRows(sqlmock.NewRows(paymentTestColumns))

		payment, err := NewPaymentRepository(db).GetLastPayment(1)
		assert.NoError(t, err)
		assert.Nil(t, payment)
	})
}

func TestFindConflictingPayment(t *testing.T) {
	t.Parallel()

	t.Run("Should ignore deleted payments", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery("SELECT (.+) FROM payments").
			WithArgs(1, 2, "02/26", "deleted").
			WillReturnRows(sqlmock.NewRows(paymentTestColumns))

		payment, err := NewPaymentRepository(db).FindConflictingPayment(1, 2, "02/26")
		assert.NoError(t, err)
		assert.Nil(t, payment)
	})

	t.Run("Should surface an existing payment for the month", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery("SELECT (.+) FROM payments").
			WithArgs(1, 2, "02/26", "deleted").
			WillReturnRows(paymentTestRow(9, models.PaymentStatusPaid))

		payment, err := NewPaymentRepository(db).FindConflictingPayment(1, 2, "02/26")
		assert.NoError(t, err)
		assert.Equal(t, 9, payment.Id)
	})
}

func TestCreatePaymentRow(t *testing.T) {
	t.Parallel()

	db, mockSql, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	insertQuery := "INSERT INTO payments (`workspace_id`, `account_id`, `billing_month`, `billing_start_date`, `billing_end_date`, `status`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	mockSql.ExpectPrepare(regexp.QuoteMeta(insertQuery)).
		ExpectExec().
		WithArgs(1, 2, "02/26", sqlmock.AnyArg(), sqlmock.AnyArg(), "opened", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(55, 1))

	payment := &models.Payment{
		WorkspaceId:      1,
		AccountId:        2,
		BillingMonth:     "02/26",
		BillingStartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		BillingEndDate:   time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
		Status:           models.PaymentStatusOpened,
	}
	err = NewPaymentRepository(db).CreatePayment(payment)
	assert.NoError(t, err)
	assert.Equal(t, 55, payment.Id)
	assert.False(t, payment.CreatedAt.IsZero())
	assert.NoError(t, mockSql.ExpectationsWereMet())
}

func TestDeleteOpenPayment(t *testing.T) {
	t.Parallel()

	db, mockSql, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM payment_items WHERE payment_id = ?")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM payments WHERE id = ? AND status = ?")).
		WithArgs(7, "opened").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewPaymentRepository(db).DeleteOpenPayment(7)
	assert.NoError(t, err)
	assert.NoError(t, mockSql.ExpectationsWereMet())
}

func TestListPaymentsForSync(t *testing.T) {
	t.Parallel()

	db, mockSql, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mockSql.ExpectQuery("SELECT (.+) FROM payments").
		WithArgs("paid", "deleted", "receivedInCash").
		WillReturnRows(paymentTestRow(7, models.PaymentStatusAwaitingPayment))

	payments, err := NewPaymentRepository(db).ListPaymentsForSync()
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.NoError(t, mockSql.ExpectationsWereMet())
}
