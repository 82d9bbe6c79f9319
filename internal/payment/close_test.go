package payment

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"converso.io/billing/handlers/gateway"
	"converso.io/billing/internal/billing"
	"converso.io/billing/mocks"
	"converso.io/billing/models"
)

const itemInsertQuery = "INSERT INTO payment_items (`payment_id`, `item_description`, `quantity`, `unit_price`, `total_price`, `type`) VALUES (?, ?, ?, ?, ?, ?)"

func closeTestPayment() *models.Payment {
	return &models.Payment{
		Id:               7,
		WorkspaceId:      1,
		AccountId:        2,
		BillingMonth:     "02/26",
		BillingStartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		BillingEndDate:   time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
		Status:           models.PaymentStatusOpened,
	}
}

func TestClosePayment(t *testing.T) {
	t.Parallel()

	testWorkspace := &models.Workspace{
		Id:        1,
		AccountId: 2,
		Name:      "Acme",
		PlanPrice: 300.0,
		DueDay:    5,
	}

	t.Run("Should materialize items, charge the gateway and close in one transaction", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		m := &managerMocks{
			workspaces:     &mocks.WorkspaceRepository{},
			payments:       &mocks.PaymentRepository{},
			usage:          &mocks.UsageReader{},
			specifications: &mocks.SpecificationRepository{},
			gateway:        &mocks.Client{},
		}
		assembler := billing.NewVirtualItemAssembler(m.workspaces, m.usage, m.specifications)
		manager := NewManager(db, m.workspaces, m.payments, assembler, m.gateway, nil)

		m.payments.EXPECT().GetPayment(7).Return(closeTestPayment(), nil)
		m.workspaces.EXPECT().GetWorkspace(1).Return(testWorkspace, nil)
		m.workspaces.EXPECT().GetAccount(2).Return(&models.Account{Id: 2, GatewayCustomerId: "cus_1"}, nil)
		m.payments.EXPECT().GetItems(7).Return(nil, nil)
		m.specifications.EXPECT().ListActiveSpecifications(1, mock.Anything).Return(nil, nil)

		dueDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		m.gateway.EXPECT().CreateCharge(mock.Anything).Run(func(req *gateway.ChargeRequest) {
			assert.Equal(t, "cus_1", req.CustomerId)
			assert.Equal(t, 300.0, req.Value)
			assert.Equal(t, "INVOICE:7", req.ExternalReference)
			assert.Equal(t, 2.0, req.FinePercent)
			assert.Equal(t, 1.0, req.InterestPercent)
		}).Return(&gateway.Charge{
			Id:            "pay_1",
			Status:        gateway.ChargeStatusPending,
			OriginalValue: 300.0,
			NetValue:      297.0,
			DueDate:       &dueDate,
		}, nil)

		mockSql.ExpectBegin()
		mockSql.ExpectPrepare(regexp.QuoteMeta(itemInsertQuery)).
			ExpectExec().
			WithArgs(7, sqlmock.AnyArg(), float64(30), 10.0, 300.0, "plan").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockSql.ExpectExec(regexp.QuoteMeta("UPDATE payments SET status = ?, total_value = ?, gateway_payment_id = ?, gateway_original_value = ?, gateway_net_value = ?, gateway_due_date = ?, updated_at = ? WHERE id = ?")).
			WithArgs("awaitingPayment", 300.0, "pay_1", 300.0, 297.0, dueDate, sqlmock.AnyArg(), 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockSql.ExpectCommit()

		closed, err := manager.ClosePayment(2, 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentStatusAwaitingPayment, closed.Status)
		assert.Equal(t, "pay_1", closed.GatewayPaymentId)
		assert.NotNil(t, closed.TotalValue)
		assert.Equal(t, 300.0, *closed.TotalValue)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should roll everything back when the gateway charge fails", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		m := &managerMocks{
			workspaces:     &mocks.WorkspaceRepository{},
			payments:       &mocks.PaymentRepository{},
			usage:          &mocks.UsageReader{},
			specifications: &mocks.SpecificationRepository{},
			gateway:        &mocks.Client{},
		}
		assembler := billing.NewVirtualItemAssembler(m.workspaces, m.usage, m.specifications)
		manager := NewManager(db, m.workspaces, m.payments, assembler, m.gateway, nil)

		m.payments.EXPECT().GetPayment(7).Return(closeTestPayment(), nil)
		m.workspaces.EXPECT().GetWorkspace(1).Return(testWorkspace, nil)
		m.workspaces.EXPECT().GetAccount(2).Return(&models.Account{Id: 2, GatewayCustomerId: "cus_1"}, nil)
		m.payments.EXPECT().GetItems(7).Return(nil, nil)
		m.specifications.EXPECT().ListActiveSpecifications(1, mock.Anything).Return(nil, nil)
		m.gateway.EXPECT().CreateCharge(mock.Anything).Return(nil, errors.New("gateway timeout"))

		mockSql.ExpectBegin()
		mockSql.ExpectPrepare(regexp.QuoteMeta(itemInsertQuery)).
			ExpectExec().
			WithArgs(7, sqlmock.AnyArg(), float64(30), 10.0, 300.0, "plan").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockSql.ExpectRollback()

		_, err = manager.ClosePayment(2, 1, 7)
		assert.Error(t, err)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should create the gateway customer on the first charge", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		m := &managerMocks{
			workspaces:     &mocks.WorkspaceRepository{},
			payments:       &mocks.PaymentRepository{},
			usage:          &mocks.UsageReader{},
			specifications: &mocks.SpecificationRepository{},
			gateway:        &mocks.Client{},
		}
		assembler := billing.NewVirtualItemAssembler(m.workspaces, m.usage, m.specifications)
		manager := NewManager(db, m.workspaces, m.payments, assembler, m.gateway, nil)

		m.payments.EXPECT().GetPayment(7).Return(closeTestPayment(), nil)
		m.workspaces.EXPECT().GetWorkspace(1).Return(testWorkspace, nil)
		m.workspaces.EXPECT().GetAccount(2).Return(&models.Account{Id: 2, Name: "Acme Ltda", Email: "billing@acme.com"}, nil)
		m.payments.EXPECT().GetItems(7).Return(nil, nil)
		m.specifications.EXPECT().ListActiveSpecifications(1, mock.Anything).Return(nil, nil)

		m.gateway.EXPECT().CreateCustomer(mock.Anything).Return("cus_9", nil)
		m.workspaces.EXPECT().SetAccountGatewayCustomerId(2, "cus_9").Return(nil)
		m.gateway.EXPECT().CreateCharge(mock.Anything).Run(func(req *gateway.ChargeRequest) {
			assert.Equal(t, "cus_9", req.CustomerId)
		}).Return(&gateway.Charge{Id: "pay_2", OriginalValue: 300.0, NetValue: 297.0}, nil)

		mockSql.ExpectBegin()
		mockSql.ExpectPrepare(regexp.QuoteMeta(itemInsertQuery)).
			ExpectExec().
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockSql.ExpectExec("UPDATE payments SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockSql.ExpectCommit()

		closed, err := manager.ClosePayment(2, 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, "pay_2", closed.GatewayPaymentId)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should refuse to close a payment that is not opened", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		paid := closeTestPayment()
		paid.Status = models.PaymentStatusPaid
		m.payments.EXPECT().GetPayment(7).Return(paid, nil)

		_, err := manager.ClosePayment(2, 1, 7)
		assert.True(t, errors.Is(err, models.ErrPaymentNotOpened))
	})

	t.Run("Should hide payments of other workspaces", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.payments.EXPECT().GetPayment(7).Return(closeTestPayment(), nil)

		_, err := manager.ClosePayment(2, 99, 7)
		assert.True(t, errors.Is(err, models.ErrPaymentNotFound))
	})
}

func TestComputeDueDate(t *testing.T) {
	t.Parallel()

	t.Run("Should fall on the due day of the month after the billing month", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
		due := computeDueDate("02/26", 5, now)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), due)
	})

	t.Run("Should push an already past due date ten days ahead", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
		due := computeDueDate("02/26", 5, now)
		assert.Equal(t, now.AddDate(0, 0, 10), due)
	})
}

func TestExternalReference(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "INVOICE:42", ExternalReference(42))
}
