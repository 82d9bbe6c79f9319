package payment

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"converso.io/billing/internal/billing"
	"converso.io/billing/mocks"
	"converso.io/billing/models"
)

type managerMocks struct {
	workspaces     *mocks.WorkspaceRepository
	payments       *mocks.PaymentRepository
	usage          *mocks.UsageReader
	specifications *mocks.SpecificationRepository
	gateway        *mocks.Client
	events         *mocks.EventPublisher
}

func newTestManager() (*Manager, *managerMocks) {
	m := &managerMocks{
		workspaces:     &mocks.WorkspaceRepository{},
		payments:       &mocks.PaymentRepository{},
		usage:          &mocks.UsageReader{},
		specifications: &mocks.SpecificationRepository{},
		gateway:        &mocks.Client{},
		events:         &mocks.EventPublisher{},
	}
	assembler := billing.NewVirtualItemAssembler(m.workspaces, m.usage, m.specifications)
	return NewManager(nil, m.workspaces, m.payments, assembler, m.gateway, m.events), m
}

func TestCreatePayment(t *testing.T) {
	t.Parallel()

	testWorkspace := &models.Workspace{
		Id:          1,
		AccountId:   2,
		Name:        "Acme",
		PlanPrice:   300.0,
		BillingMode: models.BillingModeGlobal,
		DueDay:      5,
		Active:      true,
		StartAt:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	testAccount := &models.Account{Id: 2, Name: "Acme Ltda"}

	t.Run("Should refuse a workspace that belongs to another account", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.workspaces.EXPECT().GetWorkspace(1).Return(testWorkspace, nil)
		m.workspaces.EXPECT().GetAccount(3).Return(&models.Account{Id: 3}, nil)

		_, _, err := manager.CreatePayment(1, 3, "")
		assert.True(t, errors.Is(err, models.ErrWorkspaceDontBelongsToAccount))
	})

	t.Run("Should refuse a second payment for the same billing month", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.workspaces.EXPECT().GetWorkspace(1).Return(testWorkspace, nil)
		m.workspaces.EXPECT().GetAccount(2).Return(testAccount, nil)
		m.payments.EXPECT().FindConflictingPayment(1, 2, "04/26").
			Return(&models.Payment{Id: 9, Status: models.PaymentStatusOpened}, nil)

		_, _, err := manager.CreatePayment(1, 2, "04/26")
		assert.True(t, errors.Is(err, models.ErrPaymentConflict))
	})

	t.Run("Should start the first period at the workspace activation date", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.workspaces.EXPECT().GetWorkspace(1).Return(testWorkspace, nil)
		m.workspaces.EXPECT().GetAccount(2).Return(testAccount, nil)
		m.payments.EXPECT().GetLastPayment(1).Return(nil, nil)
		m.payments.EXPECT().FindConflictingPayment(1, 2, "01/26").Return(nil, nil)
		m.payments.EXPECT().CreatePayment(mock.Anything).Run(func(payment *models.Payment) {
			payment.Id = 55
		}).Return(nil)
		m.specifications.EXPECT().ListActiveSpecifications(1, mock.Anything).Return(nil, nil)
		m.events.EXPECT().PublishPaymentCreated(mock.Anything).Return(nil)

		payment, items, err := manager.CreatePayment(1, 2, "")
		assert.NoError(t, err)
		assert.Equal(t, 55, payment.Id)
		assert.Equal(t, "01/26", payment.BillingMonth)
		assert.Equal(t, models.PaymentStatusOpened, payment.Status)
		assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), payment.BillingStartDate)
		assert.Equal(t, time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC), payment.BillingEndDate)

		// 17 prorated days at 300/30 per day
		assert.Len(t, items, 1)
		assert.Equal(t, float64(17), items[0].Quantity)
		assert.Equal(t, 170.0, items[0].TotalPrice)
	})

	t.Run("Should advance one calendar month after the last payment", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.workspaces.EXPECT().GetWorkspace(1).Return(testWorkspace, nil)
		m.workspaces.EXPECT().GetAccount(2).Return(testAccount, nil)
		m.payments.EXPECT().GetLastPayment(1).Return(&models.Payment{
			Id:             55,
			BillingEndDate: time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC),
			Status:         models.PaymentStatusPaid,
		}, nil)
		m.payments.EXPECT().FindConflictingPayment(1, 2, "02/26").Return(nil, nil)
		m.payments.EXPECT().CreatePayment(mock.Anything).Run(func(payment *models.Payment) {
			payment.Id = 56
		}).Return(nil)
		m.specifications.EXPECT().ListActiveSpecifications(1, mock.Anything).Return(nil, nil)
		m.events.EXPECT().PublishPaymentCreated(mock.Anything).Return(nil)

		payment, items, err := manager.CreatePayment(1, 2, "")
		assert.NoError(t, err)
		assert.Equal(t, "02/26", payment.BillingMonth)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), payment.BillingStartDate)
		assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC), payment.BillingEndDate)

		// full month charges exactly the plan price
		assert.Len(t, items, 1)
		assert.Equal(t, 300.0, items[0].TotalPrice)
	})

	t.Run("Should create the payment even when the event publish fails", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.workspaces.EXPECT().GetWorkspace(1).Return(testWorkspace, nil)
		m.workspaces.EXPECT().GetAccount(2).Return(testAccount, nil)
		m.payments.EXPECT().GetLastPayment(1).Return(nil, nil)
		m.payments.EXPECT().FindConflictingPayment(1, 2, "01/26").Return(nil, nil)
		m.payments.EXPECT().CreatePayment(mock.Anything).Return(nil)
		m.specifications.EXPECT().ListActiveSpecifications(1, mock.Anything).Return(nil, nil)
		m.events.EXPECT().PublishPaymentCreated(mock.Anything).Return(errors.New("broker down"))

		payment, _, err := manager.CreatePayment(1, 2, "")
		assert.NoError(t, err)
		assert.NotNil(t, payment)
	})

	t.Run("Should allow a new payment when the conflicting one was deleted", func(t *testing.T) {
		t.Parallel()

		// FindConflictingPayment ignores deleted rows by contract, so the
		// repository reports no conflict and creation proceeds.
		manager, m := newTestManager()
		m.workspaces.EXPECT().GetWorkspace(1).Return(testWorkspace, nil)
		m.workspaces.EXPECT().GetAccount(2).Return(testAccount, nil)
		m.payments.EXPECT().FindConflictingPayment(1, 2, "03/26").Return(nil, nil)
		m.payments.EXPECT().CreatePayment(mock.Anything).Return(nil)
		m.specifications.EXPECT().ListActiveSpecifications(1, mock.Anything).Return(nil, nil)
		m.events.EXPECT().PublishPaymentCreated(mock.Anything).Return(nil)

		payment, _, err := manager.CreatePayment(1, 2, "03/26")
		assert.NoError(t, err)
		assert.Equal(t, "03/26", payment.BillingMonth)
	})
}

func TestVirtualItemsRead(t *testing.T) {
	t.Parallel()

	t.Run("Should return only persisted items for a closed payment", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.payments.EXPECT().GetPayment(7).Return(&models.Payment{
			Id: 7, WorkspaceId: 1, Status: models.PaymentStatusPaid,
		}, nil)
		m.payments.EXPECT().GetItems(7).Return([]models.PaymentItem{
			{Id: 1, PaymentId: 7, Type: models.ItemTypePlan, TotalPrice: 300.0},
		}, nil)

		items, err := manager.VirtualItems(7)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		m.workspaces.AssertNotCalled(t, "GetWorkspace", mock.Anything)
	})

	t.Run("Should combine persisted and recomputed items for an open payment", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		workspace := &models.Workspace{Id: 1, AccountId: 2, PlanPrice: 300.0}
		m.payments.EXPECT().GetPayment(7).Return(&models.Payment{
			Id: 7, WorkspaceId: 1, Status: models.PaymentStatusOpened,
			BillingStartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			BillingEndDate:   time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
		}, nil)
		m.workspaces.EXPECT().GetWorkspace(1).Return(workspace, nil)
		m.payments.EXPECT().GetItems(7).Return([]models.PaymentItem{
			{Id: 1, PaymentId: 7, Type: models.ItemTypeExtra, TotalPrice: 50.0},
		}, nil)
		m.specifications.EXPECT().ListActiveSpecifications(1, mock.Anything).Return(nil, nil)

		items, err := manager.VirtualItems(7)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, models.ItemTypeExtra, items[0].Type)
		assert.Equal(t, models.ItemTypePlan, items[1].Type)
	})
}

func TestDeletePayment(t *testing.T) {
	t.Parallel()

	t.Run("Should delete an open payment", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.payments.EXPECT().GetPayment(7).Return(&models.Payment{Id: 7, Status: models.PaymentStatusOpened}, nil)
		m.payments.EXPECT().DeleteOpenPayment(7).Return(nil)

		assert.NoError(t, manager.DeletePayment(7))
	})

	t.Run("Should refuse to delete a closed payment", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.payments.EXPECT().GetPayment(7).Return(&models.Payment{Id: 7, Status: models.PaymentStatusAwaitingPayment}, nil)

		err := manager.DeletePayment(7)
		assert.True(t, errors.Is(err, models.ErrPaymentNotOpened))
		m.payments.AssertNotCalled(t, "DeleteOpenPayment", mock.Anything)
	})
}

func TestAddManualItem(t *testing.T) {
	t.Parallel()

	t.Run("Should persist an extra item on an open payment", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.payments.EXPECT().GetPayment(7).Return(&models.Payment{Id: 7, Status: models.PaymentStatusOpened}, nil)
		m.payments.EXPECT().AddManualItem(mock.Anything).Return(nil)

		item, err := manager.AddManualItem(7, "Treinamento da equipe", 2, 75.0)
		assert.NoError(t, err)
		assert.Equal(t, models.ItemTypeExtra, item.Type)
		assert.Equal(t, 150.0, item.TotalPrice)
		assert.Equal(t, 7, item.PaymentId)
	})

	t.Run("Should refuse extra items on a closed payment", func(t *testing.T) {
		t.Parallel()

		manager, m := newTestManager()
		m.payments.EXPECT().GetPayment(7).Return(&models.Payment{Id: 7, Status: models.PaymentStatusPaid}, nil)

		_, err := manager.AddManualItem(7, "Treinamento da equipe", 2, 75.0)
		assert.True(t, errors.Is(err, models.ErrPaymentNotOpened))
	})
}
