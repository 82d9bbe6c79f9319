package cmd

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"converso.io/billing/handlers/gateway"
	"converso.io/billing/internal/billing"
	"converso.io/billing/internal/payment"
	"converso.io/billing/mocks"
	"converso.io/billing/models"
)

type batchMocks struct {
	workspaces     *mocks.WorkspaceRepository
	payments       *mocks.PaymentRepository
	usage          *mocks.UsageReader
	specifications *mocks.SpecificationRepository
	gateway        *mocks.Client
}

func newBatchManager() (*payment.Manager, *batchMocks) {
	m := &batchMocks{
		workspaces:     &mocks.WorkspaceRepository{},
		payments:       &mocks.PaymentRepository{},
		usage:          &mocks.UsageReader{},
		specifications: &mocks.SpecificationRepository{},
		gateway:        &mocks.Client{},
	}
	assembler := billing.NewVirtualItemAssembler(m.workspaces, m.usage, m.specifications)
	return payment.NewManager(nil, m.workspaces, m.payments, assembler, m.gateway, nil), m
}

func TestCreatePaymentsJob(t *testing.T) {
	t.Parallel()

	t.Run("Should keep going when one workspace fails", func(t *testing.T) {
		t.Parallel()

		manager, m := newBatchManager()
		m.workspaces.EXPECT().ListActiveWorkspaces().Return([]models.Workspace{
			{Id: 1, AccountId: 10},
			{Id: 2, AccountId: 20},
		}, nil)

		m.workspaces.EXPECT().GetWorkspace(1).Return(nil, errors.New("row lock timeout"))

		healthy := &models.Workspace{
			Id: 2, AccountId: 20, PlanPrice: 300.0, Active: true,
			StartAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		m.workspaces.EXPECT().GetWorkspace(2).Return(healthy, nil)
		m.workspaces.EXPECT().GetAccount(20).Return(&models.Account{Id: 20}, nil)
		m.payments.EXPECT().GetLastPayment(2).Return(nil, nil)
		m.payments.EXPECT().FindConflictingPayment(2, 20, "01/26").Return(nil, nil)
		m.payments.EXPECT().CreatePayment(mock.Anything).Return(nil)
		m.specifications.EXPECT().ListActiveSpecifications(2, mock.Anything).Return(nil, nil)

		result, err := NewCreatePaymentsJob(m.workspaces, manager).Run()
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.Errors)
	})

	t.Run("Should not count an existing billing month as an error", func(t *testing.T) {
		t.Parallel()

		manager, m := newBatchManager()
		m.workspaces.EXPECT().ListActiveWorkspaces().Return([]models.Workspace{
			{Id: 1, AccountId: 10},
		}, nil)

		workspace := &models.Workspace{
			Id: 1, AccountId: 10, PlanPrice: 300.0, Active: true,
			StartAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		m.workspaces.EXPECT().GetWorkspace(1).Return(workspace, nil)
		m.workspaces.EXPECT().GetAccount(10).Return(&models.Account{Id: 10}, nil)
		m.payments.EXPECT().GetLastPayment(1).Return(nil, nil)
		m.payments.EXPECT().FindConflictingPayment(1, 10, "01/26").
			Return(&models.Payment{Id: 3, Status: models.PaymentStatusOpened}, nil)

		result, err := NewCreatePaymentsJob(m.workspaces, manager).Run()
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, 0, result.Errors)
	})

	t.Run("Should fail only when the workspace listing fails", func(t *testing.T) {
		t.Parallel()

		manager, m := newBatchManager()
		m.workspaces.EXPECT().ListActiveWorkspaces().Return(nil, errors.New("db gone"))

		result, err := NewCreatePaymentsJob(m.workspaces, manager).Run()
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestSyncPaymentsJob(t *testing.T) {
	t.Parallel()

	t.Run("Should isolate gateway failures per payment", func(t *testing.T) {
		t.Parallel()

		manager, m := newBatchManager()
		m.payments.EXPECT().ListPaymentsForSync().Return([]models.Payment{
			{Id: 1, GatewayPaymentId: "pay_1", Status: models.PaymentStatusAwaitingPayment},
			{Id: 2, GatewayPaymentId: "pay_2", Status: models.PaymentStatusAwaitingPayment},
		}, nil)

		m.gateway.EXPECT().GetCharge("pay_1").Return(nil, errors.New("gateway timeout"))
		m.gateway.EXPECT().FindChargeByExternalReference("INVOICE:1").Return(nil, errors.New("gateway timeout"))

		m.gateway.EXPECT().GetCharge("pay_2").Return(&gateway.Charge{
			Id: "pay_2", Status: gateway.ChargeStatusReceived,
		}, nil)
		m.payments.EXPECT().UpdateGatewaySync(2, models.PaymentStatusPaid, 0.0, 0.0, (*time.Time)(nil), (*time.Time)(nil)).Return(nil)

		result, err := NewSyncPaymentsJob(m.payments, manager).Run()
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.Errors)
	})
}

func TestInvoiceBatchJob(t *testing.T) {
	t.Parallel()

	t.Run("Should invoice every charged payment and count failures", func(t *testing.T) {
		t.Parallel()

		manager, m := newBatchManager()
		m.payments.EXPECT().ListPaymentsForInvoicing().Return([]models.Payment{
			{Id: 1}, {Id: 2},
		}, nil)

		m.payments.EXPECT().GetPayment(1).Return(nil, errors.New("row gone"))

		second := &models.Payment{
			Id: 2, WorkspaceId: 5, BillingMonth: "02/26",
			Status: models.PaymentStatusPaid, GatewayPaymentId: "pay_2",
		}
		m.payments.EXPECT().GetPayment(2).Return(second, nil)
		m.gateway.EXPECT().FindInvoiceByCharge("pay_2").Return(&gateway.Invoice{Id: "inv_2"}, nil)
		m.payments.EXPECT().SetGatewayInvoiceId(2, "inv_2").Return(nil)

		result, err := NewInvoiceBatchJob(m.payments, manager).Run()
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.Errors)
	})
}

func TestResumeAggregatorJob(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("Should aggregate only per channel workspaces", func(t *testing.T) {
		t.Parallel()

		workspaces := &mocks.WorkspaceRepository{}
		usage := &mocks.UsageReader{}

		workspaces.EXPECT().ListActiveWorkspaces().Return([]models.Workspace{
			{Id: 1, BillingMode: models.BillingModeGlobal},
			{Id: 2, BillingMode: models.BillingModePerChannel},
		}, nil)

		usage.EXPECT().ListChannels(2, start, end).Return([]string{"whatsapp"}, nil)
		usage.EXPECT().CountChannelMessages(2, "whatsapp", start, end).Return(120, nil)
		usage.EXPECT().CountChannelHsmMessages(2, "whatsapp", start, end).Return(15, nil)
		usage.EXPECT().CountChannelConversations(2, "whatsapp", start, end).Return(30, nil)
		workspaces.EXPECT().ReplaceChannelResumes(2, "03/26", "whatsapp", []models.WorkspaceChannelResume{{
			WorkspaceId:       2,
			Channel:           "whatsapp",
			Month:             "03/26",
			MessageCount:      120,
			HsmMessageCount:   15,
			ConversationCount: 30,
		}}).Return(nil)

		result, err := NewResumeAggregatorJob(workspaces, usage).Run(now)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, 0, result.Errors)
		usage.AssertNotCalled(t, "ListChannels", 1, mock.Anything, mock.Anything)
	})

	t.Run("Should count a failing workspace and continue", func(t *testing.T) {
		t.Parallel()

		workspaces := &mocks.WorkspaceRepository{}
		usage := &mocks.UsageReader{}

		workspaces.EXPECT().ListActiveWorkspaces().Return([]models.Workspace{
			{Id: 2, BillingMode: models.BillingModePerChannel},
			{Id: 3, BillingMode: models.BillingModePerChannel},
		}, nil)
		usage.EXPECT().ListChannels(2, start, end).Return(nil, errors.New("analytics down"))
		usage.EXPECT().ListChannels(3, start, end).Return(nil, nil)

		result, err := NewResumeAggregatorJob(workspaces, usage).Run(now)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.Errors)
	})
}
