package models

import "time"

type BillingMode string

const (
	BillingModeGlobal     BillingMode = "global"
	BillingModePerChannel BillingMode = "perChannel"
)

// Workspace is the tenant billing profile. It is mutated by admin
// operations elsewhere; the billing engine only reads it.
type Workspace struct {
	Id                        int
	AccountId                 int
	Name                      string
	PlanPrice                 float64
	BillingMode               BillingMode
	DueDay                    int
	Active                    bool
	StartAt                   time.Time
	MessageLimit              *int64
	ExceededMessagePrice      *float64
	HsmMessageLimit           *int64
	ExceededHsmMessagePrice   *float64
	ConversationLimit         *int64
	ExceededConversationPrice *float64
	UserLimit                 *int64
	ExceededUserPrice         *float64
	InvoiceDescription        string
	PaymentDescription        string
}

// Account is the billing customer behind one or more workspaces.
// GatewayCustomerId is created lazily before the first charge.
type Account struct {
	Id                int
	Name              string
	Email             string
	Document          string
	Phone             string
	PostalCode        string
	AddressNumber     string
	GatewayCustomerId string
}

type PaymentStatus string

const (
	PaymentStatusOpened          PaymentStatus = "opened"
	PaymentStatusAwaitingPayment PaymentStatus = "awaitingPayment"
	PaymentStatusPaid            PaymentStatus = "paid"
	PaymentStatusOverDue         PaymentStatus = "overDue"
	PaymentStatusReceivedInCash  PaymentStatus = "receivedInCash"
	PaymentStatusUnpaid          PaymentStatus = "unpaid"
	PaymentStatusDeleted         PaymentStatus = "deleted"
)

// Terminal statuses are never synced again and never leave.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusDeleted || s == PaymentStatusReceivedInCash
}

// Payment is one billing period for a (workspace, account) pair.
// BillingMonth ("MM/YY") is the natural dedup key: at most one
// non-deleted payment may exist per workspace, account and month.
type Payment struct {
	Id                   int
	WorkspaceId          int
	AccountId            int
	BillingMonth         string
	BillingStartDate     time.Time
	BillingEndDate       time.Time
	Status               PaymentStatus
	TotalValue           *float64
	GatewayPaymentId     string
	GatewayInvoiceId     string
	GatewayOriginalValue float64
	GatewayNetValue      float64
	GatewayPaymentDate   *time.Time
	GatewayDueDate       *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type PaymentItemType string

const (
	ItemTypePlan                        PaymentItemType = "plan"
	ItemTypeExceededMessage             PaymentItemType = "exceeded_message"
	ItemTypeExceededHsmMessage          PaymentItemType = "exceeded_hsm_message"
	ItemTypeExceededConversation        PaymentItemType = "exceeded_conversation"
	ItemTypeExceededUser                PaymentItemType = "exceeded_user"
	ItemTypeChannelExceededMessage      PaymentItemType = "channel_exceeded_message"
	ItemTypeChannelExceededConversation PaymentItemType = "channel_exceeded_conversation"
	ItemTypeChannelDiscount             PaymentItemType = "channel_discount"
	ItemTypeExtra                       PaymentItemType = "extra"
)

// PaymentItem is one line on a payment. While a payment is opened its
// items are virtual (recomputed on every read, never stored); they are
// persisted when the payment closes, except manual "extra" items.
type PaymentItem struct {
	Id              int
	PaymentId       int
	ItemDescription string
	Quantity        float64
	UnitPrice       float64
	TotalPrice      float64
	Type            PaymentItemType
}

// PaymentItemSpecification drives one additional discount/adjustment
// line for a workspace, dispatched by Type to a registered strategy.
type PaymentItemSpecification struct {
	Id          int
	WorkspaceId int
	Type        string
	Channel     string
	UnitPrice   float64
	ValidFrom   time.Time
	ValidUntil  time.Time
}

// WorkspaceChannelSpecification holds per-channel limits and overage
// prices, used only in perChannel billing mode.
type WorkspaceChannelSpecification struct {
	Id                        int
	WorkspaceId               int
	Channel                   string
	MessageLimit              *int64
	ExceededMessagePrice      *float64
	ConversationLimit         *int64
	ExceededConversationPrice *float64
}

// WorkspaceChannelResume is a precomputed per-channel monthly usage
// counter, regenerated whole by the resume aggregator.
type WorkspaceChannelResume struct {
	Id                int
	WorkspaceId       int
	Channel           string
	Month             string
	MessageCount      int64
	HsmMessageCount   int64
	ConversationCount int64
}
