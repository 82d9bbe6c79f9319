package gateway

import "time"

// Charge statuses as reported by the payment gateway.
const (
	ChargeStatusPending        = "PENDING"
	ChargeStatusReceived       = "RECEIVED"
	ChargeStatusOverdue        = "OVERDUE"
	ChargeStatusReceivedInCash = "RECEIVED_IN_CASH"
)

type CustomerProfile struct {
	Name          string
	Email         string
	Document      string
	Phone         string
	PostalCode    string
	AddressNumber string
}

type ChargeRequest struct {
	CustomerId        string
	Value             float64
	DueDate           time.Time
	Description       string
	ExternalReference string
	FinePercent       float64
	InterestPercent   float64
}

type Charge struct {
	Id                string
	Status            string
	OriginalValue     float64
	NetValue          float64
	PaymentDate       *time.Time
	DueDate           *time.Time
	ExternalReference string
	Deleted           bool
}

type InvoiceRequest struct {
	ChargeId    string
	Value       float64
	Description string
	TaxRate     float64
}

type Invoice struct {
	Id     string
	Status string
}

// Client is the external payment gateway. The gateway is an unreliable
// third party: callers time out, log and skip, never crash a batch.
// Find operations return (nil, nil) when the gateway has no record.
type Client interface {
	CreateCustomer(profile *CustomerProfile) (string, error)
	UpdateCustomer(id string, profile *CustomerProfile) error
	CreateCharge(req *ChargeRequest) (*Charge, error)
	GetCharge(id string) (*Charge, error)
	FindChargeByExternalReference(ref string) (*Charge, error)
	CreateInvoice(req *InvoiceRequest) (*Invoice, error)
	FindInvoiceByCharge(chargeId string) (*Invoice, error)
	AuthorizeInvoice(invoiceId string) error
}
