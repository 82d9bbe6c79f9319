package gateway

import (
	"fmt"
	"sync"
)

// SandboxClient is an in-memory gateway used in development and in the
// worker's dry-run mode. Charges are created as PENDING and never move
// on their own.
type SandboxClient struct {
	mu       sync.Mutex
	seq      int
	charges  map[string]*Charge
	invoices map[string]*Invoice
	byCharge map[string]string
}

func NewSandboxClient() *SandboxClient {
	return &SandboxClient{
		charges:  make(map[string]*Charge),
		invoices: make(map[string]*Invoice),
		byCharge: make(map[string]string),
	}
}

func (c *SandboxClient) CreateCustomer(profile *CustomerProfile) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return fmt.Sprintf("cus_sandbox_%d", c.seq), nil
}

func (c *SandboxClient) UpdateCustomer(id string, profile *CustomerProfile) error {
	return nil
}

func (c *SandboxClient) CreateCharge(req *ChargeRequest) (*Charge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	due := req.DueDate
	charge := &Charge{
		Id:                fmt.Sprintf("pay_sandbox_%d", c.seq),
		Status:            ChargeStatusPending,
		OriginalValue:     req.Value,
		NetValue:          req.Value,
		DueDate:           &due,
		ExternalReference: req.ExternalReference,
	}
	c.charges[charge.Id] = charge
	return charge, nil
}

func (c *SandboxClient) GetCharge(id string) (*Charge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	charge, ok := c.charges[id]
	if !ok {
		return nil, fmt.Errorf("sandbox: unknown charge %s", id)
	}
	return charge, nil
}

func (c *SandboxClient) FindChargeByExternalReference(ref string) (*Charge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, charge := range c.charges {
		if charge.ExternalReference == ref {
			return charge, nil
		}
	}
	return nil, nil
}

func (c *SandboxClient) CreateInvoice(req *InvoiceRequest) (*Invoice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	invoice := &Invoice{Id: fmt.Sprintf("inv_sandbox_%d", c.seq), Status: "SCHEDULED"}
	c.invoices[invoice.Id] = invoice
	c.byCharge[req.ChargeId] = invoice.Id
	return invoice, nil
}

func (c *SandboxClient) FindInvoiceByCharge(chargeId string) (*Invoice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.byCharge[chargeId]
	if !ok {
		return nil, nil
	}
	return c.invoices[id], nil
}

func (c *SandboxClient) AuthorizeInvoice(invoiceId string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	invoice, ok := c.invoices[invoiceId]
	if !ok {
		return fmt.Errorf("sandbox: unknown invoice %s", invoiceId)
	}
	invoice.Status = "AUTHORIZED"
	return nil
}
