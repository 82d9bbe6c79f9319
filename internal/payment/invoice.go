package payment

import (
	"fmt"

	"github.com/pkg/errors"
	"converso.io/billing/handlers/gateway"
	"converso.io/billing/models"
	"converso.io/billing/utils"
)

// invoiceTaxRate is the fixed municipal service tax applied to every
// invoice. Tax computation beyond this constant lives elsewhere.
const invoiceTaxRate = 5.0

// CreatePaymentInvoice creates (or finds) the gateway invoice for a
// charged payment. The lookup before creation is the idempotency
// guard: two calls persist exactly one invoice id.
func (m *Manager) CreatePaymentInvoice(paymentId int) (*models.Payment, error) {
	payment, err := m.payments.GetPayment(paymentId)
	if err != nil {
		return nil, err
	}
	if payment.GatewayPaymentId == "" {
		return nil, errors.Wrapf(models.ErrMissingGatewayPayment, "payment %d", paymentId)
	}
	if payment.GatewayInvoiceId != "" {
		return payment, nil
	}

	existing, err := m.gateway.FindInvoiceByCharge(payment.GatewayPaymentId)
	if err != nil {
		return nil, errors.Wrapf(err, "looking up gateway invoice for payment %d", paymentId)
	}
	if existing != nil {
		if err := m.payments.SetGatewayInvoiceId(paymentId, existing.Id); err != nil {
			return nil, err
		}
		payment.GatewayInvoiceId = existing.Id
		return payment, nil
	}

	workspace, err := m.workspaces.GetWorkspace(payment.WorkspaceId)
	if err != nil {
		return nil, err
	}
	value := payment.GatewayOriginalValue
	if payment.TotalValue != nil {
		value = *payment.TotalValue
	}

	invoice, err := m.gateway.CreateInvoice(&gateway.InvoiceRequest{
		ChargeId:    payment.GatewayPaymentId,
		Value:       value,
		Description: m.invoiceDescription(workspace, payment),
		TaxRate:     invoiceTaxRate,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "creating gateway invoice for payment %d", paymentId)
	}
	if err := m.gateway.AuthorizeInvoice(invoice.Id); err != nil {
		return nil, errors.Wrapf(err, "authorizing invoice of payment %d", paymentId)
	}
	if err := m.payments.SetGatewayInvoiceId(paymentId, invoice.Id); err != nil {
		return nil, err
	}
	payment.GatewayInvoiceId = invoice.Id
	return payment, nil
}

func (m *Manager) invoiceDescription(workspace *models.Workspace, payment *models.Payment) string {
	if workspace.InvoiceDescription != "" {
		return utils.RenderDescription(workspace.InvoiceDescription, map[string]string{
			"billingMonth": payment.BillingMonth,
			"workspace":    workspace.Name,
		})
	}
	return fmt.Sprintf("Serviços de atendimento %s - %s", payment.BillingMonth, workspace.Name)
}
