package payment

import (
	"github.com/pkg/errors"
	"converso.io/billing/handlers/gateway"
	"converso.io/billing/models"
)

// SyncPaymentStatus reconciles one payment with the gateway: it maps
// the gateway charge status onto the local state machine and always
// refreshes the gateway mirror fields, changed or not. The mapping is
// applied as reported; a stale gateway status does move the local
// status back (see the sync tests).
func (m *Manager) SyncPaymentStatus(payment *models.Payment) error {
	if payment.GatewayPaymentId == "" {
		return errors.Wrapf(models.ErrMissingGatewayPayment, "payment %d", payment.Id)
	}

	charge, err := m.gateway.GetCharge(payment.GatewayPaymentId)
	if err != nil {
		// direct lookup failed, fall back to the idempotency reference
		charge, err = m.gateway.FindChargeByExternalReference(ExternalReference(payment.Id))
		if err != nil {
			return errors.Wrapf(err, "looking up gateway charge for payment %d", payment.Id)
		}
		if charge == nil {
			return errors.Errorf("gateway has no charge for payment %d", payment.Id)
		}
	}

	status := mapChargeStatus(charge, payment.Status)
	err = m.payments.UpdateGatewaySync(payment.Id, status, charge.OriginalValue, charge.NetValue,
		charge.PaymentDate, charge.DueDate)
	if err != nil {
		return err
	}

	if status != payment.Status {
		m.logger.WithField("payment_id", payment.Id).
			Infof("payment moved from %s to %s", payment.Status, status)
	}
	payment.Status = status
	payment.GatewayOriginalValue = charge.OriginalValue
	payment.GatewayNetValue = charge.NetValue
	payment.GatewayPaymentDate = charge.PaymentDate
	payment.GatewayDueDate = charge.DueDate
	return nil
}

func mapChargeStatus(charge *gateway.Charge, current models.PaymentStatus) models.PaymentStatus {
	if charge.Deleted {
		return models.PaymentStatusDeleted
	}
	switch charge.Status {
	case gateway.ChargeStatusReceived:
		return models.PaymentStatusPaid
	case gateway.ChargeStatusPending:
		return models.PaymentStatusAwaitingPayment
	case gateway.ChargeStatusOverdue:
		return models.PaymentStatusOverDue
	case gateway.ChargeStatusReceivedInCash:
		return models.PaymentStatusReceivedInCash
	case "REFUNDED":
		return models.PaymentStatusUnpaid
	}
	return current
}
