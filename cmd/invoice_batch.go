package cmd

import (
	"github.com/sirupsen/logrus"
	"converso.io/billing/internal/payment"
	"converso.io/billing/repository"
)

// InvoiceBatchJob creates the gateway invoice for every charged
// payment that does not have one yet.
type InvoiceBatchJob struct {
	payments repository.PaymentRepository
	manager  *payment.Manager
	logger   *logrus.Entry
}

func NewInvoiceBatchJob(payments repository.PaymentRepository, manager *payment.Manager) *InvoiceBatchJob {
	return &InvoiceBatchJob{
		payments: payments,
		manager:  manager,
		logger:   logrus.WithField("component", "invoice_batch"),
	}
}

func (job *InvoiceBatchJob) Run() (*BatchResult, error) {
	payments, err := job.payments.ListPaymentsForInvoicing()
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for _, pending := range payments {
		result.Total++
		if _, err := job.manager.CreatePaymentInvoice(pending.Id); err != nil {
			result.Errors++
			job.logger.Errorf("error invoicing payment %d: %s", pending.Id, err.Error())
			continue
		}
	}
	job.logger.Infof("invoice batch finished, total: %d, errors: %d", result.Total, result.Errors)
	return result, nil
}
