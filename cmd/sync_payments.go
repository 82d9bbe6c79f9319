package cmd

import (
	"github.com/sirupsen/logrus"
	"converso.io/billing/internal/payment"
	"converso.io/billing/repository"
)

// SyncPaymentsJob reconciles every non-terminal charged payment with
// the gateway. This is a reconciliation, not a push: one payment's
// gateway error is logged and counted, never fails the batch.
type SyncPaymentsJob struct {
	payments repository.PaymentRepository
	manager  *payment.Manager
	logger   *logrus.Entry
}

func NewSyncPaymentsJob(payments repository.PaymentRepository, manager *payment.Manager) *SyncPaymentsJob {
	return &SyncPaymentsJob{
		payments: payments,
		manager:  manager,
		logger:   logrus.WithField("component", "sync_payments"),
	}
}

func (job *SyncPaymentsJob) Run() (*BatchResult, error) {
	payments, err := job.payments.ListPaymentsForSync()
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for i := range payments {
		result.Total++
		if err := job.manager.SyncPaymentStatus(&payments[i]); err != nil {
			result.Errors++
			job.logger.Errorf("error syncing payment %d: %s", payments[i].Id, err.Error())
			continue
		}
	}
	job.logger.Infof("payment sync finished, total: %d, errors: %d", result.Total, result.Errors)
	return result, nil
}
