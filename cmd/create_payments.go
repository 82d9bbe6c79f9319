package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"converso.io/billing/internal/payment"
	"converso.io/billing/models"
	"converso.io/billing/repository"
)

// CreatePaymentsJob advances the billing period of every active
// workspace. Workspaces whose current month is already open are
// skipped; failures are isolated per workspace.
type CreatePaymentsJob struct {
	workspaces repository.WorkspaceRepository
	manager    *payment.Manager
	logger     *logrus.Entry
}

func NewCreatePaymentsJob(workspaces repository.WorkspaceRepository, manager *payment.Manager) *CreatePaymentsJob {
	return &CreatePaymentsJob{
		workspaces: workspaces,
		manager:    manager,
		logger:     logrus.WithField("component", "create_payments"),
	}
}

func (job *CreatePaymentsJob) Run() (*BatchResult, error) {
	workspaces, err := job.workspaces.ListActiveWorkspaces()
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for _, workspace := range workspaces {
		result.Total++
		created, _, err := job.manager.CreatePayment(workspace.Id, workspace.AccountId, "")
		if errors.Is(err, models.ErrPaymentConflict) {
			job.logger.Debugf("workspace %d already has an open period", workspace.Id)
			continue
		}
		if err != nil {
			result.Errors++
			job.logger.Errorf("error creating payment for workspace %d: %s", workspace.Id, err.Error())
			continue
		}
		job.logger.Infof("created payment %d (%s) for workspace %d", created.Id, created.BillingMonth, workspace.Id)
	}
	job.logger.Infof("payment creation finished, total: %d, errors: %d", result.Total, result.Errors)
	return result, nil
}
