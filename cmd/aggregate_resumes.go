package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"converso.io/billing/models"
	"converso.io/billing/repository"
	"converso.io/billing/utils"
)

// ResumeAggregatorJob precomputes per-channel monthly usage into the
// resume table read by per-channel billing. Rows are regenerated per
// (workspace, month, channel); a failing channel or workspace is
// skipped, not fatal.
type ResumeAggregatorJob struct {
	workspaces repository.WorkspaceRepository
	usage      repository.UsageReader
	logger     *logrus.Entry
}

func NewResumeAggregatorJob(workspaces repository.WorkspaceRepository, usage repository.UsageReader) *ResumeAggregatorJob {
	return &ResumeAggregatorJob{
		workspaces: workspaces,
		usage:      usage,
		logger:     logrus.WithField("component", "resume_aggregator"),
	}
}

func (job *ResumeAggregatorJob) Run(now time.Time) (*BatchResult, error) {
	workspaces, err := job.workspaces.ListActiveWorkspaces()
	if err != nil {
		return nil, err
	}

	month := utils.BillingMonth(now)
	start := utils.StartOfMonth(now)
	end := utils.EndOfMonth(now)

	result := &BatchResult{}
	for _, workspace := range workspaces {
		if workspace.BillingMode != models.BillingModePerChannel {
			continue
		}
		result.Total++
		if err := job.aggregateWorkspace(&workspace, month, start, end); err != nil {
			result.Errors++
			job.logger.Errorf("error aggregating workspace %d: %s", workspace.Id, err.Error())
			continue
		}
	}
	job.logger.Infof("resume aggregation finished, total: %d, errors: %d", result.Total, result.Errors)
	return result, nil
}

func (job *ResumeAggregatorJob) aggregateWorkspace(workspace *models.Workspace, month string, start, end time.Time) error {
	channels, err := job.usage.ListChannels(workspace.Id, start, end)
	if err != nil {
		return err
	}
	for _, channel := range channels {
		messages, err := job.usage.CountChannelMessages(workspace.Id, channel, start, end)
		if err != nil {
			return err
		}
		hsmMessages, err := job.usage.CountChannelHsmMessages(workspace.Id, channel, start, end)
		if err != nil {
			return err
		}
		conversations, err := job.usage.CountChannelConversations(workspace.Id, channel, start, end)
		if err != nil {
			return err
		}
		resume := models.WorkspaceChannelResume{
			WorkspaceId:       workspace.Id,
			Channel:           channel,
			Month:             month,
			MessageCount:      messages,
			HsmMessageCount:   hsmMessages,
			ConversationCount: conversations,
		}
		err = job.workspaces.ReplaceChannelResumes(workspace.Id, month, channel, []models.WorkspaceChannelResume{resume})
		if err != nil {
			return err
		}
	}
	return nil
}
