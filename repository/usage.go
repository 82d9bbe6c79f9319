package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
)

// SimulatorChannel traffic is generated by the test console and is
// excluded from every count.
const SimulatorChannel = "simulator"

// UsageReader answers "how many X did workspace W use in [start, end]"
// against the pre-aggregated analytics store. Read-only.
type UsageReader interface {
	CountMessages(workspaceId int, start, end time.Time) (int64, error)
	CountHsmMessages(workspaceId int, start, end time.Time) (int64, error)
	CountConversations(workspaceId int, start, end time.Time) (int64, error)
	CountChannelMessages(workspaceId int, channel string, start, end time.Time) (int64, error)
	CountChannelHsmMessages(workspaceId int, channel string, start, end time.Time) (int64, error)
	CountChannelConversations(workspaceId int, channel string, start, end time.Time) (int64, error)
	CountSeats(workspaceId int) (int64, error)
	ListChannels(workspaceId int, start, end time.Time) ([]string, error)
}

type UsageService struct {
	db *sql.DB
}

func NewUsageReader(db *sql.DB) UsageReader {
	return &UsageService{db: db}
}

func (us *UsageService) CountMessages(workspaceId int, start, end time.Time) (int64, error) {
	return us.count(`SELECT COUNT(*) FROM messages WHERE workspace_id = ? AND channel != ? AND created_at BETWEEN ? AND ?`,
		workspaceId, SimulatorChannel, start, end)
}

func (us *UsageService) CountHsmMessages(workspaceId int, start, end time.Time) (int64, error) {
	return us.count(`SELECT COUNT(*) FROM messages WHERE workspace_id = ? AND channel != ? AND hsm = 1 AND created_at BETWEEN ? AND ?`,
		workspaceId, SimulatorChannel, start, end)
}

func (us *UsageService) CountConversations(workspaceId int, start, end time.Time) (int64, error) {
	return us.count(`SELECT COUNT(*) FROM conversations WHERE workspace_id = ? AND channel != ? AND created_at BETWEEN ? AND ?`,
		workspaceId, SimulatorChannel, start, end)
}

func (us *UsageService) CountChannelMessages(workspaceId int, channel string, start, end time.Time) (int64, error) {
	return us.count(`SELECT COUNT(*) FROM messages WHERE workspace_id = ? AND channel = ? AND created_at BETWEEN ? AND ?`,
		workspaceId, channel, start, end)
}

func (us *UsageService) CountChannelHsmMessages(workspaceId int, channel string, start, end time.Time) (int64, error) {
	return us.count(`SELECT COUNT(*) FROM messages WHERE workspace_id = ? AND channel = ? AND hsm = 1 AND created_at BETWEEN ? AND ?`,
		workspaceId, channel, start, end)
}

func (us *UsageService) CountChannelConversations(workspaceId int, channel string, start, end time.Time) (int64, error) {
	return us.count(`SELECT COUNT(*) FROM conversations WHERE workspace_id = ? AND channel = ? AND created_at BETWEEN ? AND ?`,
		workspaceId, channel, start, end)
}

func (us *UsageService) CountSeats(workspaceId int) (int64, error) {
	return us.count(`SELECT COUNT(*) FROM workspaces_users WHERE workspace_id = ? AND active = 1`, workspaceId)
}

func (us *UsageService) ListChannels(workspaceId int, start, end time.Time) ([]string, error) {
	rows, err := us.db.Query(`SELECT DISTINCT channel FROM conversations WHERE workspace_id = ? AND channel != ? AND created_at BETWEEN ? AND ?`,
		workspaceId, SimulatorChannel, start, end)
	if err != nil {
		return nil, errors.Wrapf(err, "listing channels of workspace %d", workspaceId)
	}
	defer rows.Close()

	var channels []string
	for rows.Next() {
		var channel string
		if err = rows.Scan(&channel); err != nil {
			return nil, errors.Wrap(err, "scanning channel row")
		}
		channels = append(channels, channel)
	}
	return channels, rows.Err()
}

func (us *UsageService) count(query string, args ...interface{}) (int64, error) {
	var count int64
	err := us.db.QueryRow(query, args...).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "running usage count")
	}
	return count, nil
}
