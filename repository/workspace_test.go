package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"converso.io/billing/models"
)

var workspaceTestColumns = []string{
	"id", "account_id", "name", "plan_price", "billing_mode", "due_day", "active", "start_at",
	"message_limit", "exceeded_message_price", "hsm_message_limit", "exceeded_hsm_message_price",
	"conversation_limit", "exceeded_conversation_price", "user_limit", "exceeded_user_price",
	"invoice_description", "payment_description",
}

func TestGetWorkspace(t *testing.T) {
	t.Parallel()

	t.Run("Should scan nullable limits and prices", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		startAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		mockSql.ExpectQuery("SELECT (.+) FROM workspaces WHERE id = ?").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(workspaceTestColumns).
				AddRow(1, 2, "Acme", 300.0, "global", 10, true, startAt,
					1000, 0.10, nil, nil, 300, 0.50, nil, nil, nil, nil))

		workspace, err := NewWorkspaceRepository(db).GetWorkspace(1)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", workspace.Name)
		assert.Equal(t, models.BillingModeGlobal, workspace.BillingMode)
		assert.Equal(t, int64(1000), *workspace.MessageLimit)
		assert.Equal(t, 0.10, *workspace.ExceededMessagePrice)
		assert.Nil(t, workspace.HsmMessageLimit)
		assert.Nil(t, workspace.UserLimit)
		assert.Equal(t, "", workspace.InvoiceDescription)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should report a missing workspace", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery("SELECT (.+) FROM workspaces WHERE id = ?").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(workspaceTestColumns))

		_, err = NewWorkspaceRepository(db).GetWorkspace(1)
		assert.Equal(t, models.ErrWorkspaceNotFound, err)
	})
}

func TestGetAccount(t *testing.T) {
	t.Parallel()

	accountColumns := []string{"id", "name", "email", "document", "phone", "postal_code", "address_number", "gateway_customer_id"}

	t.Run("Should treat a null gateway customer as empty", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery("SELECT (.+) FROM accounts WHERE id = ?").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(2, "Acme Ltda", "fin@acme.com", "11222333000144", "11999990000", "01310-100", "42", nil))

		account, err := NewWorkspaceRepository(db).GetAccount(2)
		assert.NoError(t, err)
		assert.Equal(t, "Acme Ltda", account.Name)
		assert.Equal(t, "", account.GatewayCustomerId)
	})

	t.Run("Should report a missing account", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery("SELECT (.+) FROM accounts WHERE id = ?").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(accountColumns))

		_, err = NewWorkspaceRepository(db).GetAccount(2)
		assert.Equal(t, models.ErrAccountNotFound, err)
	})
}

func TestReplaceChannelResumes(t *testing.T) {
	t.Parallel()

	db, mockSql, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM workspace_channel_resumes WHERE workspace_id = ? AND month = ? AND channel = ?")).
		WithArgs(1, "02/26", "whatsapp").
		WillReturnResult(sqlmock.NewResult(0, 1))

	insertQuery := "INSERT INTO workspace_channel_resumes (`workspace_id`, `channel`, `month`, `message_count`, `hsm_message_count`, `conversation_count`) VALUES (?, ?, ?, ?, ?, ?)"
	mockSql.ExpectPrepare(regexp.QuoteMeta(insertQuery)).
		ExpectExec().
		WithArgs(1, "whatsapp", "02/26", 120, 15, 30).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = NewWorkspaceRepository(db).ReplaceChannelResumes(1, "02/26", "whatsapp", []models.WorkspaceChannelResume{{
		WorkspaceId:       1,
		Channel:           "whatsapp",
		Month:             "02/26",
		MessageCount:      120,
		HsmMessageCount:   15,
		ConversationCount: 30,
	}})
	assert.NoError(t, err)
	assert.NoError(t, mockSql.ExpectationsWereMet())
}
