package repository

import (
	"database/sql"

	"github.com/pkg/errors"
	"converso.io/billing/models"
)

type WorkspaceRepository interface {
	GetWorkspace(id int) (*models.Workspace, error)
	GetAccount(id int) (*models.Account, error)
	ListActiveWorkspaces() ([]models.Workspace, error)
	SetAccountGatewayCustomerId(accountId int, customerId string) error
	GetChannelSpecifications(workspaceId int) ([]models.WorkspaceChannelSpecification, error)
	GetChannelResumes(workspaceId int, month string) ([]models.WorkspaceChannelResume, error)
	ReplaceChannelResumes(workspaceId int, month string, channel string, resumes []models.WorkspaceChannelResume) error
}

type WorkspaceService struct {
	db *sql.DB
}

func NewWorkspaceRepository(db *sql.DB) WorkspaceRepository {
	return &WorkspaceService{db: db}
}

const workspaceColumns = `id, account_id, name, plan_price, billing_mode, due_day, active, start_at,
	message_limit, exceeded_message_price, hsm_message_limit, exceeded_hsm_message_price,
	conversation_limit, exceeded_conversation_price, user_limit, exceeded_user_price,
	invoice_description, payment_description`

func (ws *WorkspaceService) GetWorkspace(id int) (*models.Workspace, error) {
	row := ws.db.QueryRow(`SELECT `+workspaceColumns+` FROM workspaces WHERE id = ?`, id)
	workspace, err := scanWorkspace(row)
	if err == sql.ErrNoRows {
		return nil, models.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetching workspace %d", id)
	}
	return workspace, nil
}

func (ws *WorkspaceService) ListActiveWorkspaces() ([]models.Workspace, error) {
	rows, err := ws.db.Query(`SELECT ` + workspaceColumns + ` FROM workspaces WHERE active = 1`)
	if err != nil {
		return nil, errors.Wrap(err, "listing active workspaces")
	}
	defer rows.Close()

	var workspaces []models.Workspace
	for rows.Next() {
		workspace, err := scanWorkspace(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning workspace row")
		}
		workspaces = append(workspaces, *workspace)
	}
	return workspaces, rows.Err()
}

func (ws *WorkspaceService) GetAccount(id int) (*models.Account, error) {
	row := ws.db.QueryRow(`SELECT id, name, email, document, phone, postal_code, address_number, gateway_customer_id FROM accounts WHERE id = ?`, id)
	var account models.Account
	var customerId sql.NullString
	err := row.Scan(&account.Id, &account.Name, &account.Email, &account.Document,
		&account.Phone, &account.PostalCode, &account.AddressNumber, &customerId)
	if err == sql.ErrNoRows {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetching account %d", id)
	}
	account.GatewayCustomerId = customerId.String
	return &account, nil
}

func (ws *WorkspaceService) SetAccountGatewayCustomerId(accountId int, customerId string) error {
	_, err := ws.db.Exec(`UPDATE accounts SET gateway_customer_id = ? WHERE id = ?`, customerId, accountId)
	return errors.Wrapf(err, "saving gateway customer id for account %d", accountId)
}

func (ws *WorkspaceService) GetChannelSpecifications(workspaceId int) ([]models.WorkspaceChannelSpecification, error) {
	rows, err := ws.db.Query(`SELECT id, workspace_id, channel, message_limit, exceeded_message_price,
		conversation_limit, exceeded_conversation_price
		FROM workspace_channel_specifications WHERE workspace_id = ?`, workspaceId)
	if err != nil {
		return nil, errors.Wrapf(err, "listing channel specifications for workspace %d", workspaceId)
	}
	defer rows.Close()

	var specs []models.WorkspaceChannelSpecification
	for rows.Next() {
		var spec models.WorkspaceChannelSpecification
		var messageLimit, conversationLimit sql.NullInt64
		var messagePrice, conversationPrice sql.NullFloat64
		err = rows.Scan(&spec.Id, &spec.WorkspaceId, &spec.Channel,
			&messageLimit, &messagePrice, &conversationLimit, &conversationPrice)
		if err != nil {
			return nil, errors.Wrap(err, "scanning channel specification row")
		}
		spec.MessageLimit = nullInt(messageLimit)
		spec.ExceededMessagePrice = nullFloat(messagePrice)
		spec.ConversationLimit = nullInt(conversationLimit)
		spec.ExceededConversationPrice = nullFloat(conversationPrice)
		specs = append(specs, spec)
	}
	return specs, rows.Err()
}

func (ws *WorkspaceService) GetChannelResumes(workspaceId int, month string) ([]models.WorkspaceChannelResume, error) {
	rows, err := ws.db.Query(`SELECT id, workspace_id, channel, month, message_count, hsm_message_count, conversation_count
		FROM workspace_channel_resumes WHERE workspace_id = ? AND month = ?`, workspaceId, month)
	if err != nil {
		return nil, errors.Wrapf(err, "listing channel resumes for workspace %d", workspaceId)
	}
	defer rows.Close()

	var resumes []models.WorkspaceChannelResume
	for rows.Next() {
		var resume models.WorkspaceChannelResume
		err = rows.Scan(&resume.Id, &resume.WorkspaceId, &resume.Channel, &resume.Month,
			&resume.MessageCount, &resume.HsmMessageCount, &resume.ConversationCount)
		if err != nil {
			return nil, errors.Wrap(err, "scanning channel resume row")
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// ReplaceChannelResumes regenerates the resume rows for one workspace,
// month and channel. Delete and insert are not atomic as a pair;
// readers tolerate transiently missing rows.
func (ws *WorkspaceService) ReplaceChannelResumes(workspaceId int, month string, channel string, resumes []models.WorkspaceChannelResume) error {
	_, err := ws.db.Exec(`DELETE FROM workspace_channel_resumes WHERE workspace_id = ? AND month = ? AND channel = ?`,
		workspaceId, month, channel)
	if err != nil {
		return errors.Wrap(err, "deleting previous channel resumes")
	}
	stmt, err := ws.db.Prepare("INSERT INTO workspace_channel_resumes (`workspace_id`, `channel`, `month`, `message_count`, `hsm_message_count`, `conversation_count`) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing channel resume insert")
	}
	defer stmt.Close()
	for _, resume := range resumes {
		_, err = stmt.Exec(resume.WorkspaceId, resume.Channel, resume.Month,
			resume.MessageCount, resume.HsmMessageCount, resume.ConversationCount)
		if err != nil {
			return errors.Wrap(err, "inserting channel resume")
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkspace(row rowScanner) (*models.Workspace, error) {
	var workspace models.Workspace
	var messageLimit, hsmLimit, conversationLimit, userLimit sql.NullInt64
	var messagePrice, hsmPrice, conversationPrice, userPrice sql.NullFloat64
	var invoiceDesc, paymentDesc sql.NullString
	err := row.Scan(&workspace.Id, &workspace.AccountId, &workspace.Name, &workspace.PlanPrice,
		&workspace.BillingMode, &workspace.DueDay, &workspace.Active, &workspace.StartAt,
		&messageLimit, &messagePrice, &hsmLimit, &hsmPrice,
		&conversationLimit, &conversationPrice, &userLimit, &userPrice,
		&invoiceDesc, &paymentDesc)
	if err != nil {
		return nil, err
	}
	workspace.MessageLimit = nullInt(messageLimit)
	workspace.ExceededMessagePrice = nullFloat(messagePrice)
	workspace.HsmMessageLimit = nullInt(hsmLimit)
	workspace.ExceededHsmMessagePrice = nullFloat(hsmPrice)
	workspace.ConversationLimit = nullInt(conversationLimit)
	workspace.ExceededConversationPrice = nullFloat(conversationPrice)
	workspace.UserLimit = nullInt(userLimit)
	workspace.ExceededUserPrice = nullFloat(userPrice)
	workspace.InvoiceDescription = invoiceDesc.String
	workspace.PaymentDescription = paymentDesc.String
	return &workspace, nil
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
