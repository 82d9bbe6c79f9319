package models

const (
	TaskCreatePayment    = "create_payment"
	TaskSyncPayments     = "sync_payments"
	TaskInvoicePayments  = "invoice_payments"
	TaskAggregateResumes = "aggregate_resumes"
)

type BillingTask struct {
	WorkspaceID int    `json:"workspace_id"`
	AccountID   int    `json:"account_id"`
	TaskType    string `json:"task_type"`
	RunID       string `json:"run_id"`
}
