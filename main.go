package main

import (
	"database/sql"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"converso.io/billing/cmd"
	"converso.io/billing/handlers/gateway"
	"converso.io/billing/internal/billing"
	"converso.io/billing/internal/payment"
	"converso.io/billing/repository"
	"converso.io/billing/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	logger := logrus.WithField("component", "main")

	args := os.Args[1:]
	if len(args) == 0 {
		logger.Info("Please provide command")
		return
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		logger.Fatalf("could not open database: %s", err.Error())
	}
	defer db.Close()

	workspaces := repository.NewWorkspaceRepository(db)
	payments := repository.NewPaymentRepository(db)
	manager, publisher := buildManager(db, workspaces, payments, logger)
	if publisher != nil {
		defer publisher.Close()
	}

	command := args[0]
	switch command {
	case "create_payments":
		logger.Info("creating workspace payments")
		_, err = cmd.NewCreatePaymentsJob(workspaces, manager).Run()
	case "sync_payments":
		logger.Info("syncing payment statuses with the gateway")
		_, err = cmd.NewSyncPaymentsJob(payments, manager).Run()
	case "invoice_batch":
		logger.Info("creating invoices for charged payments")
		_, err = cmd.NewInvoiceBatchJob(payments, manager).Run()
	case "aggregate_resumes":
		logger.Info("aggregating per-channel usage resumes")
		usage := repository.NewUsageReader(db)
		_, err = cmd.NewResumeAggregatorJob(workspaces, usage).Run(time.Now())
	default:
		logger.Infof("unknown command %s", command)
		return
	}
	if err != nil {
		logger.Error(err.Error())
	}
}

func buildManager(db *sql.DB, workspaces repository.WorkspaceRepository, payments repository.PaymentRepository, logger *logrus.Entry) (*payment.Manager, *repository.AmqpPublisher) {
	usage := repository.NewUsageReader(db)
	specifications := repository.NewSpecificationRepository(db)
	assembler := billing.NewVirtualItemAssembler(workspaces, usage, specifications)

	var gatewayClient gateway.Client
	if url := utils.Config("GATEWAY_URL"); url != "" {
		gatewayClient = gateway.NewAsaasClient(url, utils.Config("GATEWAY_API_KEY"), 0)
	} else {
		logger.Warn("GATEWAY_URL not set, using sandbox gateway")
		gatewayClient = gateway.NewSandboxClient()
	}

	var publisher *repository.AmqpPublisher
	if queueURL := utils.Config("QUEUE_URL"); queueURL != "" {
		conn, err := amqp.Dial(queueURL)
		if err != nil {
			logger.Warnf("could not connect to the queue, events disabled: %s", err.Error())
		} else {
			publisher, err = repository.NewAmqpPublisher(conn)
			if err != nil {
				logger.Warnf("could not open publisher channel, events disabled: %s", err.Error())
				publisher = nil
			}
		}
	}

	var events repository.EventPublisher
	if publisher != nil {
		events = publisher
	}
	return payment.NewManager(db, workspaces, payments, assembler, gatewayClient, events), publisher
}
