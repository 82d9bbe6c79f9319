package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"converso.io/billing/cmd"
	"converso.io/billing/handlers/gateway"
	"converso.io/billing/internal/billing"
	"converso.io/billing/internal/payment"
	"converso.io/billing/models"
	"converso.io/billing/repository"
	"converso.io/billing/utils"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	db, err := utils.GetDBConnection()
	if err != nil {
		panic(err)
	}
	defer db.Close()

	workspaces := repository.NewWorkspaceRepository(db)
	payments := repository.NewPaymentRepository(db)
	usage := repository.NewUsageReader(db)
	specifications := repository.NewSpecificationRepository(db)
	assembler := billing.NewVirtualItemAssembler(workspaces, usage, specifications)

	var gatewayClient gateway.Client
	if url := utils.Config("GATEWAY_URL"); url != "" {
		gatewayClient = gateway.NewAsaasClient(url, utils.Config("GATEWAY_API_KEY"), 0)
	} else {
		gatewayClient = gateway.NewSandboxClient()
	}

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	var events repository.EventPublisher
	publisher, err := repository.NewAmqpPublisher(conn)
	if err != nil {
		log.Printf("Could not open publisher channel, events disabled: %v", err)
	} else {
		defer publisher.Close()
		events = publisher
	}

	manager := payment.NewManager(db, workspaces, payments, assembler, gatewayClient, events)

	ch, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer ch.Close()

	// Prefetch(1) ensures the worker doesn't hog all tasks if one is slow
	ch.Qos(1, 0, false)
	if _, err := ch.QueueDeclare("billing_tasks", true, false, false, false, nil); err != nil {
		panic(err)
	}
	msgs, err := ch.Consume("billing_tasks", "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}

	log.Println("Worker ready. Waiting for tasks...")

	for d := range msgs {
		var task models.BillingTask
		if err := json.Unmarshal(d.Body, &task); err != nil {
			log.Printf("Malformed task body, dropping: %v", err)
			d.Nack(false, false)
			continue
		}

		err := processTask(task, manager, workspaces, payments, usage)
		if err != nil {
			log.Printf("Error processing task %s (workspace %d): %v", task.TaskType, task.WorkspaceID, err)
			d.Nack(false, true) // Requeue for retry
		} else {
			d.Ack(false)
		}
	}
}

func processTask(task models.BillingTask, manager *payment.Manager, workspaces repository.WorkspaceRepository,
	payments repository.PaymentRepository, usage repository.UsageReader) error {
	switch task.TaskType {
	case models.TaskCreatePayment:
		_, _, err := manager.CreatePayment(task.WorkspaceID, task.AccountID, "")
		if errors.Is(err, models.ErrPaymentConflict) {
			log.Printf("Workspace %d already billed for this period", task.WorkspaceID)
			return nil
		}
		return err
	case models.TaskSyncPayments:
		_, err := cmd.NewSyncPaymentsJob(payments, manager).Run()
		return err
	case models.TaskInvoicePayments:
		_, err := cmd.NewInvoiceBatchJob(payments, manager).Run()
		return err
	case models.TaskAggregateResumes:
		_, err := cmd.NewResumeAggregatorJob(workspaces, usage).Run(time.Now())
		return err
	default:
		log.Printf("Unknown task type %s, dropping", task.TaskType)
		return nil
	}
}
