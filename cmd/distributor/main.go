package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"converso.io/billing/models"
	"converso.io/billing/repository"
	"converso.io/billing/utils"

	_ "github.com/go-sql-driver/mysql"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var rdb *redis.Client

func main() {
	redisURL := os.Getenv("REDIS_URL")
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Critical: Failed to parse REDIS_URL: %v", err)
	}
	rdb = redis.NewClient(opt)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Critical: Could not connect to Redis: %v", err)
	}

	c := cron.New()

	// Period creation at midnight on the 1st, per workspace.
	_, _ = c.AddFunc("0 0 1 * *", func() {
		log.Println("Triggering payment creation...")
		distributeCreatePayments()
	})

	// Gateway reconciliation and invoicing, hourly.
	_, _ = c.AddFunc("0 * * * *", func() {
		distributeSingleton(models.TaskSyncPayments, time.Now().Format("2006-01-02-15"))
		distributeSingleton(models.TaskInvoicePayments, time.Now().Format("2006-01-02-15"))
	})

	// Per-channel usage resumes, nightly.
	_, _ = c.AddFunc("30 0 * * *", func() {
		distributeSingleton(models.TaskAggregateResumes, time.Now().Format("2006-01-02"))
	})

	// DEBUG: every minute when DISTRIBUTOR_DEBUG is set to 1.
	if os.Getenv("DISTRIBUTOR_DEBUG") == "1" {
		_, _ = c.AddFunc("* * * * *", func() {
			log.Println("[DEBUG] Running per-minute test trigger...")
			distributeCreatePayments()
		})
	}

	log.Printf("Billing task distributor started. Connected to Redis at: %s", opt.Addr)
	c.Start()

	select {}
}

// distributeSingleton queues one task of the given type for the period
// suffix. The redis lock ensures a single replica queues it.
func distributeSingleton(taskType string, suffix string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	lockKey := fmt.Sprintf("billing_run_lock:%s:%s", taskType, suffix)
	locked, err := rdb.SetNX(ctx, lockKey, "running", 55*time.Minute).Result()
	if err != nil || !locked {
		log.Printf("[%s] Skip: lock %s held by another instance.", taskType, lockKey)
		return
	}

	publish, closeQueue, err := openQueue()
	if err != nil {
		log.Printf("[%s] RabbitMQ setup failed: %v", taskType, err)
		return
	}
	defer closeQueue()

	task := models.BillingTask{TaskType: taskType, RunID: lockKey}
	if err := publish(ctx, task); err != nil {
		log.Printf("[%s] Publish error: %v", taskType, err)
		return
	}
	log.Printf("[%s] Task queued.", taskType)
}

// distributeCreatePayments queues one creation task per active
// workspace, deduplicated per workspace per month.
func distributeCreatePayments() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	suffix := time.Now().Format("2006-01")
	lockTTL := 23 * time.Hour
	if os.Getenv("DISTRIBUTOR_DEBUG") == "1" {
		suffix = time.Now().Format("2006-01-02-15:04")
		lockTTL = 50 * time.Second
	}

	globalLockKey := fmt.Sprintf("billing_run_lock:%s:%s", models.TaskCreatePayment, suffix)
	locked, err := rdb.SetNX(ctx, globalLockKey, "running", lockTTL).Result()
	if err != nil || !locked {
		log.Printf("Skip: lock %s held by another instance.", globalLockKey)
		return
	}

	log.Printf("Lock acquired. Processing distribution...")

	db, err := utils.GetDBConnection()
	if err != nil {
		log.Printf("DB connection error: %v", err)
		return
	}
	defer db.Close()

	publish, closeQueue, err := openQueue()
	if err != nil {
		log.Printf("RabbitMQ setup failed: %v", err)
		return
	}
	defer closeQueue()

	workspaces, err := repository.NewWorkspaceRepository(db).ListActiveWorkspaces()
	if err != nil {
		log.Printf("DB query error: %v", err)
		return
	}

	count := 0
	for _, workspace := range workspaces {
		// No workspace is queued twice in the same cycle.
		dedupeKey := fmt.Sprintf("queued:%s:%d:%s", models.TaskCreatePayment, workspace.Id, suffix)
		isNew, _ := rdb.SetNX(ctx, dedupeKey, "true", 31*24*time.Hour).Result()
		if !isNew {
			continue
		}

		task := models.BillingTask{
			WorkspaceID: workspace.Id,
			AccountID:   workspace.AccountId,
			TaskType:    models.TaskCreatePayment,
			RunID:       globalLockKey,
		}
		if err := publish(ctx, task); err != nil {
			rdb.Del(ctx, dedupeKey) // Failed to publish, allow retry
			log.Printf("Publish error for workspace %d: %v", workspace.Id, err)
			continue
		}
		count++
	}

	log.Printf("Distribution finished. Total queued: %d", count)
}

// openQueue dials RabbitMQ and returns a confirm-mode publish func for
// the billing task queue.
func openQueue() (func(context.Context, models.BillingTask) error, func(), error) {
	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	if err := ch.Confirm(false); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, err
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	q, err := ch.QueueDeclare("billing_tasks", true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, err
	}

	publish := func(ctx context.Context, task models.BillingTask) error {
		body, _ := json.Marshal(task)
		err := ch.PublishWithContext(ctx, "", q.Name, false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
		if err != nil {
			return err
		}
		select {
		case confirmed := <-confirms:
			if !confirmed.Ack {
				return fmt.Errorf("broker nacked task %s", task.TaskType)
			}
		case <-time.After(5 * time.Second):
			return fmt.Errorf("timeout waiting for broker ack")
		}
		return nil
	}
	closeQueue := func() {
		ch.Close()
		conn.Close()
	}
	return publish, closeQueue, nil
}
