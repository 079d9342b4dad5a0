// internal/queue/queue.go
package queue

import (
    "encoding/json"
    "fmt"
    "log"
    "sync"
    "time"

    "github.com/streadway/amqp"

    "github.com/twinlabs/digitaltwin-backend/internal/model"
)

// Queue interface
type Queue interface {
    Publish(topic string, payload any) error
    Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process pub/sub queue with retry
type InMemoryQueue struct {
    mu       sync.Mutex
    handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
    return &InMemoryQueue{
        handlers: make(map[string][]func(payload any) error),
    }
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
    Payload    any
    RetryCount int
    MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
    q.mu.Lock()
    handlers := q.handlers[topic]
    q.mu.Unlock()

    if len(handlers) == 0 {
        return fmt.Errorf("no subscribers for topic %s", topic)
    }

    job := JobPayload{
        Payload:    payload,
        RetryCount: 0,
        MaxRetries: 3,
    }

    for _, handler := range handlers {
        go q.processJob(handler, job)
    }

    return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
    for job.RetryCount <= job.MaxRetries {
        err := handler(job.Payload)
        if err == nil {
            return // ACK
        }

        job.RetryCount++
        log.Printf("Audit job failed (attempt %d/%d): %v\n", job.RetryCount, job.MaxRetries, err)

        if job.RetryCount > job.MaxRetries {
            log.Printf("Audit job permanently failed after %d attempts\n", job.MaxRetries)
            return // No requeue
        }

        // Exponential backoff before retry
        time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
    }
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
    q.mu.Lock()
    defer q.mu.Unlock()

    q.handlers[topic] = append(q.handlers[topic], handler)
    return nil
}

// SimulationRunsTopic is where completed simulation summaries are published.
const SimulationRunsTopic = "simulation_runs"

// StartSimulationAuditSubscriber forwards simulation-run audit records to
// RabbitMQ where cmd/worker archives them. With no AMQP URL configured the
// records are only logged; audit delivery never blocks or fails a simulation.
func StartSimulationAuditSubscriber(q Queue, amqpURL string) {
    var ch *amqp.Channel

    if amqpURL != "" {
        conn, err := amqp.Dial(amqpURL)
        if err != nil {
            log.Println("⚠️ Failed to connect to RabbitMQ, audit records will be log-only:", err)
        } else {
            ch, err = conn.Channel()
            if err != nil {
                log.Println("⚠️ Failed to open RabbitMQ channel, audit records will be log-only:", err)
                ch = nil
            } else if _, err := ch.QueueDeclare(SimulationRunsTopic, true, false, false, false, nil); err != nil {
                log.Println("⚠️ Failed to declare audit queue:", err)
                ch = nil
            }
        }
    }

    err := q.Subscribe(SimulationRunsTopic, func(payload any) error {
        run, ok := payload.(model.SimulationRun)
        if !ok {
            log.Println("⚠️ Invalid audit payload type, expected SimulationRun")
            return nil // no retry
        }

        log.Printf("📊 Simulation %s: %d customers, open rate %.4f\n",
            run.RunID, run.TotalCustomers, run.OpenRate)

        if ch == nil {
            return nil
        }

        body, err := json.Marshal(run)
        if err != nil {
            return err
        }
        return ch.Publish("", SimulationRunsTopic, false, false, amqp.Publishing{
            ContentType: "application/json",
            Body:        body,
        })
    })
    if err != nil {
        log.Println("⚠️ Failed to start subscriber for simulation_runs:", err)
    }
}
