package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/unclebandit/customer-service/internal/config"
	"github.com/unclebandit/customer-service/internal/queue"
	"github.com/unclebandit/customer-service/internal/service"
)

// Consumes entity change events from RabbitMQ and writes them to the log.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Events.AMQPURL == "" {
		log.Fatal("AMQP_URL is required")
	}

	q, err := queue.DialAMQP(cfg.Events.AMQPURL)
	if err != nil {
		log.Fatal(err)
	}
	defer q.Close()

	worker := service.NewWorker(service.LogSink{})
	if err := worker.Start(q, cfg.Events.Queue); err != nil {
		log.Fatal(err)
	}

	log.Println("Worker running, waiting for messages...")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
	case err := <-q.NotifyClose():
		log.Println("⚠️ RabbitMQ connection closed:", err)
	}
}
