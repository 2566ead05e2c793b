// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unclebandit/customer-service/internal/config"
	"github.com/unclebandit/customer-service/internal/controller"
	"github.com/unclebandit/customer-service/internal/db"
	"github.com/unclebandit/customer-service/internal/handler"
	"github.com/unclebandit/customer-service/internal/queue"
	"github.com/unclebandit/customer-service/internal/repository"
	"github.com/unclebandit/customer-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init DB
	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close(gdb)

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	q, closeQueue := openQueue(cfg.Events)
	defer closeQueue()

	addressService := &service.AddressService{
		AddressRepo: &repository.AddressRepository{DB: gdb},
		Queue:       q,
		Topic:       cfg.Events.Queue,
	}
	customerService := &service.CustomerService{
		CustomerRepo: &repository.CustomerRepository{DB: gdb},
		Queue:        q,
		Topic:        cfg.Events.Queue,
	}

	router := handler.New(handler.Options{
		Addresses:      &controller.AddressController{AddressService: addressService},
		Customers:      &controller.CustomerController{CustomerService: customerService},
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Println("🚀 Server running on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("⚠️ shutdown:", err)
	}
	log.Println("Server stopped")
}

// openQueue publishes to RabbitMQ when AMQP_URL is set. Otherwise change
// events go to an in-process queue whose subscriber logs them.
func openQueue(cfg config.Events) (queue.Queue, func()) {
	if cfg.AMQPURL != "" {
		q, err := queue.DialAMQP(cfg.AMQPURL)
		if err != nil {
			log.Fatal(err)
		}
		return q, func() { q.Close() }
	}

	q := queue.NewInMemoryQueue()
	if err := service.NewWorker(service.LogSink{}).Start(q, cfg.Queue); err != nil {
		log.Fatalf("failed to start change log subscriber: %v", err)
	}
	return q, q.Wait
}
