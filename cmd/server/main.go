// cmd/server/main.go
package main

import (
    "log"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "golang.org/x/time/rate"

    "github.com/twinlabs/digitaltwin-backend/internal/config"
    "github.com/twinlabs/digitaltwin-backend/internal/controller"
    "github.com/twinlabs/digitaltwin-backend/internal/db"
    "github.com/twinlabs/digitaltwin-backend/internal/handler"
    "github.com/twinlabs/digitaltwin-backend/internal/metrics"
    "github.com/twinlabs/digitaltwin-backend/internal/queue"
    "github.com/twinlabs/digitaltwin-backend/internal/repository"
    "github.com/twinlabs/digitaltwin-backend/internal/service"
    "github.com/twinlabs/digitaltwin-backend/internal/twin"
)

func main() {
    config.Load()

    // Historical interaction store, env-switched backend
    var store repository.InteractionStore
    switch backend := config.Get("DATA_BACKEND", "postgres"); backend {
    case "postgres":
        conn, err := db.Connect()
        if err != nil {
            log.Fatalf("failed to connect to DB: %v", err)
        }
        store = &repository.PostgresInteractionStore{DB: conn}
    case "csv":
        store = &repository.CSVInteractionStore{
            Path: config.Get("DATA_CSV_PATH", "data/ecommerce_marketing_data.csv"),
        }
    default:
        log.Fatalf("unknown DATA_BACKEND: %s", backend)
    }

    // Both loads happen exactly once here; everything below is read-only and
    // shared across concurrent requests.
    customerRepo, err := repository.NewCustomerRepository(store)
    if err != nil {
        log.Fatalf("failed to build customer repository: %v", err)
    }
    log.Printf("✅ Loaded %d customers\n", customerRepo.Count())

    bundle, err := twin.LoadBundle(config.Get("MODEL_PATH", "data/twin_models.json"))
    if err != nil {
        log.Fatalf("failed to load model bundle: %v", err)
    }
    log.Println("✅ Loaded outcome models:", twin.Outcomes)

    q := queue.NewInMemoryQueue()
    queue.StartSimulationAuditSubscriber(q, config.Get("AMQP_URL", ""))

    m := metrics.New()

    engine := twin.NewEngine(customerRepo, bundle)

    simulationService := &service.SimulationService{
        Engine:  engine,
        Queue:   q,
        Metrics: m,
    }
    customerService := &service.CustomerService{
        CustomerRepo: customerRepo,
    }

    simulationController := &controller.SimulationController{
        SimulationService: simulationService,
    }
    customerHandler := &handler.CustomerHandler{
        Service: customerService,
    }

    limiter := rate.NewLimiter(rate.Limit(simulateRateLimit()), 2*simulateRateLimit())

    r := chi.NewRouter()

    r.Get("/", simulationController.Root)
    r.Get("/customers", customerHandler.ListCustomersHandler)
    r.Get("/customers/{id}", customerHandler.GetCustomerHandler)
    r.Get("/campaigns/types", simulationController.CampaignTypes)
    r.Get("/segments", simulationController.Segments)
    r.Post("/simulate", rateLimited(limiter, simulationController.Simulate))
    r.Handle("/metrics", promhttp.Handler())

    addr := config.Get("HTTP_ADDR", ":8080")
    log.Println("🚀 Server running on", addr)
    log.Fatal(http.ListenAndServe(addr, r))
}

func simulateRateLimit() int {
    if n, err := strconv.Atoi(config.Get("SIMULATE_RATE_LIMIT", "20")); err == nil && n > 0 {
        return n
    }
    return 20
}

func rateLimited(limiter *rate.Limiter, next http.HandlerFunc) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        if !limiter.Allow() {
            http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
            return
        }
        next(w, r)
    }
}
