package service_test

import (
    "sync"
    "testing"

    "github.com/twinlabs/digitaltwin-backend/internal/model"
    "github.com/twinlabs/digitaltwin-backend/internal/queue"
    "github.com/twinlabs/digitaltwin-backend/internal/service"
    "github.com/twinlabs/digitaltwin-backend/internal/twin"
)

// MockResolver serves a fixed customer set
type MockResolver struct {
    customers []model.Customer
}

func (m *MockResolver) Resolve(ids []int) ([]model.Customer, error) {
    wanted := map[int]bool{}
    for _, id := range ids {
        wanted[id] = true
    }
    resolved := []model.Customer{}
    for _, c := range m.customers {
        if wanted[c.UserID] {
            resolved = append(resolved, c)
        }
    }
    return resolved, nil
}

// AlwaysEstimator returns a fixed probability
type AlwaysEstimator struct {
    p float64
}

func (e *AlwaysEstimator) ScoreProbability(features []twin.FeatureVector) []float64 {
    probs := make([]float64, len(features))
    for i := range probs {
        probs[i] = e.p
    }
    return probs
}

func simEngine() *twin.Engine {
    resolver := &MockResolver{customers: []model.Customer{
        {UserID: 1001, Name: "Emma Smith", Age: 30, IncomeBracket: "Medium", InterestSegment: "Bargain Hunter"},
        {UserID: 1002, Name: "Liam Chen", Age: 45, IncomeBracket: "High", InterestSegment: "Tech Enthusiast"},
    }}
    return &twin.Engine{
        Customers:    resolver,
        Opened:       &AlwaysEstimator{p: 1},
        Clicked:      &AlwaysEstimator{p: 0},
        Unsubscribed: &AlwaysEstimator{p: 0},
        Converted:    &AlwaysEstimator{p: 0},
    }
}

func TestSimulatePublishesAuditRecord(t *testing.T) {
    q := queue.NewInMemoryQueue()

    var wg sync.WaitGroup
    wg.Add(1)
    var got model.SimulationRun
    q.Subscribe(queue.SimulationRunsTopic, func(payload any) error {
        got = payload.(model.SimulationRun)
        wg.Done()
        return nil
    })

    svc := &service.SimulationService{Engine: simEngine(), Queue: q}
    campaign := model.Campaign{Type: "Promo", SubjectLine: "Save Big", SendHour: 10}

    result, err := svc.Simulate([]int{1001, 1002, 9999}, campaign)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if result.RunID == "" {
        t.Error("expected a run ID")
    }
    if len(result.Predictions) != 2 {
        t.Fatalf("expected 2 predictions, got %d", len(result.Predictions))
    }
    if result.Summary.TotalCustomers != 2 || result.Summary.PredictedOpens != 2 {
        t.Errorf("wrong summary: %+v", result.Summary)
    }
    if result.Summary.OpenRate != 1 {
        t.Errorf("expected open rate 1, got %v", result.Summary.OpenRate)
    }

    wg.Wait()
    if got.RunID != result.RunID {
        t.Errorf("audit record run ID mismatch: %s vs %s", got.RunID, result.RunID)
    }
    if got.RequestedCustomers != 3 || got.TotalCustomers != 2 {
        t.Errorf("audit record counts wrong: %+v", got)
    }
    if got.CampaignType != "Promo" {
        t.Errorf("expected Promo audit record, got %s", got.CampaignType)
    }
}

func TestSimulateEmptyResultSkipsAudit(t *testing.T) {
    q := queue.NewInMemoryQueue()
    published := false
    q.Subscribe(queue.SimulationRunsTopic, func(payload any) error {
        published = true
        return nil
    })

    svc := &service.SimulationService{Engine: simEngine(), Queue: q}

    result, err := svc.Simulate([]int{9999}, model.Campaign{Type: "Promo", SubjectLine: "Hi", SendHour: 9})
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len(result.Predictions) != 0 {
        t.Fatalf("expected empty predictions, got %d", len(result.Predictions))
    }
    if result.Summary.TotalCustomers != 0 || result.Summary.OpenRate != 0 {
        t.Errorf("expected all-zero summary, got %+v", result.Summary)
    }
    if published {
        t.Error("empty simulations must not publish audit records")
    }
}
