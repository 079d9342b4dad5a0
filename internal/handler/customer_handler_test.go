package handler_test

import (
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/twinlabs/digitaltwin-backend/internal/errors"
    "github.com/twinlabs/digitaltwin-backend/internal/handler"
    "github.com/twinlabs/digitaltwin-backend/internal/model"
    "github.com/twinlabs/digitaltwin-backend/internal/repository"
    "github.com/twinlabs/digitaltwin-backend/internal/service"
)

// MockCustomerRepo serves a fixed customer set
type MockCustomerRepo struct {
    customers []model.Customer
}

func (m *MockCustomerRepo) GetByID(id int) (*model.Customer, error) {
    for _, c := range m.customers {
        if c.UserID == id {
            cc := c
            return &cc, nil
        }
    }
    return nil, appErrors.NewCustomerNotFound(id)
}

func (m *MockCustomerRepo) Resolve(ids []int) ([]model.Customer, error) {
    return []model.Customer{}, nil
}

func (m *MockCustomerRepo) List(filters repository.CustomerFilters, page, pageSize int) ([]model.Customer, int, error) {
    filtered := []model.Customer{}
    for _, c := range m.customers {
        if filters.Segment != "" && c.InterestSegment != filters.Segment {
            continue
        }
        filtered = append(filtered, c)
    }
    total := len(filtered)
    start := (page - 1) * pageSize
    if start >= total {
        return []model.Customer{}, total, nil
    }
    end := start + pageSize
    if end > total {
        end = total
    }
    return filtered[start:end], total, nil
}

func testRouter() *chi.Mux {
    customers := make([]model.Customer, 5)
    for i := range customers {
        customers[i] = model.Customer{
            UserID:          1001 + i,
            Name:            fmt.Sprintf("Customer %d", i),
            InterestSegment: "Bargain Hunter",
        }
    }
    h := &handler.CustomerHandler{
        Service: &service.CustomerService{
            CustomerRepo: &MockCustomerRepo{customers: customers},
        },
    }

    r := chi.NewRouter()
    r.Get("/customers", h.ListCustomersHandler)
    r.Get("/customers/{id}", h.GetCustomerHandler)
    return r
}

func TestListCustomersHandler(t *testing.T) {
    r := testRouter()

    req := httptest.NewRequest("GET", "/customers?page=1&page_size=3", nil)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)

    if w.Result().StatusCode != http.StatusOK {
        t.Fatalf("expected 200, got %d", w.Result().StatusCode)
    }

    var res struct {
        Customers []model.Customer `json:"customers"`
        Total     int              `json:"total"`
        Page      int              `json:"page"`
        PageSize  int              `json:"page_size"`
    }
    if err := json.NewDecoder(w.Result().Body).Decode(&res); err != nil {
        t.Fatalf("failed to decode response: %v", err)
    }
    if res.Total != 5 || len(res.Customers) != 3 {
        t.Errorf("expected 3 of 5 customers, got %d of %d", len(res.Customers), res.Total)
    }
    if res.Page != 1 || res.PageSize != 3 {
        t.Errorf("pagination echo wrong: page=%d page_size=%d", res.Page, res.PageSize)
    }
}

func TestGetCustomerHandler(t *testing.T) {
    r := testRouter()

    req := httptest.NewRequest("GET", "/customers/1001", nil)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)
    if w.Result().StatusCode != http.StatusOK {
        t.Fatalf("expected 200, got %d", w.Result().StatusCode)
    }

    var c model.Customer
    if err := json.NewDecoder(w.Result().Body).Decode(&c); err != nil {
        t.Fatalf("failed to decode response: %v", err)
    }
    if c.UserID != 1001 {
        t.Errorf("expected customer 1001, got %d", c.UserID)
    }
}

func TestGetCustomerHandlerNotFound(t *testing.T) {
    r := testRouter()

    req := httptest.NewRequest("GET", "/customers/4242", nil)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)
    if w.Result().StatusCode != http.StatusNotFound {
        t.Errorf("expected 404, got %d", w.Result().StatusCode)
    }
}

func TestGetCustomerHandlerBadID(t *testing.T) {
    r := testRouter()

    req := httptest.NewRequest("GET", "/customers/abc", nil)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)
    if w.Result().StatusCode != http.StatusBadRequest {
        t.Errorf("expected 400, got %d", w.Result().StatusCode)
    }
}
