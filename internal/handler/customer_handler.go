// internal/handler/customer_handler.go
package handler

import (
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/twinlabs/digitaltwin-backend/internal/errors"
    "github.com/twinlabs/digitaltwin-backend/internal/repository"
    "github.com/twinlabs/digitaltwin-backend/internal/service"
)

// CustomerHandler holds the dependencies for customer-related HTTP handlers
type CustomerHandler struct {
    Service *service.CustomerService
}

// ListCustomersHandler returns a filtered, paginated list of customers
func (h *CustomerHandler) ListCustomersHandler(w http.ResponseWriter, r *http.Request) {
    page := 1
    pageSize := 50

    if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
        page = p
    }
    if ps, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && ps > 0 {
        pageSize = ps
    }

    filters := repository.CustomerFilters{
        Segment: r.URL.Query().Get("segment"),
        Income:  r.URL.Query().Get("income"),
    }
    if v, err := strconv.Atoi(r.URL.Query().Get("min_age")); err == nil {
        filters.MinAge = v
    }
    if v, err := strconv.Atoi(r.URL.Query().Get("max_age")); err == nil {
        filters.MaxAge = v
    }

    customers, pagination, err := h.Service.ListCustomers(filters, page, pageSize)
    if err != nil {
        http.Error(w, "failed to fetch customers: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "customers": customers,
        "total":     pagination["total"],
        "page":      pagination["page"],
        "page_size": pagination["page_size"],
    })
}

// GetCustomerHandler returns a single customer by ID
func (h *CustomerHandler) GetCustomerHandler(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid customer id", http.StatusBadRequest)
        return
    }

    customer, err := h.Service.GetCustomer(id)
    if err != nil {
        if appErrors.IsCustomerNotFound(err) {
            http.Error(w, "customer not found", http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch customer: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(customer)
}
