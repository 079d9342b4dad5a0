// internal/repository/customer_repository.go
package repository

import (
    "sort"

    appErrors "github.com/twinlabs/digitaltwin-backend/internal/errors"
    "github.com/twinlabs/digitaltwin-backend/internal/model"
)

// CustomerFilters is an optional conjunction over the list endpoint's filters.
// Zero values mean "no constraint".
type CustomerFilters struct {
    Segment string
    Income  string
    MinAge  int
    MaxAge  int
}

// CustomerRepositoryInterface defines methods used by services and the engine
type CustomerRepositoryInterface interface {
    GetByID(id int) (*model.Customer, error)
    Resolve(ids []int) ([]model.Customer, error)
    List(filters CustomerFilters, page, pageSize int) ([]model.Customer, int, error)
}

// CustomerRepository holds the aggregated customer set in memory. It is built
// once at startup from the interaction store and read-only afterward, so
// concurrent simulations need no coordination.
type CustomerRepository struct {
    customers []model.Customer // ordered by user_id
    index     map[int]int      // user_id -> position in customers
}

// NewCustomerRepository loads the historical rows and aggregates them into one
// customer per user_id: first observed value for descriptive fields, summed
// engagement flags.
func NewCustomerRepository(store InteractionStore) (*CustomerRepository, error) {
    rows, err := store.Load()
    if err != nil {
        return nil, err
    }

    byID := map[int]*model.Customer{}
    for _, r := range rows {
        c, ok := byID[r.UserID]
        if !ok {
            c = &model.Customer{
                UserID:            r.UserID,
                Name:              r.Name,
                Age:               r.Age,
                IncomeBracket:     r.IncomeBracket,
                InterestSegment:   r.InterestSegment,
                PastPurchaseCount: r.PastPurchaseCount,
            }
            byID[r.UserID] = c
        }
        if r.Opened {
            c.HistoricalOpens++
        }
        if r.Clicked {
            c.HistoricalClicks++
        }
        if r.Converted {
            c.HistoricalConversions++
        }
    }

    customers := make([]model.Customer, 0, len(byID))
    for _, c := range byID {
        customers = append(customers, *c)
    }
    sort.Slice(customers, func(i, j int) bool {
        return customers[i].UserID < customers[j].UserID
    })

    index := make(map[int]int, len(customers))
    for i, c := range customers {
        index[c.UserID] = i
    }

    return &CustomerRepository{customers: customers, index: index}, nil
}

// Count returns the number of unique customers.
func (r *CustomerRepository) Count() int {
    return len(r.customers)
}

// GetByID fetches a single customer or a typed not-found error.
func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
    i, ok := r.index[id]
    if !ok {
        return nil, appErrors.NewCustomerNotFound(id)
    }
    c := r.customers[i]
    return &c, nil
}

// Resolve returns the customers whose IDs exist in the store, in user_id order.
// Unknown IDs are dropped silently; an all-unknown set yields an empty slice,
// never an error.
func (r *CustomerRepository) Resolve(ids []int) ([]model.Customer, error) {
    wanted := make(map[int]bool, len(ids))
    for _, id := range ids {
        wanted[id] = true
    }

    resolved := []model.Customer{}
    for _, c := range r.customers {
        if wanted[c.UserID] {
            resolved = append(resolved, c)
        }
    }
    return resolved, nil
}

// List applies the filter conjunction then paginates. Pages are 1-indexed and
// pageSize is clamped to [1, 10000]. Out-of-range pages return empty results,
// not errors.
func (r *CustomerRepository) List(filters CustomerFilters, page, pageSize int) ([]model.Customer, int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 1
    }
    if pageSize > 10000 {
        pageSize = 10000
    }

    filtered := []model.Customer{}
    for _, c := range r.customers {
        if filters.Segment != "" && c.InterestSegment != filters.Segment {
            continue
        }
        if filters.Income != "" && c.IncomeBracket != filters.Income {
            continue
        }
        if filters.MinAge > 0 && c.Age < filters.MinAge {
            continue
        }
        if filters.MaxAge > 0 && c.Age > filters.MaxAge {
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

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
