// internal/service/customer_service.go
package service

import (
    "github.com/twinlabs/digitaltwin-backend/internal/model"
    "github.com/twinlabs/digitaltwin-backend/internal/repository"
)

type CustomerService struct {
    CustomerRepo repository.CustomerRepositoryInterface
}

// ListCustomers fetches a filtered page of customers with pagination info
func (s *CustomerService) ListCustomers(filters repository.CustomerFilters, page, pageSize int) ([]model.Customer, map[string]int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 50
    }
    if pageSize > 10000 {
        pageSize = 10000
    }

    customers, total, err := s.CustomerRepo.List(filters, page, pageSize)
    if err != nil {
        return nil, nil, err
    }

    pagination := map[string]int{
        "page":      page,
        "page_size": pageSize,
        "total":     total,
    }
    return customers, pagination, nil
}

// GetCustomer fetches a single customer by ID
func (s *CustomerService) GetCustomer(id int) (*model.Customer, error) {
    return s.CustomerRepo.GetByID(id)
}
