// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// ErrCustomerNotFound is returned when a single-customer lookup misses.
// Batch resolves never return it; unknown IDs in a batch are dropped silently.
type ErrCustomerNotFound struct {
    CustomerID int
}

func (e *ErrCustomerNotFound) Error() string {
    return fmt.Sprintf("customer with ID %d not found", e.CustomerID)
}

// Helper constructor
func NewCustomerNotFound(id int) error {
    return &ErrCustomerNotFound{CustomerID: id}
}

func IsCustomerNotFound(err error) bool {
    var e *ErrCustomerNotFound
    return errors.As(err, &e)
}
