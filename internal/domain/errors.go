package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError is the only domain error the service raises. Handlers match
// on it with errors.As to select the HTTP status.
type NotFoundError struct {
	ProductID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product not found with id = %s", e.ProductID)
}

func NewNotFoundError(id uuid.UUID) *NotFoundError {
	return &NotFoundError{ProductID: id}
}
