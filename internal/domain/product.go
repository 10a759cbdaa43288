package domain

import (
	"context"

	"github.com/google/uuid"
)

type Product struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Details string    `json:"details"`
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ListProducts returns one page of products together with the total row
	// count across all pages. pageNumber is zero-based.
	ListProducts(ctx context.Context, pageNumber, pageSize int) ([]Product, int64, error)

	// DeleteAllProducts is used by test fixtures only.
	DeleteAllProducts(ctx context.Context) error
}
