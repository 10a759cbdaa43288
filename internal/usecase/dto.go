package usecase

import (
	"product_service/internal/domain"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Title   string `json:"title" validate:"notblank"`
	Details string `json:"details" validate:"notblank"`
}

type UpdateProductRequest struct {
	Title   string `json:"title" validate:"notblank"`
	Details string `json:"details" validate:"notblank"`
}

// ProductDto is the response projection of a persisted product, so API
// responses stay decoupled from the storage representation.
type ProductDto struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Details string    `json:"details"`
}

type PagedResponse[T any] struct {
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Content       []T   `json:"content"`
}

// NewPagedResponse wraps one page of content with its position metadata.
// pageNumber is zero-based; totalPages is ceil(totalElements/pageSize).
func NewPagedResponse[T any](pageNumber, pageSize int, totalElements int64, content []T) PagedResponse[T] {
	totalPages := 0
	if totalElements > 0 {
		totalPages = int((totalElements + int64(pageSize) - 1) / int64(pageSize))
	}
	return PagedResponse[T]{
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		First:         pageNumber == 0,
		Last:          pageNumber == totalPages-1 || totalElements == 0,
		Content:       content,
	}
}

func toProductDto(product *domain.Product) ProductDto {
	return ProductDto{
		ID:      product.ID,
		Title:   product.Title,
		Details: product.Details,
	}
}
