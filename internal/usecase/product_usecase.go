package usecase

import (
	"context"

	"product_service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(ctx context.Context, request CreateProductRequest) (ProductDto, error)
	GetAllProductsPaginated(ctx context.Context, pageNumber, pageSize int) (PagedResponse[ProductDto], error)
	GetProductByID(ctx context.Context, id uuid.UUID) (ProductDto, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, request UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, request CreateProductRequest) (ProductDto, error) {
	product := &domain.Product{
		Title:   request.Title,
		Details: request.Details,
	}

	created, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", request.Title, err)
		return ProductDto{}, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %s", created.Title, created.ID)
	return toProductDto(created), nil
}

func (uc *productUseCase) GetAllProductsPaginated(ctx context.Context, pageNumber, pageSize int) (PagedResponse[ProductDto], error) {
	products, total, err := uc.productRepo.ListProducts(ctx, pageNumber, pageSize)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products (page %d, size %d): %v", pageNumber, pageSize, err)
		return PagedResponse[ProductDto]{}, err
	}

	content := make([]ProductDto, 0, len(products))
	for i := range products {
		content = append(content, toProductDto(&products[i]))
	}

	return NewPagedResponse(pageNumber, pageSize, total, content), nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id uuid.UUID) (ProductDto, error) {
	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %s: %v", id, err)
		return ProductDto{}, err
	}

	return toProductDto(product), nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id uuid.UUID, request UpdateProductRequest) error {
	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %s not found for update: %v", id, err)
		return err
	}

	product.Title = request.Title
	product.Details = request.Details

	if err := uc.productRepo.UpdateProduct(ctx, product); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %s", id)
	return nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	exists, err := uc.productRepo.ExistsByID(ctx, id)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to check product ID %s: %v", id, err)
		return err
	}
	if !exists {
		uc.log.Warnf("Use Case: Product ID %s not found for delete", id)
		return domain.NewNotFoundError(id)
	}

	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %s", id)
	return nil
}
