package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"product_service/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
        INSERT INTO products (title, details)
        VALUES ($1, $2)
        RETURNING id`

	err = tx.QueryRowContext(ctx, query, product.Title, product.Details).Scan(&product.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && (pqErr.Code == "23502" || pqErr.Code == "23514") {
			r.log.Warnf("Repository: Constraint violation creating product '%s': %s", product.Title, pqErr.Message)
			return nil, fmt.Errorf("product data constraint violation: %s", pqErr.Message)
		}
		r.log.Errorf("Repository: Failed to create product '%s': %v", product.Title, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit product creation: %w", err)
	}

	r.log.Infof("Repository: Product created successfully with ID: %s", product.ID)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
        SELECT id, title, details
        FROM products
        WHERE id = $1`
	product := &domain.Product{}

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Title,
		&product.Details,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Product with ID %s not found", id)
			return nil, domain.NewNotFoundError(id)
		}
		r.log.Errorf("Repository: Failed to get product by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	return product, nil
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
        UPDATE products
        SET title = $1, details = $2
        WHERE id = $3`

	result, err := tx.ExecContext(ctx, query, product.Title, product.Details, product.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && (pqErr.Code == "23502" || pqErr.Code == "23514") {
			r.log.Warnf("Repository: Constraint violation updating product ID %s: %s", product.ID, pqErr.Message)
			return fmt.Errorf("product data constraint violation: %s", pqErr.Message)
		}
		r.log.Errorf("Repository: Failed to update product ID %s: %v", product.ID, err)
		return fmt.Errorf("could not update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not confirm product update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Product with ID %s not found for update", product.ID)
		return domain.NewNotFoundError(product.ID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit product update: %w", err)
	}

	r.log.Infof("Repository: Product updated successfully with ID: %s", product.ID)
	return nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Repository: Failed to delete product ID %s: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent product ID %s", id)
		return domain.NewNotFoundError(id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit product deletion: %w", err)
	}

	r.log.Infof("Repository: Product deleted successfully with ID: %s", id)
	return nil
}

func (r *postgresProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.log.Errorf("Repository: Failed to check existence of product ID %s: %v", id, err)
		return false, fmt.Errorf("could not check product existence: %w", err)
	}
	return exists, nil
}

func (r *postgresProductRepository) ListProducts(ctx context.Context, pageNumber, pageSize int) ([]domain.Product, int64, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, 0, fmt.Errorf("could not begin read transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var total int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		r.log.Errorf("Repository: Failed to count products: %v", err)
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	query := `
        SELECT id, title, details
        FROM products
        ORDER BY id ASC
        LIMIT $1 OFFSET $2`

	offset := pageNumber * pageSize
	rows, err := tx.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		r.log.Errorf("Repository: Failed to list products (page %d, size %d): %v", pageNumber, pageSize, err)
		return nil, 0, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Title, &product.Details); err != nil {
			r.log.Errorf("Repository: Failed to scan product row: %v", err)
			return nil, 0, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during products list iteration: %v", err)
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("could not commit read transaction: %w", err)
	}

	r.log.Infof("Repository: Retrieved %d of %d products (page: %d, size: %d)", len(products), total, pageNumber, pageSize)
	return products, total, nil
}

func (r *postgresProductRepository) DeleteAllProducts(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products`); err != nil {
		r.log.Errorf("Repository: Failed to delete all products: %v", err)
		return fmt.Errorf("could not delete all products: %w", err)
	}
	return nil
}
