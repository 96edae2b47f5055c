package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"boutiqueBack/internal/models"
)

var (
	ErrProductNotFound    = models.ErrProductNotFound
	ErrProductAlreadySold = models.ErrProductAlreadySold
)

type ProductRepository struct {
	DB *sql.DB
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	query := `
		INSERT INTO products (id, name, category, description, image_path, original_price, seller_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Description,
		product.ImagePath,
		product.OriginalPrice,
		product.SellerName,
		product.Status,
		product.CreatedAt,
	)
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	query := `
		SELECT id, name, category, description, image_path, original_price, seller_name, status, created_at, sold_price, sold_at
		FROM products
		WHERE id = $1
	`
	product, err := scanProduct(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (r *ProductRepository) GetProductsByStatus(ctx context.Context, status string) ([]models.Product, error) {
	query := `
		SELECT id, name, category, description, image_path, original_price, seller_name, status, created_at, sold_price, sold_at
		FROM products
		WHERE status = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// MarkProductSold freezes the sale price and timestamp in a single guarded
// UPDATE: the status filter makes the read-then-freeze transition atomic, a
// concurrent sale of the same product affects zero rows.
func (r *ProductRepository) MarkProductSold(ctx context.Context, id string, price float64, soldAt time.Time) error {
	query := `
		UPDATE products
		SET status = $1, sold_price = $2, sold_at = $3
		WHERE id = $4 AND status = $5
	`
	result, err := r.DB.ExecContext(ctx, query, models.ProductStatusSold, price, soldAt, id, models.ProductStatusActive)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return r.missingOrSold(ctx, id)
	}
	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1 AND status = $2`
	result, err := r.DB.ExecContext(ctx, query, id, models.ProductStatusActive)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return r.missingOrSold(ctx, id)
	}
	return nil
}

func (r *ProductRepository) missingOrSold(ctx context.Context, id string) error {
	var status string
	err := r.DB.QueryRowContext(ctx, `SELECT status FROM products WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return err
	}
	if status == models.ProductStatusSold {
		return ErrProductAlreadySold
	}
	return ErrProductNotFound
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var product models.Product
	var soldPrice sql.NullFloat64
	var soldAt sql.NullTime

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Description,
		&product.ImagePath,
		&product.OriginalPrice,
		&product.SellerName,
		&product.Status,
		&product.CreatedAt,
		&soldPrice,
		&soldAt,
	)
	if err != nil {
		return models.Product{}, err
	}
	if soldPrice.Valid {
		product.SoldPrice = &soldPrice.Float64
	}
	if soldAt.Valid {
		product.SoldAt = &soldAt.Time
	}
	return product, nil
}
