package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"boutiqueBack/internal/metrics"
	"boutiqueBack/internal/models"
	"boutiqueBack/internal/pricing"
	"boutiqueBack/internal/repositories"
	"boutiqueBack/internal/stats"
)

const defaultSellerName = "Bénévole"

// priceInvalidator drops cached display prices. Satisfied by PriceCache.
type priceInvalidator interface {
	DeletePrices(ctx context.Context, productIDs ...string) error
}

type ProductService struct {
	ProductRepo *repositories.ProductRepository
	Schedule    pricing.Schedule
	Prices      priceInvalidator
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest, imagePath string) (models.Product, error) {
	if !validPrice(req.OriginalPrice) {
		return models.Product{}, models.ErrInvalidPrice
	}

	product := models.Product{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Category:      strings.TrimSpace(req.Category),
		Description:   strings.TrimSpace(req.Description),
		ImagePath:     imagePath,
		OriginalPrice: req.OriginalPrice,
		SellerName:    strings.TrimSpace(req.SellerName),
		Status:        models.ProductStatusActive,
		CreatedAt:     time.Now(),
	}
	if product.SellerName == "" {
		product.SellerName = defaultSellerName
	}
	if product.Category == "" {
		product.Category = stats.DefaultCategory
	}

	created, err := s.ProductRepo.CreateProduct(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	metrics.ProductsListed.Inc()

	created.CurrentPrice = created.OriginalPrice
	return created, nil
}

func (s *ProductService) GetActiveProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.ProductRepo.GetProductsByStatus(ctx, models.ProductStatusActive)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range products {
		s.decorate(&products[i], now)
	}
	return products, nil
}

func (s *ProductService) GetSoldProducts(ctx context.Context) ([]models.Product, error) {
	return s.ProductRepo.GetProductsByStatus(ctx, models.ProductStatusSold)
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	product, err := s.ProductRepo.GetProductByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if product.Status == models.ProductStatusActive {
		s.decorate(&product, time.Now())
	}
	return product, nil
}

// MarkAsSold freezes the solidarity price computed for this instant. The
// repository's guarded UPDATE performs the read-then-commit transition in
// one statement, so no recomputation can slip in between.
func (s *ProductService) MarkAsSold(ctx context.Context, id string) (models.Product, error) {
	product, err := s.ProductRepo.GetProductByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if product.Status != models.ProductStatusActive {
		return models.Product{}, models.ErrProductAlreadySold
	}

	now := time.Now()
	price := s.Schedule.CurrentPrice(product.OriginalPrice, product.CreatedAt, now)
	if err := s.ProductRepo.MarkProductSold(ctx, id, price, now); err != nil {
		return models.Product{}, err
	}
	if s.Prices != nil {
		// Best effort: the cache entry is stale the moment the sale lands.
		s.Prices.DeletePrices(ctx, id)
	}

	product.Status = models.ProductStatusSold
	product.SoldPrice = &price
	product.SoldAt = &now
	metrics.ProductsSold.Inc()
	metrics.RevenueTotal.Add(price)
	return product, nil
}

func (s *ProductService) RemoveProduct(ctx context.Context, id string) error {
	return s.ProductRepo.DeleteProduct(ctx, id)
}

func (s *ProductService) decorate(product *models.Product, now time.Time) {
	product.CurrentPrice = s.Schedule.CurrentPrice(product.OriginalPrice, product.CreatedAt, now)
	product.DayCount = pricing.DayCount(product.CreatedAt, now)
}

func validPrice(price float64) bool {
	return price >= 0 && !math.IsNaN(price) && !math.IsInf(price, 0)
}
