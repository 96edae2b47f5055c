package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"boutiqueBack/internal/models"
)

// productQuoter resolves a product together with its current solidarity
// price. Satisfied by ProductService.
type productQuoter interface {
	GetProductByID(ctx context.Context, id string) (models.Product, error)
}

// CartService keeps shopper carts in memory for the lifetime of the
// process. Lines snapshot the price at the moment of addition; later decay
// never touches them.
type CartService struct {
	Products productQuoter

	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartService(products productQuoter) *CartService {
	return &CartService{
		Products: products,
		carts:    make(map[string]*models.Cart),
	}
}

func (s *CartService) CreateCart() models.Cart {
	cart := models.Cart{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.carts[cart.ID] = &cart
	s.mu.Unlock()

	return cart
}

func (s *CartService) GetCart(id string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[id]
	if !ok {
		return models.Cart{}, models.ErrCartNotFound
	}
	return snapshot(cart), nil
}

func (s *CartService) AddProduct(ctx context.Context, cartID, productID string) (models.Cart, error) {
	product, err := s.Products.GetProductByID(ctx, productID)
	if err != nil {
		return models.Cart{}, err
	}
	if product.Status != models.ProductStatusActive {
		return models.Cart{}, models.ErrProductAlreadySold
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return models.Cart{}, models.ErrCartNotFound
	}
	for _, line := range cart.Lines {
		if line.ProductID == productID {
			return snapshot(cart), nil
		}
	}

	cart.Lines = append(cart.Lines, models.CartLine{
		ProductID:       product.ID,
		Name:            product.Name,
		Category:        product.Category,
		ImagePath:       product.ImagePath,
		PriceAtAddition: product.CurrentPrice,
		AddedAt:         time.Now(),
	})
	return snapshot(cart), nil
}

func (s *CartService) RemoveLine(cartID, productID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return models.Cart{}, models.ErrCartNotFound
	}

	lines := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.ProductID != productID {
			lines = append(lines, line)
		}
	}
	cart.Lines = lines
	return snapshot(cart), nil
}

func (s *CartService) ClearCart(id string) {
	s.mu.Lock()
	delete(s.carts, id)
	s.mu.Unlock()
}

func snapshot(cart *models.Cart) models.Cart {
	copied := *cart
	copied.Lines = append([]models.CartLine(nil), cart.Lines...)
	return copied
}
