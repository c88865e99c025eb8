package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sciencekitconnect/storefront/internal/models"
)

// ErrNotFound is returned when a requested record does not exist so HTTP
// handlers can respond with 404.
var ErrNotFound = errors.New("record not found")

// Store is the in-memory product and category collection. It is seeded once by
// New and immutable afterwards, so concurrent reads need no locking. Handlers
// receive a *Store explicitly; there is no package-level instance.
type Store struct {
	products   map[string]models.Product
	categories map[string]models.Category

	// insertion order, which is also the order every read returns
	productOrder  []string
	categoryOrder []string
}

// New builds a store seeded with the embedded catalog data.
func New() *Store {
	return NewWithData(SeedCategories(), SeedProducts())
}

// NewWithData builds a store seeded with the given records. Seeding assigns a
// fresh id to every record; after that the store never mutates.
func NewWithData(categories []models.Category, products []models.Product) *Store {
	s := &Store{
		products:   make(map[string]models.Product),
		categories: make(map[string]models.Category),
	}
	for _, c := range categories {
		s.addCategory(c)
	}
	for _, p := range products {
		s.addProduct(p)
	}
	return s
}

// addProduct assigns a fresh id and inserts the record. Only called during
// seeding.
func (s *Store) addProduct(p models.Product) models.Product {
	p.ID = uuid.NewString()
	s.products[p.ID] = p
	s.productOrder = append(s.productOrder, p.ID)
	return p
}

// addCategory assigns a fresh id and inserts the record. Only called during
// seeding.
func (s *Store) addCategory(c models.Category) models.Category {
	c.ID = uuid.NewString()
	s.categories[c.ID] = c
	s.categoryOrder = append(s.categoryOrder, c.ID)
	return c
}

// Products returns every product in store order.
func (s *Store) Products() []models.Product {
	out := make([]models.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id])
	}
	return out
}

// Product returns a single product or ErrNotFound.
func (s *Store) Product(id string) (models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// ProductsByCategory matches the category field exactly, ignoring case.
func (s *Store) ProductsByCategory(category string) []models.Product {
	out := []models.Product{}
	for _, id := range s.productOrder {
		p := s.products[id]
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedProducts returns every product with the featured flag set.
func (s *Store) FeaturedProducts() []models.Product {
	out := []models.Product{}
	for _, id := range s.productOrder {
		if p := s.products[id]; p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts does a case-insensitive substring match against name,
// description and category.
func (s *Store) SearchProducts(term string) []models.Product {
	needle := strings.ToLower(term)
	out := []models.Product{}
	for _, id := range s.productOrder {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns every category in store order.
func (s *Store) Categories() []models.Category {
	out := make([]models.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		out = append(out, s.categories[id])
	}
	return out
}

// Category returns a single category or ErrNotFound.
func (s *Store) Category(id string) (models.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrNotFound
	}
	return c, nil
}
