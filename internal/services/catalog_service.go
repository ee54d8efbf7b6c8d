package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"overlaysnow/internal/domain"
	"overlaysnow/internal/query"
	"overlaysnow/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) GetCategory(id string) (domain.Category, error) {
	c, ok, err := s.Cats.Get(id)
	if err != nil {
		return domain.Category{}, err
	}
	if !ok {
		return domain.Category{}, domain.ErrNotFound.WithMessage("category not found")
	}
	return c, nil
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	p, ok, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	if !ok {
		return domain.Product{}, domain.ErrNotFound.WithMessage("product not found")
	}
	return p, nil
}

// Products runs the query engine over a fresh catalog snapshot.
func (s *CatalogService) Products(p query.Params) (query.Result, error) {
	all, err := s.Prods.List()
	if err != nil {
		return query.Result{}, err
	}
	return query.Run(all, p), nil
}

func (s *CatalogService) BestSellers(limit int) ([]domain.Product, error) {
	return s.Prods.BestSellers(limit)
}

type ProductCreate struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category"`
	Image       string          `json:"image"`
	IsNew       bool            `json:"isNew"`
	IsFeatured  bool            `json:"isFeatured"`
	Stock       int             `json:"stock"`
}

func (s *CatalogService) CreateProduct(in ProductCreate) (domain.Product, error) {
	if in.Name == "" {
		return domain.Product{}, domain.ErrInvalidInput.WithMessage("product name is required")
	}
	if in.Price.IsNegative() {
		return domain.Product{}, domain.ErrInvalidInput.WithMessage("price must be non-negative")
	}
	if _, ok, err := s.Cats.Get(in.CategoryID); err != nil {
		return domain.Product{}, err
	} else if !ok {
		return domain.Product{}, domain.ErrInvalidInput.WithMessage("category does not exist")
	}
	if in.Stock < 0 {
		return domain.Product{}, domain.ErrInvalidInput.WithMessage("stock must be non-negative")
	}

	p := domain.Product{
		ID:          "prod_" + uuid.NewString(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		IsNew:       in.IsNew,
		IsFeatured:  in.IsFeatured,
		Stock:       in.Stock,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Prods.Put(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// UpdateProduct patches only the whitelisted fields; created_at and the sales
// counter are immutable from the admin surface.
func (s *CatalogService) UpdateProduct(id string, patch domain.ProductUpdate) (domain.Product, error) {
	p, ok, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	if !ok {
		return domain.Product{}, domain.ErrNotFound.WithMessage("product not found")
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return domain.Product{}, domain.ErrInvalidInput.WithMessage("product name cannot be empty")
		}
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return domain.Product{}, domain.ErrInvalidInput.WithMessage("price must be non-negative")
		}
		p.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		if _, ok, err := s.Cats.Get(*patch.CategoryID); err != nil {
			return domain.Product{}, err
		} else if !ok {
			return domain.Product{}, domain.ErrInvalidInput.WithMessage("category does not exist")
		}
		p.CategoryID = *patch.CategoryID
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.IsNew != nil {
		p.IsNew = *patch.IsNew
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			return domain.Product{}, domain.ErrInvalidInput.WithMessage("stock must be non-negative")
		}
		p.Stock = *patch.Stock
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.Prods.Put(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// DeleteProduct removes the product. Cart lines referencing it are left in
// place and dropped lazily by cart views (soft-reference policy).
func (s *CatalogService) DeleteProduct(id string) error {
	ok, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound.WithMessage("product not found")
	}
	return nil
}

type CategoryCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (s *CatalogService) CreateCategory(in CategoryCreate) (domain.Category, error) {
	if in.Name == "" {
		return domain.Category{}, domain.ErrInvalidInput.WithMessage("category name is required")
	}
	c := domain.Category{
		ID:          "cat_" + uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Cats.Put(c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(id string, patch domain.CategoryUpdate) (domain.Category, error) {
	c, ok, err := s.Cats.Get(id)
	if err != nil {
		return domain.Category{}, err
	}
	if !ok {
		return domain.Category{}, domain.ErrNotFound.WithMessage("category not found")
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return domain.Category{}, domain.ErrInvalidInput.WithMessage("category name cannot be empty")
		}
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Image != nil {
		c.Image = *patch.Image
	}
	c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.Cats.Put(c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

// DeleteCategory refuses while products still reference the category.
func (s *CatalogService) DeleteCategory(id string) error {
	n, err := s.Prods.CountByCategory(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrInvalidInput.WithMessage("category still has products")
	}
	ok, err := s.Cats.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound.WithMessage("category not found")
	}
	return nil
}
