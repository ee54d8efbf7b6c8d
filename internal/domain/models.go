package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	Image       string `db:"image" json:"image,omitempty"`
	CreatedAt   string `db:"created_at" json:"-"`
	UpdatedAt   string `db:"updated_at" json:"-"`
}

type Product struct {
	ID          string          `db:"id" json:"id"`
	CategoryID  string          `db:"category_id" json:"category"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Image       string          `db:"image" json:"image,omitempty"`
	IsNew       bool            `db:"is_new" json:"isNew"`
	IsFeatured  bool            `db:"is_featured" json:"isFeatured"`
	Stock       int             `db:"stock" json:"stock"`
	SalesCount  int             `db:"sales_count" json:"salesCount"`
	CreatedAt   string          `db:"created_at" json:"createdAt"`
	UpdatedAt   string          `db:"updated_at" json:"-"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}

// Availability classifies current stock the way the storefront displays it.
func (p Product) Availability() Availability {
	status := "OUT_OF_STOCK"
	switch {
	case p.Stock >= 5:
		status = "IN_STOCK"
	case p.Stock > 0:
		status = "LOW_STOCK"
	}
	return Availability{Status: status, Qty: p.Stock}
}

// CartLine is one (product, quantity) pairing in a user's cart. A user has at
// most one line per product; adding the same product again merges quantities.
type CartLine struct {
	ID        string `db:"id" json:"id"`
	UserID    string `db:"user_id" json:"-"`
	ProductID string `db:"product_id" json:"productId"`
	Qty       int    `db:"qty" json:"quantity"`
	CreatedAt string `db:"created_at" json:"-"`
	UpdatedAt string `db:"updated_at" json:"-"`
}

// ProductUpdate is the whitelist of admin-patchable product fields. Anything
// not listed here (id, created_at, sales_count) cannot be changed after create.
type ProductUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"category"`
	Image       *string          `json:"image"`
	IsNew       *bool            `json:"isNew"`
	IsFeatured  *bool            `json:"isFeatured"`
	Stock       *int             `json:"stock"`
}

type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}
