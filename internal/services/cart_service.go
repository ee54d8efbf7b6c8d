package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"overlaysnow/internal/domain"
	"overlaysnow/internal/repos"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
	Locks *UserLocks
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo, locks *UserLocks) *CartService {
	return &CartService{Carts: carts, Prods: prods, Locks: locks}
}

type CartItemView struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Items     []CartItemView  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// Get returns the cart joined with live product data. Lines whose product no
// longer resolves are silently absent from the view and from the totals.
func (s *CartService) Get(userID string) (CartView, error) {
	rows, err := s.Carts.PricedLines(userID)
	if err != nil {
		return CartView{}, err
	}

	view := CartView{Items: make([]CartItemView, 0, len(rows)), Total: decimal.Zero}
	for _, r := range rows {
		sub := r.Price.Mul(decimal.NewFromInt(int64(r.Qty)))
		view.Items = append(view.Items, CartItemView{
			ID:        r.LineID,
			ProductID: r.ProductID,
			Name:      r.Name,
			Image:     r.Image,
			UnitPrice: r.Price,
			Quantity:  r.Qty,
			Subtotal:  sub,
		})
		view.Total = view.Total.Add(sub)
		view.ItemCount += r.Qty
	}
	return view, nil
}

// AddItem merges qty into the user's line for the product, creating the line
// if needed. Quantities below 1 are rejected, not clamped.
func (s *CartService) AddItem(userID, productID string, qty int) error {
	if qty < 1 {
		return domain.ErrInvalidInput.WithMessage("quantity must be at least 1")
	}
	if _, ok, err := s.Prods.Get(productID); err != nil {
		return err
	} else if !ok {
		return domain.ErrNotFound.WithMessage("product not found")
	}

	unlock := s.Locks.Lock(userID)
	defer unlock()

	return s.Carts.UpsertLine("line_"+uuid.NewString(), userID, productID, qty)
}

// UpdateItem sets a line's quantity, clamped to a minimum of 1. A zero
// quantity never deletes; RemoveItem is the only way to drop a line.
func (s *CartService) UpdateItem(userID, lineID string, qty int) error {
	if qty < 1 {
		qty = 1
	}

	unlock := s.Locks.Lock(userID)
	defer unlock()

	line, ok, err := s.Carts.GetLine(lineID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound.WithMessage("cart item not found")
	}
	if line.UserID != userID {
		return domain.ErrForbidden.WithMessage("cart item belongs to another user")
	}
	return s.Carts.UpdateQty(lineID, qty)
}

func (s *CartService) RemoveItem(userID, lineID string) error {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	line, ok, err := s.Carts.GetLine(lineID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound.WithMessage("cart item not found")
	}
	if line.UserID != userID {
		return domain.ErrForbidden.WithMessage("cart item belongs to another user")
	}
	return s.Carts.DeleteLine(lineID)
}

func (s *CartService) Clear(userID string) error {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	return s.Carts.ClearUser(userID)
}
