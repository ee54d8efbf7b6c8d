package domain

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
	OrderFulfilled OrderStatus = "fulfilled"
)

// transitions holds the legal status moves: pending -> paid|cancelled -> fulfilled.
var transitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPaid, OrderCancelled},
	OrderPaid:      {OrderFulfilled},
	OrderCancelled: {},
	OrderFulfilled: {},
}

func ValidOrderStatus(s OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is an immutable snapshot taken at checkout: line items carry the
// product name and unit price at order time, decoupled from later catalog
// edits. Only Status may change afterwards, via CanTransition.
type Order struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"userId"`
	Total     decimal.Decimal `db:"total" json:"total"`
	Status    OrderStatus     `db:"status" json:"status"`
	CreatedAt string          `db:"created_at" json:"createdAt"`
	Items     []OrderItem     `json:"lineItems,omitempty"`
}

type OrderItem struct {
	OrderID     string          `db:"order_id" json:"-"`
	ProductID   string          `db:"product_id" json:"productId"`
	ProductName string          `db:"product_name" json:"productName"`
	Qty         int             `db:"qty" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unitPrice"`
	LineTotal   decimal.Decimal `db:"line_total" json:"lineTotal"`
}
