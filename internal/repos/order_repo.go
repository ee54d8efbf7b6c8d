package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"overlaysnow/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateAndClearCart persists the order header and line items, bumps each
// product's sales counter, and clears the user's cart lines in a single
// transaction. If anything fails, the cart is left untouched.
func (r *OrderRepo) CreateAndClearCart(o domain.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, total, status, created_at)
	  VALUES(?,?,?,?,?)
	`, o.ID, o.UserID, o.Total, o.Status, o.CreatedAt); err != nil {
		return err
	}

	for _, it := range o.Items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_id, product_name, qty, unit_price, line_total)
		  VALUES(?,?,?,?,?,?)
		`, o.ID, it.ProductID, it.ProductName, it.Qty, it.UnitPrice, it.LineTotal); err != nil {
			return err
		}
		if _, err := tx.Exec(`
		  UPDATE products SET sales_count = sales_count + ? WHERE id = ?
		`, it.Qty, it.ProductID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`DELETE FROM cart_lines WHERE user_id = ?`, o.UserID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *OrderRepo) Get(orderID string) (domain.Order, bool, error) {
	var o domain.Order
	err := r.db.Get(&o, `
	  SELECT id, user_id, total, status, created_at FROM orders WHERE id = ?
	`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, err
	}

	if err := r.db.Select(&o.Items, `
	  SELECT order_id, product_id, product_name, qty, unit_price, line_total
	  FROM order_items WHERE order_id = ? ORDER BY rowid
	`, orderID); err != nil {
		return domain.Order{}, false, err
	}
	return o, true, nil
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id, user_id, total, status, created_at
	  FROM orders WHERE user_id = ?
	  ORDER BY created_at DESC, rowid DESC
	`, userID)
	return out, err
}

func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id, user_id, total, status, created_at
	  FROM orders
	  ORDER BY created_at DESC, rowid DESC
	  LIMIT ?`, limit)
	return out, err
}

// UpdateStatusFrom applies the transition only if the order is still in the
// expected current status; returns false when the compare-and-set misses.
func (r *OrderRepo) UpdateStatusFrom(orderID string, from, to domain.OrderStatus) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE orders SET status = ? WHERE id = ? AND status = ?
	`, to, orderID, from)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
