package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"overlaysnow/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// PricedLine is a cart line joined with live product data. The inner join
// drops lines whose product no longer exists; that is the soft-reference
// policy, not an accident.
type PricedLine struct {
	LineID    string          `db:"line_id"`
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	Image     string          `db:"image"`
	Price     decimal.Decimal `db:"price"`
	Qty       int             `db:"qty"`
}

func (r *CartRepo) PricedLines(userID string) ([]PricedLine, error) {
	var out []PricedLine
	err := r.db.Select(&out, `
	  SELECT cl.id AS line_id, cl.product_id, p.name, p.image, p.price, cl.qty
	  FROM cart_lines cl JOIN products p ON p.id = cl.product_id
	  WHERE cl.user_id = ?
	  ORDER BY cl.rowid
	`, userID)
	return out, err
}

// Lines returns all raw lines for a user, dangling ones included.
func (r *CartRepo) Lines(userID string) ([]domain.CartLine, error) {
	var out []domain.CartLine
	err := r.db.Select(&out, `
	  SELECT id, user_id, product_id, qty, created_at, updated_at
	  FROM cart_lines WHERE user_id = ? ORDER BY rowid
	`, userID)
	return out, err
}

func (r *CartRepo) GetLine(lineID string) (domain.CartLine, bool, error) {
	var l domain.CartLine
	err := r.db.Get(&l, `
	  SELECT id, user_id, product_id, qty, created_at, updated_at
	  FROM cart_lines WHERE id = ?
	`, lineID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CartLine{}, false, nil
	}
	if err != nil {
		return domain.CartLine{}, false, err
	}
	return l, true, nil
}

// UpsertLine merges qty into an existing (user, product) line or creates one.
// The UNIQUE(user_id, product_id) constraint guarantees a single line per pair.
func (r *CartRepo) UpsertLine(lineID, userID, productID string, qty int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.Exec(`
	  INSERT INTO cart_lines(id, user_id, product_id, qty, created_at, updated_at)
	  VALUES(?,?,?,?,?,?)
	  ON CONFLICT(user_id, product_id) DO UPDATE
	  SET qty = cart_lines.qty + excluded.qty, updated_at = excluded.updated_at
	`, lineID, userID, productID, qty, now, now)
	return err
}

func (r *CartRepo) UpdateQty(lineID string, qty int) error {
	_, err := r.db.Exec(`
	  UPDATE cart_lines SET qty = ?, updated_at = ? WHERE id = ?
	`, qty, time.Now().UTC().Format(time.RFC3339), lineID)
	return err
}

func (r *CartRepo) DeleteLine(lineID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_lines WHERE id = ?`, lineID)
	return err
}

func (r *CartRepo) ClearUser(userID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_lines WHERE user_id = ?`, userID)
	return err
}
