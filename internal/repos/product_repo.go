package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"overlaysnow/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, category_id, name, description, price, image,
  is_new, is_featured, stock, sales_count, created_at, updated_at`

// List returns the full catalog in insertion order. The query engine treats
// this ordering as the collection order for tie-breaks.
func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY rowid`)
	return out, err
}

// Get returns (product, true, nil) or (zero, false, nil) when absent.
func (r *ProductRepo) Get(id string) (domain.Product, bool, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, err
	}
	return p, true, nil
}

// Put inserts or fully replaces a product row in one statement, so a
// concurrent reader sees either the old row or the new one, never a mix.
func (r *ProductRepo) Put(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, category_id, name, description, price, image,
	    is_new, is_featured, stock, sales_count, created_at, updated_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?)
	  ON CONFLICT(id) DO UPDATE SET
	    category_id = excluded.category_id,
	    name        = excluded.name,
	    description = excluded.description,
	    price       = excluded.price,
	    image       = excluded.image,
	    is_new      = excluded.is_new,
	    is_featured = excluded.is_featured,
	    stock       = excluded.stock,
	    updated_at  = excluded.updated_at
	`, p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Image,
		p.IsNew, p.IsFeatured, p.Stock, p.SalesCount, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ProductRepo) CountByCategory(catID string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE category_id = ?`, catID)
	return n, err
}

// BestSellers returns products by descending stored sales_count, ties broken
// by insertion order.
func (r *ProductRepo) BestSellers(limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  ORDER BY sales_count DESC, rowid
	  LIMIT ?`, limit)
	return out, err
}
