package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"overlaysnow/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryCols = `id, name, description, image, created_at, updated_at`

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT `+categoryCols+` FROM categories ORDER BY name`)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, bool, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT `+categoryCols+` FROM categories WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, false, nil
	}
	if err != nil {
		return domain.Category{}, false, err
	}
	return c, true, nil
}

func (r *CategoryRepo) Put(c domain.Category) error {
	_, err := r.db.Exec(`
	  INSERT INTO categories(id, name, description, image, created_at, updated_at)
	  VALUES(?,?,?,?,?,?)
	  ON CONFLICT(id) DO UPDATE SET
	    name        = excluded.name,
	    description = excluded.description,
	    image       = excluded.image,
	    updated_at  = excluded.updated_at
	`, c.ID, c.Name, c.Description, c.Image, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CategoryRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
