package domain

type User struct {
	ID        string `db:"id" json:"id"`
	Email     string `db:"email" json:"email"`
	Name      string `db:"name" json:"name"`
	Hash      string `db:"password_hash" json:"-"`
	Role      string `db:"role" json:"role"`
	CreatedAt string `db:"created_at" json:"-"`
}

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
