package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"overlaysnow/internal/domain"
	"overlaysnow/internal/repos"
)

// AuthService is boundary glue: it issues and verifies the bearer tokens the
// rest of the API trusts as the verified user identity.
type AuthService struct {
	Users  *repos.UserRepo
	Secret []byte
	TTL    time.Duration
}

func NewAuthService(users *repos.UserRepo, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, Secret: secret, TTL: ttl}
}

type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(name, email, password string) (string, *domain.User, error) {
	existing, err := s.Users.ByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", nil, err
	}
	u := domain.User{
		ID:        "user_" + uuid.NewString(),
		Email:     email,
		Name:      name,
		Hash:      string(hash),
		Role:      domain.RoleUser,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Users.Create(u); err != nil {
		return "", nil, err
	}

	tok, err := s.issueToken(&u)
	if err != nil {
		return "", nil, err
	}
	return tok, &u, nil
}

func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", nil, domain.ErrUnauthorized
	}

	tok, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

func (s *AuthService) issueToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// VerifyToken validates a bearer token and resolves its subject to a live
// user record; a token for a deleted user no longer authenticates.
func (s *AuthService) VerifyToken(tokenString string) (*domain.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrUnauthorized.WithMessage("unexpected signing method")
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized.WithMessage("invalid or expired token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, domain.ErrUnauthorized.WithMessage("invalid token claims")
	}

	u, err := s.Users.ByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized.WithMessage("unknown user")
	}
	return u, nil
}
