package handlers

import (
	"github.com/jmoiron/sqlx"

	"overlaysnow/internal/config"
	"overlaysnow/internal/repos"
	"overlaysnow/internal/services"
)

type Deps struct {
	Auth *services.AuthService

	AuthHandler     *AuthHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	userRepo := repos.NewUserRepo(db)

	// One lock set shared by cart mutation and checkout.
	locks := services.NewUserLocks()

	authSvc := services.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo, locks)
	orderSvc := services.NewOrderService(cartRepo, orderRepo, locks)

	return &Deps{
		Auth:            authSvc,
		AuthHandler:     &AuthHandler{Auth: authSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		OrderHandler:    &OrderHandler{Order: orderSvc},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc, Order: orderSvc},
	}
}
