package services_test

import (
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overlaysnow/internal/domain"
	"overlaysnow/internal/repos"
	"overlaysnow/internal/services"
)

type orderFixture struct {
	db      *sqlx.DB
	catalog *services.CatalogService
	cart    *services.CartService
	orders  *services.OrderService
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	db := memdb(t)
	locks := services.NewUserLocks()
	cartRepo := repos.NewCartRepo(db)
	prodRepo := repos.NewProductRepo(db)
	return orderFixture{
		db:      db,
		catalog: services.NewCatalogService(repos.NewCategoryRepo(db), prodRepo),
		cart:    services.NewCartService(cartRepo, prodRepo, locks),
		orders:  services.NewOrderService(cartRepo, repos.NewOrderRepo(db), locks),
	}
}

func (f orderFixture) mustCreateProduct(t *testing.T, name, price string) domain.Product {
	t.Helper()
	p, err := f.catalog.CreateProduct(services.ProductCreate{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: "cat_tshirt",
		Stock:      10,
	})
	require.NoError(t, err)
	return p
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Checkout("u-demo")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	orders, err := f.orders.ListForUser("u-demo")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutSnapshotsPricesAndClearsCart(t *testing.T) {
	f := newOrderFixture(t)
	p1 := f.mustCreateProduct(t, "Ten Dollar Tee", "10.00")
	p2 := f.mustCreateProduct(t, "Five Dollar Tee", "5.00")

	require.NoError(t, f.cart.AddItem("u-demo", p1.ID, 2))
	require.NoError(t, f.cart.AddItem("u-demo", p2.ID, 1))

	o, err := f.orders.Checkout("u-demo")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, o.Status)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("25.00")), "got total %s", o.Total)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Ten Dollar Tee", o.Items[0].ProductName)
	assert.True(t, o.Items[0].LineTotal.Equal(decimal.RequireFromString("20.00")))

	// cart is empty after checkout
	cv, err := f.cart.Get("u-demo")
	require.NoError(t, err)
	assert.Empty(t, cv.Items)

	// later price edits do not touch the snapshot
	newPrice := decimal.RequireFromString("99.00")
	_, err = f.catalog.UpdateProduct(p1.ID, domain.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	got, err := f.orders.Get(o.ID, &domain.User{ID: "u-demo"})
	require.NoError(t, err)
	assert.True(t, got.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, got.Total.Equal(decimal.RequireFromString("25.00")))
}

func TestCheckoutSkipsDanglingLines(t *testing.T) {
	f := newOrderFixture(t)
	p1 := f.mustCreateProduct(t, "Keeper", "10.00")
	p2 := f.mustCreateProduct(t, "Goner", "5.00")

	require.NoError(t, f.cart.AddItem("u-demo", p1.ID, 1))
	require.NoError(t, f.cart.AddItem("u-demo", p2.ID, 4))
	require.NoError(t, f.catalog.DeleteProduct(p2.ID))

	o, err := f.orders.Checkout("u-demo")
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, p1.ID, o.Items[0].ProductID)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("10.00")))
}

func TestCheckoutWithOnlyDanglingLinesIsEmptyCart(t *testing.T) {
	f := newOrderFixture(t)
	p := f.mustCreateProduct(t, "Goner", "5.00")

	require.NoError(t, f.cart.AddItem("u-demo", p.ID, 1))
	require.NoError(t, f.catalog.DeleteProduct(p.ID))

	_, err := f.orders.Checkout("u-demo")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckoutBumpsSalesCounters(t *testing.T) {
	f := newOrderFixture(t)
	p := f.mustCreateProduct(t, "Counter Tee", "10.00")

	require.NoError(t, f.cart.AddItem("u-demo", p.ID, 3))
	_, err := f.orders.Checkout("u-demo")
	require.NoError(t, err)

	got, err := f.catalog.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.SalesCount)

	best, err := f.catalog.BestSellers(1)
	require.NoError(t, err)
	require.Len(t, best, 1)
	assert.Equal(t, p.ID, best[0].ID)
}

func TestConcurrentCheckoutCreatesExactlyOneOrder(t *testing.T) {
	f := newOrderFixture(t)
	p := f.mustCreateProduct(t, "Race Tee", "10.00")
	require.NoError(t, f.cart.AddItem("u-demo", p.ID, 1))

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.orders.Checkout("u-demo")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, domain.ErrEmptyCart)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	orders, err := f.orders.ListForUser("u-demo")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderOwnershipChecks(t *testing.T) {
	f := newOrderFixture(t)
	p := f.mustCreateProduct(t, "Private Tee", "10.00")
	require.NoError(t, f.cart.AddItem("u-demo", p.ID, 1))
	o, err := f.orders.Checkout("u-demo")
	require.NoError(t, err)

	_, err = f.orders.Get(o.ID, &domain.User{ID: "u-other", Role: domain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.orders.Get(o.ID, &domain.User{ID: "u-admin", Role: domain.RoleAdmin})
	assert.NoError(t, err)

	_, err = f.orders.Get("order_missing", &domain.User{ID: "u-demo"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderStatusTransitions(t *testing.T) {
	f := newOrderFixture(t)
	p := f.mustCreateProduct(t, "Status Tee", "10.00")
	require.NoError(t, f.cart.AddItem("u-demo", p.ID, 1))
	o, err := f.orders.Checkout("u-demo")
	require.NoError(t, err)

	// pending -> fulfilled skips paid
	_, err = f.orders.UpdateStatus(o.ID, domain.OrderFulfilled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.orders.UpdateStatus(o.ID, "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := f.orders.UpdateStatus(o.ID, domain.OrderPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, got.Status)

	got, err = f.orders.UpdateStatus(o.ID, domain.OrderFulfilled)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderFulfilled, got.Status)

	// fulfilled is terminal
	_, err = f.orders.UpdateStatus(o.ID, domain.OrderCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
