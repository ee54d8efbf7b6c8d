package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"overlaysnow/internal/domain"
	"overlaysnow/internal/repos"
)

type OrderService struct {
	Carts  *repos.CartRepo
	Orders *repos.OrderRepo
	Locks  *UserLocks
}

func NewOrderService(carts *repos.CartRepo, orders *repos.OrderRepo, locks *UserLocks) *OrderService {
	return &OrderService{Carts: carts, Orders: orders, Locks: locks}
}

// Checkout converts the user's cart into an immutable pending order. The
// user's cart lock makes the read-price-persist-clear sequence exclusive: a
// concurrent checkout for the same user serializes behind it and then sees an
// empty cart. Lines whose product no longer resolves are skipped, mirroring
// the cart view's soft-reference policy.
func (s *OrderService) Checkout(userID string) (domain.Order, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	priced, err := s.Carts.PricedLines(userID)
	if err != nil {
		return domain.Order{}, err
	}
	if len(priced) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	orderID := "order_" + uuid.NewString()
	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(priced))
	for _, l := range priced {
		lineTotal := l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
		items = append(items, domain.OrderItem{
			OrderID:     orderID,
			ProductID:   l.ProductID,
			ProductName: l.Name,
			Qty:         l.Qty,
			UnitPrice:   l.Price,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal)
	}

	o := domain.Order{
		ID:        orderID,
		UserID:    userID,
		Total:     total,
		Status:    domain.OrderPending,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Items:     items,
	}

	// Order insert and cart clear commit as one unit; on failure the cart
	// is untouched and no order exists.
	if err := s.Orders.CreateAndClearCart(o); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// Get enforces ownership: callers see their own orders, admins see all.
func (s *OrderService) Get(orderID string, caller *domain.User) (domain.Order, error) {
	o, ok, err := s.Orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if !ok {
		return domain.Order{}, domain.ErrNotFound.WithMessage("order not found")
	}
	if o.UserID != caller.ID && !caller.IsAdmin() {
		return domain.Order{}, domain.ErrForbidden.WithMessage("order belongs to another user")
	}
	return o, nil
}

func (s *OrderService) ListForUser(userID string) ([]domain.Order, error) {
	return s.Orders.ListByUser(userID)
}

func (s *OrderService) ListAll(limit int) ([]domain.Order, error) {
	return s.Orders.ListLatest(limit)
}

// UpdateStatus applies a privileged status transition, validated against the
// finite state machine. The compare-and-set retries once on a concurrent move
// so the caller gets INVALID_TRANSITION rather than a spurious success.
func (s *OrderService) UpdateStatus(orderID string, to domain.OrderStatus) (domain.Order, error) {
	if !domain.ValidOrderStatus(to) {
		return domain.Order{}, domain.ErrInvalidTransition.WithMessage("unknown order status")
	}

	for attempt := 0; attempt < 2; attempt++ {
		o, ok, err := s.Orders.Get(orderID)
		if err != nil {
			return domain.Order{}, err
		}
		if !ok {
			return domain.Order{}, domain.ErrNotFound.WithMessage("order not found")
		}
		if !domain.CanTransition(o.Status, to) {
			return domain.Order{}, domain.ErrInvalidTransition.WithMessage(
				"cannot move order from " + string(o.Status) + " to " + string(to))
		}
		applied, err := s.Orders.UpdateStatusFrom(orderID, o.Status, to)
		if err != nil {
			return domain.Order{}, err
		}
		if applied {
			o.Status = to
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrInvalidTransition.WithMessage("order status changed concurrently")
}
