package domain

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderPaid, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderFulfilled, false},
		{OrderPaid, OrderFulfilled, true},
		{OrderPaid, OrderCancelled, false},
		{OrderCancelled, OrderPaid, false},
		{OrderFulfilled, OrderPending, false},
		{OrderPending, OrderPending, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderPaid, OrderCancelled, OrderFulfilled} {
		if !ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%s) = false", s)
		}
	}
	if ValidOrderStatus("shipped") {
		t.Error("ValidOrderStatus(shipped) = true")
	}
}

func TestAvailability(t *testing.T) {
	cases := []struct {
		stock int
		want  string
	}{
		{0, "OUT_OF_STOCK"},
		{1, "LOW_STOCK"},
		{4, "LOW_STOCK"},
		{5, "IN_STOCK"},
		{100, "IN_STOCK"},
	}
	for _, tc := range cases {
		p := Product{Stock: tc.stock}
		if got := p.Availability().Status; got != tc.want {
			t.Errorf("stock %d: got %s, want %s", tc.stock, got, tc.want)
		}
	}
}
