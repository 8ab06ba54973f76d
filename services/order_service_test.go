package services

import (
	"testing"
	"time"

	"storefront/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStep = 20 * time.Millisecond

func newOrderFixture(t *testing.T) (*OrderService, *CartService, *NavigationService) {
	t.Helper()
	cart := NewCartService()
	nav := NewNavigationService()
	svc := NewOrderService(cart, nav, testStep)
	nav.OnLeaveTracking = svc.StopTracking
	return svc, cart, nav
}

func place(t *testing.T, svc *OrderService, cart *CartService) *entity.Order {
	t.Helper()
	menu := entity.MenuItem{ID: "m1", RestaurantID: "r1", Price: 1000}
	rest := entity.Restaurant{ID: "r1", DeliveryFee: 399}
	cart.Add(menu, rest, nil)

	order, err := svc.Place(&PlaceOrderIn{Address: "123 Main St"})
	require.NoError(t, err)
	return order
}

func TestPlaceEmptyCartRejected(t *testing.T) {
	svc, _, _ := newOrderFixture(t)
	_, err := svc.Place(&PlaceOrderIn{Address: "123 Main St"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceClearsCartAndNavigates(t *testing.T) {
	svc, cart, nav := newOrderFixture(t)
	order := place(t, svc, cart)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, int64(1000), order.Subtotal)
	assert.Equal(t, int64(399), order.DeliveryFee)
	assert.Equal(t, int64(100), order.Tax)
	assert.Equal(t, int64(1499), order.Total)
	assert.Equal(t, "card", order.PaymentMethod)

	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, ViewOrderTracking, nav.State().View)

	current, tracking, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, order.ID, current.ID)
	assert.Equal(t, entity.StatusPreparing, tracking.Status)
	assert.Equal(t, 0, tracking.Progress)
}

func TestCurrentWithoutOrder(t *testing.T) {
	svc, _, _ := newOrderFixture(t)
	_, _, err := svc.Current()
	assert.ErrorIs(t, err, ErrNoOrder)
}

func TestSimulatorProgressesToDelivered(t *testing.T) {
	svc, cart, _ := newOrderFixture(t)
	place(t, svc, cart)

	assert.Eventually(t, func() bool {
		_, tracking, err := svc.Current()
		return err == nil && tracking.Status == entity.StatusOnTheWay && tracking.Progress == 50
	}, time.Second, time.Millisecond)

	assert.Eventually(t, func() bool {
		_, tracking, err := svc.Current()
		return err == nil && tracking.Status == entity.StatusDelivered && tracking.Progress == 100
	}, time.Second, time.Millisecond)
}

func TestStopCancelsPendingTransitions(t *testing.T) {
	svc, cart, _ := newOrderFixture(t)
	place(t, svc, cart)
	svc.StopTracking()

	time.Sleep(5 * testStep)
	_, tracking, err := svc.Current()
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, tracking.Status)
	assert.Equal(t, 0, tracking.Progress)
}

func TestNavigatingAwayCancelsSimulation(t *testing.T) {
	svc, cart, nav := newOrderFixture(t)
	place(t, svc, cart)
	nav.Navigate(ViewHome, "")

	time.Sleep(5 * testStep)
	_, tracking, err := svc.Current()
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, tracking.Status)
}

func TestSubscribeStreamsTransitions(t *testing.T) {
	svc, cart, _ := newOrderFixture(t)
	place(t, svc, cart)
	ch := svc.Subscribe()
	defer svc.Unsubscribe(ch)

	var seen []string
	deadline := time.After(time.Second)
	for len(seen) == 0 || seen[len(seen)-1] != entity.StatusDelivered {
		select {
		case state := <-ch:
			seen = append(seen, state.Status)
		case <-deadline:
			t.Fatalf("timed out, saw %v", seen)
		}
	}

	assert.Equal(t, entity.StatusPreparing, seen[0])
	assert.Contains(t, seen, entity.StatusOnTheWay)
	assert.Equal(t, entity.StatusDelivered, seen[len(seen)-1])
}

func TestNewOrderReplacesPrevious(t *testing.T) {
	svc, cart, _ := newOrderFixture(t)
	first := place(t, svc, cart)
	second := place(t, svc, cart)
	assert.NotEqual(t, first.ID, second.ID)

	current, tracking, err := svc.Current()
	assert.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, entity.StatusPreparing, tracking.Status)
}
