package services

import (
	"errors"
	"sync"
	"time"

	"storefront/entity"
	"storefront/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoOrder   = errors.New("no active order")
)

// TrackingState is the simulated order progress shown by the tracking view.
type TrackingState struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type PlaceOrderIn struct {
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=card cash"`
}

// OrderService turns the cart into an order and simulates its delivery:
// preparing (0) -> on-the-way (50) after one step -> delivered (100) after a
// second. Both steps are AfterFunc timers cancelled together on teardown; the
// generation counter keeps a timer that fires during teardown from touching
// the next order's state.
type OrderService struct {
	Cart *CartService
	Nav  *NavigationService
	Step time.Duration

	mu       sync.Mutex
	current  *entity.Order
	tracking TrackingState
	timers   []*time.Timer
	gen      int
	subs     map[chan TrackingState]struct{}
}

func NewOrderService(cart *CartService, nav *NavigationService, step time.Duration) *OrderService {
	return &OrderService{
		Cart: cart,
		Nav:  nav,
		Step: step,
		subs: make(map[chan TrackingState]struct{}),
	}
}

// Place builds the order from the current cart, clears the cart, navigates to
// the tracking view and starts the status simulation. An empty cart is the
// only rejection; the payment method is recorded, never charged.
func (s *OrderService) Place(in *PlaceOrderIn) (*entity.Order, error) {
	items := s.Cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	method := in.PaymentMethod
	if method == "" {
		method = "card"
	}

	sum := Aggregate(items)
	now := time.Now()
	order := &entity.Order{
		ID:                uuid.NewString(),
		Items:             items,
		Restaurant:        items[0].Restaurant,
		Subtotal:          sum.Subtotal,
		DeliveryFee:       sum.DeliveryFee,
		Tax:               sum.Tax,
		Total:             sum.Total,
		PaymentMethod:     method,
		DeliveryAddress:   in.Address,
		OrderTime:         now,
		EstimatedDelivery: now.Add(40 * time.Minute),
	}

	s.Cart.Clear()

	s.mu.Lock()
	s.stopLocked()
	s.current = order
	s.gen++
	gen := s.gen
	s.tracking = TrackingState{Status: entity.StatusPreparing, Progress: 0}
	s.timers = []*time.Timer{
		time.AfterFunc(s.Step, func() { s.advance(gen, entity.StatusOnTheWay, 50) }),
		time.AfterFunc(2*s.Step, func() { s.advance(gen, entity.StatusDelivered, 100) }),
	}
	s.mu.Unlock()

	s.Nav.Navigate(ViewOrderTracking, "")
	logger.Log.Infof("order %s placed: %d lines, total %d", order.ID, len(items), order.Total)
	return order, nil
}

func (s *OrderService) advance(gen int, status string, progress int) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.tracking = TrackingState{Status: status, Progress: progress}
	state := s.tracking
	subs := make([]chan TrackingState, 0, len(s.subs))
	for ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- state:
		default: // slow subscriber, drop rather than block the timer
		}
	}
}

// StopTracking cancels both pending transitions. Called when the tracking
// view is left; a transition that has not fired yet never will.
func (s *OrderService) StopTracking() {
	s.mu.Lock()
	s.stopLocked()
	s.mu.Unlock()
}

func (s *OrderService) stopLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
	s.gen++
}

// Current returns the active order and its simulated state.
func (s *OrderService) Current() (*entity.Order, TrackingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, TrackingState{}, ErrNoOrder
	}
	return s.current, s.tracking, nil
}

// Subscribe registers a status listener. The channel is buffered and receives
// the current state immediately, then every transition until Unsubscribe.
func (s *OrderService) Subscribe() chan TrackingState {
	ch := make(chan TrackingState, 4)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	ch <- s.tracking
	s.mu.Unlock()
	return ch
}

func (s *OrderService) Unsubscribe(ch chan TrackingState) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}
