package services

import "sync"

type View string

const (
	ViewHome             View = "home"
	ViewRestaurantDetail View = "restaurant-detail"
	ViewCart             View = "cart"
	ViewCheckout         View = "checkout"
	ViewOrderTracking    View = "order-tracking"
)

func ParseView(s string) (View, bool) {
	switch v := View(s); v {
	case ViewHome, ViewRestaurantDetail, ViewCart, ViewCheckout, ViewOrderTracking:
		return v, true
	default:
		return "", false
	}
}

type NavState struct {
	View         View   `json:"view"`
	RestaurantID string `json:"restaurantId"`
	SearchQuery  string `json:"searchQuery"`
}

// NavigationService holds the current view and its render context. No
// transition is rejected: any known view can follow any other, including
// checkout on an empty cart. The selected restaurant id is sticky — it
// survives navigation until a later transition supplies a new one.
type NavigationService struct {
	mu    sync.Mutex
	state NavState

	// OnLeaveTracking fires when a transition exits order-tracking, so the
	// pending status simulation can be cancelled. Set once at wiring time.
	OnLeaveTracking func()
}

func NewNavigationService() *NavigationService {
	return &NavigationService{state: NavState{View: ViewHome}}
}

func (s *NavigationService) Navigate(target View, restaurantID string) {
	s.mu.Lock()
	prev := s.state.View
	s.state.View = target
	if restaurantID != "" {
		s.state.RestaurantID = restaurantID
	}
	hook := s.OnLeaveTracking
	s.mu.Unlock()

	if hook != nil && prev == ViewOrderTracking && target != ViewOrderTracking {
		hook()
	}
}

// SetSearch stores the home search query. It is set independently of
// navigation and only the home view renders it.
func (s *NavigationService) SetSearch(q string) {
	s.mu.Lock()
	s.state.SearchQuery = q
	s.mu.Unlock()
}

func (s *NavigationService) State() NavState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
