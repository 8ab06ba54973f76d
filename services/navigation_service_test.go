package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialState(t *testing.T) {
	nav := NewNavigationService()
	state := nav.State()
	assert.Equal(t, ViewHome, state.View)
	assert.Empty(t, state.RestaurantID)
	assert.Empty(t, state.SearchQuery)
}

func TestSelectedRestaurantIsSticky(t *testing.T) {
	nav := NewNavigationService()

	nav.Navigate(ViewRestaurantDetail, "r1")
	nav.Navigate(ViewCart, "")
	nav.Navigate(ViewRestaurantDetail, "")

	state := nav.State()
	assert.Equal(t, ViewRestaurantDetail, state.View)
	assert.Equal(t, "r1", state.RestaurantID)

	// a new id overwrites the old one
	nav.Navigate(ViewRestaurantDetail, "r2")
	assert.Equal(t, "r2", nav.State().RestaurantID)
}

func TestSearchQueryIndependentOfNavigation(t *testing.T) {
	nav := NewNavigationService()
	nav.SetSearch("pizza")
	nav.Navigate(ViewCart, "")
	assert.Equal(t, "pizza", nav.State().SearchQuery)
}

func TestLeaveTrackingHook(t *testing.T) {
	nav := NewNavigationService()
	fired := 0
	nav.OnLeaveTracking = func() { fired++ }

	nav.Navigate(ViewOrderTracking, "")
	assert.Equal(t, 0, fired)

	nav.Navigate(ViewHome, "")
	assert.Equal(t, 1, fired)

	nav.Navigate(ViewCart, "")
	assert.Equal(t, 1, fired)
}

func TestParseView(t *testing.T) {
	for _, name := range []string{"home", "restaurant-detail", "cart", "checkout", "order-tracking"} {
		v, ok := ParseView(name)
		assert.True(t, ok)
		assert.Equal(t, View(name), v)
	}
	_, ok := ParseView("profile")
	assert.False(t, ok)
}
