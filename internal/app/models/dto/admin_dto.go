package dto

import "github.com/setnu/clubportal/internal/pkg/notify"

// ScreenResponse is an admin screen's state after an action, together with
// the notifications the action raised
type ScreenResponse struct {
	Screen        interface{}           `json:"screen"`
	Notifications []notify.Notification `json:"notifications"`
}

// TabsResponse lists the admin tabs available to the caller
type TabsResponse struct {
	Tabs []string `json:"tabs" example:"events,resources,gallery,team,about"`
}
