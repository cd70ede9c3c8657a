package view

import "taskapp/internal/client"

type BadgeState string

const (
	BadgeHealthy   BadgeState = "healthy"
	BadgeUnhealthy BadgeState = "unhealthy"
	BadgeUnknown   BadgeState = "unknown"
)

// Badge is the rendered health indicator.
type Badge struct {
	State   BadgeState
	Tooltip string
}

// HealthBadge maps a health probe result to a badge. A nil health (probe
// never ran or transport failed) yields the unknown state.
func HealthBadge(h *client.Health) Badge {
	if h == nil {
		return Badge{State: BadgeUnknown, Tooltip: "API status unknown"}
	}
	if h.Status == "healthy" {
		return Badge{State: BadgeHealthy, Tooltip: "API healthy"}
	}
	return Badge{State: BadgeUnhealthy, Tooltip: "API " + h.Status}
}
