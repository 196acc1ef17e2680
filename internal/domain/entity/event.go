package entity

import (
	"time"

	"coffeeshop/internal/domain/constants"
)

// Event is an append-only audit record of a domain occurrence.
type Event struct {
	ID        uint           `json:"id"`
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewCoffeeRecommendedEvent builds the audit record written when a coffee is recommended.
func NewCoffeeRecommendedEvent(coffeeID uint) *Event {
	return &Event{
		Type: constants.EventTypeCoffee,
		Name: constants.EventNameRecommendedCoffee,
		Payload: map[string]any{
			"coffeeId": coffeeID,
		},
	}
}
