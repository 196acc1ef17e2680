// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Coffee is a product record with its flavor tags.
type Coffee struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	Brand           string    `json:"brand"`
	Recommendations int       `json:"recommendations"` // Only grows through a recommendation.
	Flavors         []*Flavor `json:"flavors"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FlavorNames returns the names of the attached flavors in order.
func (c *Coffee) FlavorNames() []string {
	names := make([]string, 0, len(c.Flavors))
	for _, flavor := range c.Flavors {
		names = append(names, flavor.Name)
	}

	return names
}
