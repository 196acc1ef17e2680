package model

import (
	"time"
)

// CoffeeModel is the GORM-specific struct for the 'coffees' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CoffeeModel struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"type:varchar(255);not null"`
	Description     *string `gorm:"type:varchar(255)"`
	Brand           string  `gorm:"type:varchar(255);not null"`
	Recommendations int     `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Flavors []*FlavorModel `gorm:"many2many:coffee_flavors;joinForeignKey:CoffeeID;joinReferences:FlavorID"`
}

// TableName explicitly sets the table name for GORM.
func (CoffeeModel) TableName() string {
	return "coffees"
}

// FlavorModel is the GORM-specific struct for the 'flavors' table.
// The unique index on name backs the insert-or-refetch used when flavors are staged concurrently.
type FlavorModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex:idx_flavors_name"`
}

// TableName explicitly sets the table name for GORM.
func (FlavorModel) TableName() string {
	return "flavors"
}
