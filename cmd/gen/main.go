package main

import (
	"coffeeshop/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CoffeeModel{},
		model.FlavorModel{},
		model.EventModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
