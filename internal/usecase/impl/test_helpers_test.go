package impl

import (
	"io"
	"log/slog"

	"coffeeshop/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(defaultLimit, maxLimit int) *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			DefaultLimit: defaultLimit,
			MaxLimit:     maxLimit,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
