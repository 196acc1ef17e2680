package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaginationRequest carries the offset/limit query parameters.
type PaginationRequest struct {
	Offset int `query:"offset" validate:"gte=0"`
	Limit  int `query:"limit" validate:"gte=0"`
}

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, strconv.IntSize)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", name)
	}
	if id == 0 {
		return 0, errors.Errorf("invalid %s: must be positive", name)
	}

	return uint(id), nil
}
