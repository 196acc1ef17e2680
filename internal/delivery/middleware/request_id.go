package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "coffeeshop/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an id, echoes it in the
// X-Request-Id response header and puts an id-scoped logger on the request
// context.
type RequestIDMiddleware struct {
	logger *slog.Logger
	newID  func() string
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger, newID: uuid.NewString}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		id := req.Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(id) {
			id = m.newID()
		}

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)
		c.SetRequest(req.WithContext(deliverycontext.WithRequestScope(req.Context(), id, m.logger)))

		return next(c)
	}
}

// validRequestID reports whether a client supplied id can be trusted in
// logs and headers: non-empty printable ASCII without spaces.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	return strings.IndexFunc(id, func(r rune) bool { return r < '!' || r > '~' }) < 0
}
