package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// ErrPanic marks an error recorded for a recovered panic.
var ErrPanic = errors.New("panic recovered")

// Recovery returns middleware that recovers from panics.
// On panic it logs the value with the stack trace at ERROR level, then
// records a fault on the context and aborts. ErrorResponder, registered
// outside it, renders the 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			//nolint:errorlint // r is whatever was passed to panic
			if r == http.ErrAbortHandler {
				panic(r)
			}

			logging.FromContext(c.Request.Context()).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
			)

			err := fmt.Errorf("%w: %v", ErrPanic, r)
			_ = c.Error(dto.WithMessage(err, "an internal error occurred"))
			c.Abort()
		}()

		c.Next()
	}
}
