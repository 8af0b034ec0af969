package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// ErrorResponder returns the terminal error middleware. After the rest of
// the chain has run it renders the last error recorded with c.Error, unless
// a response has already been written.
//
// It is the only place that turns errors into JSON, so every route that
// records its error with c.Error gets the same envelope and status mapping.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		status, _ := dto.MapError(last.Err)

		if status >= http.StatusInternalServerError {
			logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
				slog.Int("status", status),
				slog.String("error", last.Err.Error()),
			)
		}

		dto.HandleError(c, last.Err)
	}
}
