// Package handlers contains the HTTP handlers of the quotes service.
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerFunc is a gin handler that reports failure by returning an error
// instead of writing a response.
type HandlerFunc func(c *gin.Context) error

// Handle adapts fn to gin. A returned error is recorded on the context and
// the chain is aborted; middleware.ErrorResponder turns it into a response.
// Handlers therefore write success responses only.
func Handle(fn HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}
