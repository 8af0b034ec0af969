package dto

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ErrBinding indicates the request body could not be decoded.
var ErrBinding = errors.New("binding failed")

// BindJSON decodes the JSON body into v. A missing body leaves v at its zero
// value so that presence checks, not the decoder, decide what is required.
func BindJSON(c *gin.Context, v any) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}

	err := c.ShouldBindWith(v, binding.JSON)

	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}
}
