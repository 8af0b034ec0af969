package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Client-facing messages. GET and the write routes differ in punctuation.
const (
	msgQuoteNotFoundGet   = "Quote not found."
	msgQuoteNotFound      = "Quote not found"
	msgQuoteFieldsMissing = "Quote and author required."
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /quotes
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) error {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.FromQuotes(quotes))

	return nil
}

// GetQuote handles GET /quotes/:id
//
// @Summary Get a quote by id
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) error {
	id, err := quoteID(c)
	if err != nil {
		return dto.WithMessage(err, msgQuoteNotFoundGet)
	}

	q, err := h.service.GetQuote(c.Request.Context(), id)
	if err != nil {
		return notFoundMessage(err, msgQuoteNotFoundGet)
	}

	c.JSON(http.StatusOK, dto.FromQuote(q))

	return nil
}

// RandomQuote handles GET /quotes/quote/random
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/quote/random [get]
func (h *QuoteHandler) RandomQuote(c *gin.Context) error {
	q, err := h.service.RandomQuote(c.Request.Context())
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.FromQuote(q))

	return nil
}

// CreateQuote handles POST /quotes
//
// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) error {
	var req dto.QuoteRequest
	if err := dto.BindJSON(c, &req); err != nil {
		return err
	}

	q, err := h.service.CreateQuote(c.Request.Context(), req.ToDraft())
	if err != nil {
		if domain.IsValidation(err) {
			return dto.WithMessage(err, msgQuoteFieldsMissing)
		}

		return err
	}

	c.JSON(http.StatusCreated, dto.FromQuote(q))

	return nil
}

// UpdateQuote handles PUT /quotes/:id
// Both fields are overwritten; absent fields become empty.
//
// @Summary Replace a quote
// @Tags quotes
// @Accept json
// @Param id path int true "Quote ID"
// @Param quote body dto.QuoteRequest true "Quote"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) error {
	id, err := quoteID(c)
	if err != nil {
		return dto.WithMessage(err, msgQuoteNotFound)
	}

	var req dto.QuoteRequest
	if err := dto.BindJSON(c, &req); err != nil {
		return err
	}

	if err := h.service.UpdateQuote(c.Request.Context(), id, req.ToDraft()); err != nil {
		return notFoundMessage(err, msgQuoteNotFound)
	}

	c.Status(http.StatusNoContent)

	return nil
}

// DeleteQuote handles DELETE /quotes/:id
//
// @Summary Delete a quote
// @Tags quotes
// @Param id path int true "Quote ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) error {
	id, err := quoteID(c)
	if err != nil {
		return dto.WithMessage(err, msgQuoteNotFound)
	}

	if err := h.service.DeleteQuote(c.Request.Context(), id); err != nil {
		return notFoundMessage(err, msgQuoteNotFound)
	}

	c.Status(http.StatusNoContent)

	return nil
}

// RegisterQuoteRoutes registers quote routes on the given router group.
// The random route is registered before /:id so it is never read as an id.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	{
		quotes.GET("", Handle(h.ListQuotes))
		quotes.POST("", Handle(h.CreateQuote))
		quotes.GET("/quote/random", Handle(h.RandomQuote))
		quotes.GET("/:id", Handle(h.GetQuote))
		quotes.PUT("/:id", Handle(h.UpdateQuote))
		quotes.DELETE("/:id", Handle(h.DeleteQuote))
	}
}

// quoteID parses the :id path parameter. An id that is not a positive
// integer cannot name a stored quote and is reported as not found.
func quoteID(c *gin.Context) (int64, error) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewNotFoundError("quote", raw)
	}

	return id, nil
}

func notFoundMessage(err error, msg string) error {
	if domain.IsNotFound(err) {
		return dto.WithMessage(err, msg)
	}

	return err
}
