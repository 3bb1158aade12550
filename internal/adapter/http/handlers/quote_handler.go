package handlers

import (
	"errors"
	"net/http"

	request "major_home/internal/adapter/http/dto/request"
	response "major_home/internal/adapter/http/dto/response"
	"major_home/internal/domain/pricing"
	"major_home/internal/usecase"
	"major_home/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_PAYLOAD", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for instant quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote runs the pricing engine for a wizard submission and persists
// the result. Required fields are rejected here, before the engine is
// invoked; a failed store still answers with the computed quote.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	input, err := payload.ResolveInput()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Service, tier and square footage are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteCommand{
		LeadID: payload.ResolveLeadID(),
		Input:  input,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote, "Quote created successfully"))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, "Quote retrieved"))
}

func (h *QuoteHandler) ListQuotesByLead(c *gin.Context) {
	quotes, err := h.usecase.ListByLeadID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes, "Quotes retrieved"))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Unknown service", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
