package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"major_home/internal/adapter/http/handlers/mocks"
	"major_home/internal/domain/entities"
	"major_home/internal/domain/pricing"
	"major_home/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"service":"roofing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown service mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, pricing.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"service":"landscaping","tier":"better","squareFootage":2000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		now := time.Now().UTC()
		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateQuoteCommand) (entities.Quote, error) {
				if cmd.Input.Service != pricing.ServiceRoofing || cmd.Input.SquareFootage != 2000 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Quote{
					ID:        "q-1",
					LeadID:    "lead-1",
					Service:   pricing.ServiceRoofing,
					Tier:      pricing.TierBetter,
					PriceLow:  14705,
					PriceHigh: 19895,
					Result: pricing.Result{
						Service:      pricing.ServiceRoofing,
						MaterialTier: pricing.TierBetter,
						Unit:         "sq ft",
						Quantity:     2000,
						Breakdown:    pricing.Breakdown{Subtotal: 17300, LowEstimate: 14705, HighEstimate: 19895},
					},
					CreatedAt: now,
				}, nil
			})

		body := `{"lead_id":"lead-1","service":"roofing","tier":"better","squareFootage":2000,"stories":1,"currentCondition":"fair","needsRemoval":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if resp["price_display"] != "$14,705 - $19,895" {
			t.Fatalf("unexpected price display: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", PriceLow: 14705, PriceHigh: 19895, CreatedAt: time.Now().UTC()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListQuotesByLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/v1/leads/:id/quotes", h.ListQuotesByLead)

	uc.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.Quote{{ID: "q-1", LeadID: "lead-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1/quotes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	quotes, ok := resp["quotes"].([]any)
	if !ok || len(quotes) != 1 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(pricing.ErrServiceNotFound); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(pricing.ErrInvalidInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
