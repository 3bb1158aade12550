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
	"major_home/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAppointmentHandler_ScheduleAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.ScheduleAppointment)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.ScheduleAppointment)

		uc.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, usecase.ErrInvalidScheduleRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(`{"name":"Pat"}`))
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
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.ScheduleAppointment)

		now := time.Now().UTC()
		uc.EXPECT().Schedule(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.ScheduleAppointmentCommand) (entities.Appointment, error) {
				if cmd.Name != "Pat" || cmd.PreferredDate != "2026-09-10" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Appointment{
					ID:            "appt-1",
					LeadID:        "lead-1",
					Service:       cmd.Service,
					PreferredDate: cmd.PreferredDate,
					PreferredTime: cmd.PreferredTime,
					Status:        entities.AppointmentStatusPending,
					CreatedAt:     now,
				}, nil
			})

		body := `{"name":"Pat","email":"pat@example.com","service":"windows","preferred_date":"2026-09-10","preferred_time":"morning"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "appt-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAppointmentHandler_GetAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.GET("/v1/appointments/:id", h.GetAppointment)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Appointment{}, usecase.ErrAppointmentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/appointments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.GET("/v1/appointments/:id", h.GetAppointment)

		uc.EXPECT().GetByID(gomock.Any(), "appt-1").Return(entities.Appointment{ID: "appt-1", Status: entities.AppointmentStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/appointments/appt-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapAppointmentError(t *testing.T) {
	if got := mapAppointmentError(usecase.ErrInvalidScheduleRequest); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAppointmentError(usecase.ErrInvalidAppointmentID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAppointmentError(usecase.ErrAppointmentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAppointmentError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
