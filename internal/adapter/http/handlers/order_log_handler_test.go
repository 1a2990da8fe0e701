package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatorder/internal/adapter/http/handlers/mocks"
	"chatorder/internal/usecase"
	"chatorder/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func setupOrderLogRouter(h *OrderLogHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/orders/guest/:phone", h.ListByGuestPhone)
	return r
}

func TestOrderLogHandler_ListByGuestPhone(t *testing.T) {
	t.Run("invalid phone maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLogUseCase(ctrl)
		r := setupOrderLogRouter(NewOrderLogHandler(uc))

		uc.EXPECT().ListByGuestPhone(gomock.Any(), "abc").Return(nil, usecase.ErrInvalidGuestPhone)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/guest/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Code != "INVALID_GUEST_PHONE" {
			t.Fatalf("expected INVALID_GUEST_PHONE code, got %q", body.Code)
		}
	})

	t.Run("no entries maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLogUseCase(ctrl)
		r := setupOrderLogRouter(NewOrderLogHandler(uc))

		uc.EXPECT().ListByGuestPhone(gomock.Any(), "+237699000000").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/guest/+237699000000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("usecase failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLogUseCase(ctrl)
		r := setupOrderLogRouter(NewOrderLogHandler(uc))

		uc.EXPECT().ListByGuestPhone(gomock.Any(), gomock.Any()).Return(nil, errors.New("index missing"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/guest/+237675123456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success returns the recorded orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLogUseCase(ctrl)
		r := setupOrderLogRouter(NewOrderLogHandler(uc))

		uc.EXPECT().ListByGuestPhone(gomock.Any(), "+237675123456").Return([]interfaces.OrderLogEntry{{
			ID:             "e-1",
			GuestPhone:     "+237675123456",
			GuestName:      "Jean",
			OrderReference: "orderGroups/og-1",
			TotalMinor:     7000,
		}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/guest/+237675123456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body []struct {
			OrderReference string `json:"orderReference"`
			TotalMinor     int64  `json:"totalMinor"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0].OrderReference != "orderGroups/og-1" || body[0].TotalMinor != 7000 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
