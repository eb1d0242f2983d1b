package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"certificados_xpto/internal/adapter/http/handlers/mocks"
	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newStatusRouter(uc usecase.IStatusUseCase) *gin.Engine {
	h := NewStatusHandler(uc)
	r := gin.New()
	r.GET("/api/get-payment-status", h.GetPaymentStatus)
	r.POST("/api/webhook", h.Webhook)
	r.POST("/api/force-set-status", h.ForceSetStatus)
	r.GET("/api/list-open-payments", h.ListOpenPayments)
	return r
}

func TestStatusHandler_GetPaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/get-payment-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("billingId parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().GetStatus(gomock.Any(), "b1").Return(entities.StatusPaid)

		req := httptest.NewRequest(http.MethodGet, "/api/get-payment-status?billingId=b1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["billingId"] != "b1" || resp["status"] != "PAID" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("session alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().GetStatus(gomock.Any(), "s1").Return(entities.StatusPending)

		req := httptest.NewRequest(http.MethodGet, "/api/get-payment-status?session=s1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestStatusHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stores and reports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		body := []byte(`{"data":{"tid":"A","billing_id":"B"},"status":"PAID"}`)
		uc.EXPECT().ProcessWebhook(gomock.Any(), body, "application/json", "").
			Return(usecase.WebhookResult{Stored: []string{"A", "B"}, Status: entities.StatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["ok"] != true || resp["status"] != "PAID" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("query billingId forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any(), gomock.Any(), "q-1").
			Return(usecase.WebhookResult{Stored: []string{"q-1"}, Status: entities.StatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/webhook?billingId=q-1", bytes.NewBufferString("opaque"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.WebhookResult{}, errors.New("invalid json payload"))

		req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestStatusHandler_ForceSetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing billing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/force-set-status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("id alias in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().ForceSetStatus(gomock.Any(), "b2", "").Return(entities.StatusPaid, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/force-set-status", bytes.NewBufferString(`{"id":"b2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["billingId"] != "b2" || resp["status"] != "PAID" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("billingId from query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().ForceSetStatus(gomock.Any(), "b3", "EXPIRED").Return(entities.StatusExpired, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/force-set-status?billingId=b3", bytes.NewBufferString(`{"status":"EXPIRED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().ForceSetStatus(gomock.Any(), "b4", gomock.Any()).
			Return(entities.PaymentStatus(""), errors.New("table missing"))

		req := httptest.NewRequest(http.MethodPost, "/api/force-set-status", bytes.NewBufferString(`{"billingId":"b4"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestStatusHandler_ListOpenPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing date range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/list-open-payments?dateInit=2026-01-01+00:00", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().ListOpenPayments(gomock.Any(), "2026-01-01 00:00", "2026-01-31 23:59", "pix", "2").
			Return(usecase.ListOpenResult{
				Total: 2,
				Open:  1,
				OpenTransactions: []entities.OpenTransaction{
					{"tid": "tx-1", "status": "PENDING"},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/list-open-payments?dateInit=2026-01-01+00:00&dateEnd=2026-01-31+23:59&type=pix&index=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["total"] != float64(2) || resp["open"] != float64(1) {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().ListOpenPayments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ListOpenResult{}, usecase.ErrCredentialsNotConfigured)

		req := httptest.NewRequest(http.MethodGet, "/api/list-open-payments?dateInit=a&dateEnd=b", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("upstream error passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := newStatusRouter(uc)

		uc.EXPECT().ListOpenPayments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ListOpenResult{}, &entities.UpstreamError{
				StatusCode: 401,
				Payload:    entities.UpstreamErrorPayload{Error: true, ErrorCode: "HTTP_401"},
			})

		req := httptest.NewRequest(http.MethodGet, "/api/list-open-payments?dateInit=a&dateEnd=b", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
