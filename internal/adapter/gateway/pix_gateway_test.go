package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/usecase/interfaces"
	mock_interfaces "certificados_xpto/internal/usecase/interfaces/mocks"
)

func TestPixGateway_Process(t *testing.T) {
	req := entities.PaymentRequest{
		ID:          "order-1",
		TotalAmount: 149,
		PayerInfo:   entities.Payer{Name: "Maria", Email: "maria@test.com"},
	}

	t.Run("upstream success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		upstream := mock_interfaces.NewMockIUpstreamClient(ctrl)
		g := NewPixGateway(upstream)

		body := []byte(`{"success":true,"data":{"tid":"tid-123","payment_url":"https://pay.example/tid-123","pix":{"textPayment":"000201...","qrCodeImage":"data:image/png;base64,xxx"}}}`)
		upstream.EXPECT().Post(gomock.Any(), "/transactions/pix", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload interface{}) (interfaces.UpstreamResponse, error) {
				m := payload.(map[string]interface{})
				if m["expiration"] != "86400" {
					t.Fatalf("expected default expiration, got %v", m["expiration"])
				}
				if m["returnQRCode"] != true {
					t.Fatalf("expected returnQRCode true")
				}
				return interfaces.UpstreamResponse{StatusCode: 201, Body: body}, nil
			})

		result, err := g.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.BillingID != "tid-123" {
			t.Fatalf("expected billing id tid-123, got %q", result.BillingID)
		}
		if result.PaymentURL != "https://pay.example/tid-123" {
			t.Fatalf("unexpected payment url %q", result.PaymentURL)
		}
		if result.PixPayload != "000201..." || result.PixQRCode == "" {
			t.Fatalf("pix fields not extracted: %+v", result)
		}
		if result.StatusCode != 201 {
			t.Fatalf("expected status 201, got %d", result.StatusCode)
		}
	})

	t.Run("transport failure falls back to mock payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		upstream := mock_interfaces.NewMockIUpstreamClient(ctrl)
		g := NewPixGateway(upstream)

		upstream.EXPECT().Post(gomock.Any(), "/transactions/pix", gomock.Any()).
			Return(interfaces.UpstreamResponse{}, errors.New("dial tcp: timeout"))

		result, err := g.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("fallback must not error: %v", err)
		}
		if result.BillingID != "mock_order-1" {
			t.Fatalf("expected mock billing id, got %q", result.BillingID)
		}
		if !strings.HasPrefix(result.PixPayload, "000201") {
			t.Fatalf("expected BR-Code payload, got %q", result.PixPayload)
		}
		if !strings.Contains(result.PixPayload, "order-1") {
			t.Fatalf("payload should carry the txid: %q", result.PixPayload)
		}
	})

	t.Run("5xx falls back to mock payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		upstream := mock_interfaces.NewMockIUpstreamClient(ctrl)
		g := NewPixGateway(upstream)

		upstream.EXPECT().Post(gomock.Any(), "/transactions/pix", gomock.Any()).
			Return(interfaces.UpstreamResponse{StatusCode: 503, Body: []byte("bad gateway")}, nil)

		result, err := g.Process(context.Background(), req)
		if err != nil {
			t.Fatalf("fallback must not error: %v", err)
		}
		if !strings.HasPrefix(result.BillingID, "mock_") {
			t.Fatalf("expected mock billing id, got %q", result.BillingID)
		}
		if result.StatusCode != 200 {
			t.Fatalf("mock result should report 200, got %d", result.StatusCode)
		}
	})

	t.Run("4xx surfaces normalized upstream error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		upstream := mock_interfaces.NewMockIUpstreamClient(ctrl)
		g := NewPixGateway(upstream)

		upstream.EXPECT().Post(gomock.Any(), "/transactions/pix", gomock.Any()).
			Return(interfaces.UpstreamResponse{StatusCode: 422, Body: []byte(`{"error":"invalid document","errorCode":"DOC_INVALID"}`)}, nil)

		_, err := g.Process(context.Background(), req)
		var upErr *entities.UpstreamError
		if !errors.As(err, &upErr) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
		if upErr.StatusCode != 422 {
			t.Fatalf("expected status 422, got %d", upErr.StatusCode)
		}
		if upErr.Payload.ErrorCode != "DOC_INVALID" {
			t.Fatalf("expected DOC_INVALID, got %q", upErr.Payload.ErrorCode)
		}
		if upErr.Payload.BillingID != "order-1" {
			t.Fatalf("submitted id must survive the error path, got %q", upErr.Payload.BillingID)
		}
	})

	t.Run("empty id gets generated txid in mock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		upstream := mock_interfaces.NewMockIUpstreamClient(ctrl)
		g := NewPixGateway(upstream)

		upstream.EXPECT().Post(gomock.Any(), "/transactions/pix", gomock.Any()).
			Return(interfaces.UpstreamResponse{StatusCode: 500}, nil)

		result, err := g.Process(context.Background(), entities.PaymentRequest{TotalAmount: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.BillingID == "mock_" || !strings.HasPrefix(result.BillingID, "mock_") {
			t.Fatalf("expected generated mock billing id, got %q", result.BillingID)
		}
	})
}
