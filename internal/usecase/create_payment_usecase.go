package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/usecase/interfaces"
)

var (
	ErrCredentialsNotConfigured = errors.New("api credentials not configured")
	ErrMissingTID               = errors.New("missing tid")
	ErrUpstreamUnreachable      = errors.New("upstream unreachable")
)

// IPaymentUseCase is the payment orchestration entry point: one call per
// inbound payment intent, dispatched to the method adapter.

type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
	ApproveBoleto(ctx context.Context, tid string) (interfaces.UpstreamResponse, error)
}

type PaymentUseCase struct {
	upstream interfaces.IUpstreamClient
	gateways map[entities.PaymentMethod]interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	upstream interfaces.IUpstreamClient,
	pixGateway interfaces.IPaymentGateway,
	boletoGateway interfaces.IPaymentGateway,
	cardGateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{
		upstream: upstream,
		gateways: map[entities.PaymentMethod]interfaces.IPaymentGateway{
			entities.MethodPix:    pixGateway,
			entities.MethodBoleto: boletoGateway,
			entities.MethodCard:   cardGateway,
		},
	}
}

// ResolveMethod normalizes the requested payment method. The frontend has
// sent several spellings over time; anything unrecognized (including an
// absent method) is PIX, the default rail, not an error.
func ResolveMethod(raw string) entities.PaymentMethod {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "BOLETO", "BOLETO_BANCARIO":
		return entities.MethodBoleto
	case "CARD", "CREDIT_CARD", "CARTAO":
		return entities.MethodCard
	default:
		return entities.MethodPix
	}
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	if !u.upstream.Configured() {
		log.Printf("[payment][usecase] credentials not configured id=%s", req.ID)
		return entities.PaymentResult{}, ErrCredentialsNotConfigured
	}

	method := ResolveMethod(string(req.PaymentMethod))
	log.Printf("[payment][usecase] create start id=%s method=%s amount=%.2f", req.ID, method, req.TotalAmount)

	result, err := u.gateways[method].Process(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] create failed id=%s method=%s err=%v", req.ID, method, err)
		return entities.PaymentResult{}, err
	}

	log.Printf("[payment][usecase] create success id=%s method=%s billing_id=%s", req.ID, method, result.BillingID)
	return result, nil
}

// ApproveBoleto relays the sandbox-only approve call; the upstream response
// is passed through untouched.
func (u *PaymentUseCase) ApproveBoleto(ctx context.Context, tid string) (interfaces.UpstreamResponse, error) {
	tid = strings.TrimSpace(tid)
	if tid == "" {
		return interfaces.UpstreamResponse{}, ErrMissingTID
	}
	if !u.upstream.Configured() {
		return interfaces.UpstreamResponse{}, ErrCredentialsNotConfigured
	}

	resp, err := u.upstream.Post(ctx, "/transactions/boleto/"+url.PathEscape(tid)+"/approve", nil)
	if err != nil {
		log.Printf("[payment][usecase] approve-boleto unreachable tid=%s err=%v", tid, err)
		return interfaces.UpstreamResponse{}, ErrUpstreamUnreachable
	}

	log.Printf("[payment][usecase] approve-boleto tid=%s status=%d", tid, resp.StatusCode)
	return resp, nil
}
