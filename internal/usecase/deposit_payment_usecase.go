package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"dockmaster/internal/domain/entities"
	"dockmaster/internal/domain/pricing"
	"dockmaster/internal/usecase/interfaces"
)

var (
	ErrDepositPaymentNotFound         = errors.New("deposit payment not found")
	ErrInvalidPaymentWorkOrderID      = errors.New("invalid work_order_id")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrWorkOrderNotApproved           = errors.New("work order not approved")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// DepositRate is the booking deposit collected up front on an approved work
// order, as a fraction of the order total.
const DepositRate = 0.20

// IDepositPaymentUseCase encapsulates the "collect booking deposit" behavior.
//
// Requested behavior:
//   - Create an item in the payments table and approve it as paid.

type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, workOrderID string, providerPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo          interfaces.IDepositPaymentRepository
	workOrderRepo interfaces.IWorkOrderRepository
	gateway       interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, workOrderRepo interfaces.IWorkOrderRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, workOrderRepo: workOrderRepo, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, workOrderID string, providerPayload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_work_order_id=%q payload_len=%d", workOrderID, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		log.Printf("[payment][usecase] invalid work_order_id (empty)")
		return entities.DepositPayment{}, ErrInvalidPaymentWorkOrderID
	}
	if len(providerPayload) == 0 {
		if mockMode {
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload (empty) work_order_id=%s", workOrderID)
			return entities.DepositPayment{}, ErrInvalidPaymentPayload
		}
	}
	if !json.Valid(providerPayload) {
		if mockMode {
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload (not-json) work_order_id=%s", workOrderID)
			return entities.DepositPayment{}, ErrInvalidPaymentPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured work_order_id=%s", workOrderID)
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}
	if u.workOrderRepo == nil {
		log.Printf("[payment][usecase] work order repository not configured work_order_id=%s", workOrderID)
		return entities.DepositPayment{}, errors.New("work order repository not configured")
	}

	log.Printf("[payment][usecase] loading work order work_order_id=%s", workOrderID)
	var err error
	wo, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading work order work_order_id=%s err=%v", workOrderID, err)
		return entities.DepositPayment{}, err
	}
	if wo.ID == "" {
		log.Printf("[payment][usecase] work order not found work_order_id=%s", workOrderID)
		return entities.DepositPayment{}, ErrWorkOrderNotFound
	}
	if !mockMode && wo.Status != entities.WorkOrderStatusApproved {
		log.Printf("[payment][usecase] work order not approved work_order_id=%s status=%s", workOrderID, wo.Status)
		return entities.DepositPayment{}, ErrWorkOrderNotApproved
	}
	deposit := pricing.Round2(wo.Total * DepositRate)
	log.Printf("[payment][usecase] work order loaded work_order_id=%s status=%s total=%.2f deposit=%.2f", workOrderID, wo.Status, wo.Total, deposit)

	// Ensure basic linkage with the work order when the caller didn't provide
	// it. Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id work_order_id=%s", workOrderID)
			return entities.DepositPayment{}, ErrInvalidPaymentPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer work_order_id=%s", workOrderID)
			return entities.DepositPayment{}, ErrInvalidPaymentPayload
		}

		log.Printf("[payment][usecase] enriching payload work_order_id=%s", workOrderID)
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = workOrderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Booking deposit for work order %s", workOrderID)
		}

		// The source of truth for amount is the work order in DB.
		reqMap["transaction_amount"] = deposit
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
			log.Printf("[payment][usecase] payload enriched work_order_id=%s payload_len=%d", workOrderID, len(providerPayload))
		}
	} else {
		log.Printf("[payment][usecase] payload unmarshal failed work_order_id=%s err=%v", workOrderID, err)
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway work_order_id=%s", workOrderID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(providerPayload) > 0 && json.Valid(providerPayload) {
			_ = json.Unmarshal(providerPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = workOrderID
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = deposit
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DepositPayment{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[payment][usecase] calling payment gateway work_order_id=%s", workOrderID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed work_order_id=%s err=%v", workOrderID, err)
			if isGatewayCustomerNotFound(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayCustomerNotFound
			}
			if isGatewayInvalidUsers(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayInvalidUsers
			}
			if isGatewayUnauthorized(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.DepositPayment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success work_order_id=%s provider_payment_id=%s provider_status=%s", workOrderID, providerPaymentID, providerStatus)

	status := entities.PaymentStatusApproved

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed work_order_id=%s err=%v", workOrderID, err)
	}

	now := time.Now().UTC()
	p := entities.DepositPayment{
		ID:                 providerPaymentID,
		WorkOrderID:        workOrderID,
		Amount:             deposit,
		Date:               now,
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed work_order_id=%s payment_id=%s err=%v", workOrderID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success work_order_id=%s payment_id=%s status=%s", workOrderID, created.ID, created.Status)
	return created, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.DepositPayment, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidPaymentWorkOrderID
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}
