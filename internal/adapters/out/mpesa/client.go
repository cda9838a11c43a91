// Package mpesa is the outbound HTTP adapter for the mobile-money gateway.
// The gateway fronts the Daraja STK push API: initiation returns a checkout
// request identifier, and settlement is observed by polling payment-status.
package mpesa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/ports"
	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

const defaultTimeout = 15 * time.Second

// GatewayError is a gateway-level rejection: the HTTP exchange succeeded but
// the gateway declined the request. Message carries the gateway's own text
// verbatim so it can be surfaced to the payer unchanged.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway rejected request: %s", e.Message)
}

// Client implements ports.PaymentGateway over the gateway's REST surface.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a gateway client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: baseURL,
	}, nil
}

type stkPushRequestDTO struct {
	ParcelID          string `json:"parcelId"`
	ParcelType        string `json:"parcelType"`
	PhoneNumber       string `json:"phoneNumber"`
	Amount            int    `json:"amount"`
	InitiatedBy       string `json:"initiatedBy"`
	InitiatedByUserID string `json:"initiatedByUserId,omitempty"`
}

type stkPushResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		CheckoutRequestID string `json:"checkoutRequestId"`
	} `json:"data"`
}

type paymentStatusResponseDTO struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type paymentStatusDataDTO struct {
	Status string `json:"status"`
}

// InitiateSTKPush asks the gateway to push a payment prompt to the
// subscriber's phone and returns the checkout request identifier.
func (c *Client) InitiateSTKPush(ctx context.Context, req ports.STKPushRequest) (string, error) {
	dto := stkPushRequestDTO{
		ParcelID:    req.ParcelID.String(),
		ParcelType:  req.ParcelType,
		PhoneNumber: req.Phone.String(),
		Amount:      req.Amount.Amount(),
		InitiatedBy: string(req.InitiatedBy),
	}
	if req.InitiatedByUserID != nil {
		dto.InitiatedByUserID = req.InitiatedByUserID.String()
	}

	body, err := json.Marshal(dto)
	if err != nil {
		return "", fmt.Errorf("marshal stk push request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/mpesa/stk-push", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("build stk push request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("payment gateway returned non-OK status: %s", resp.Status)
	}

	var apiResp stkPushResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode stk push response: %w", err)
	}

	if !apiResp.Success {
		return "", &GatewayError{Message: apiResp.Message}
	}
	if apiResp.Data.CheckoutRequestID == "" {
		return "", fmt.Errorf("payment gateway returned no checkout request id")
	}

	return apiResp.Data.CheckoutRequestID, nil
}

// PaymentStatus queries the resolution of a previously initiated push.
// Unknown status strings are reported as pending so the caller keeps polling
// until its own ceiling applies.
func (c *Client) PaymentStatus(ctx context.Context, checkoutRequestID string) (ports.PaymentStatusResult, error) {
	if checkoutRequestID == "" {
		return ports.PaymentStatusResult{}, errs.NewValueIsRequiredError("checkoutRequestID")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/mpesa/payment-status/"+checkoutRequestID, nil)
	if err != nil {
		return ports.PaymentStatusResult{}, fmt.Errorf("build payment status request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.PaymentStatusResult{}, fmt.Errorf("call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.PaymentStatusResult{}, fmt.Errorf("payment gateway returned non-OK status: %s", resp.Status)
	}

	var apiResp paymentStatusResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return ports.PaymentStatusResult{}, fmt.Errorf("decode payment status response: %w", err)
	}

	if !apiResp.Success {
		return ports.PaymentStatusResult{}, &GatewayError{Message: apiResp.Message}
	}

	var data paymentStatusDataDTO
	if err := json.Unmarshal(apiResp.Data, &data); err != nil {
		return ports.PaymentStatusResult{}, fmt.Errorf("decode payment status data: %w", err)
	}

	result := ports.PaymentStatusResult{
		Message: apiResp.Message,
		Raw:     apiResp.Data,
	}

	switch data.Status {
	case "completed":
		result.Status = ports.GatewayStatusCompleted
	case "failed":
		result.Status = ports.GatewayStatusFailed
	default:
		result.Status = ports.GatewayStatusPending
	}

	return result, nil
}
