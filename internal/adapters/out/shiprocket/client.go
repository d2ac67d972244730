// Package shiprocket implements the carrier gateway against the Shiprocket
// style HTTP API. All calls are JSON over a bearer token; every failure is
// classified into the port's error taxonomy so callers can present the right
// remediation (fix credentials, upgrade plan, or retry later).
package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const (
	loginPath          = "/auth/login"
	addPickupPath      = "/settings/company/addpickup"
	serviceabilityPath = "/courier/serviceability"
	courierListPath    = "/courier/courierListWithCounts"
	createOrderPath    = "/orders/create/adhoc"
	createShipmentPath = "/shipments/create/adhoc"
)

// authFailureMarker appears in carrier error messages when a request was
// rejected for bad credentials even though the status code was not 401.
const authFailureMarker = "unauthorized"

// Client is the HTTP implementation of ports.CarrierGateway. The underlying
// http.Client carries a bounded timeout so a slow carrier cannot stall a
// batch run.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a carrier client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("timeout",
			fmt.Errorf("%s is not a positive duration", timeout))
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Login exchanges the stored credentials for a fresh bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	var resp loginResponse
	status, body, err := c.call(ctx, http.MethodPost, loginPath, "",
		loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", &ports.CarrierAPIError{
			StatusCode: status,
			Message:    "login response carried no token",
			Body:       body,
		}
	}
	return resp.Token, nil
}

// CreateOrder submits the order to the carrier and returns its correlation
// ids. Unit conversions to carrier units happen in the payload builder and
// nowhere else.
func (c *Client) CreateOrder(
	ctx context.Context, token string, req ports.ShipmentRequest,
) (ports.CarrierOrder, error) {
	payload, err := newOrderPayload(req)
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	var resp createOrderResponse
	status, body, err := c.call(ctx, http.MethodPost, createOrderPath, token, payload, &resp)
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	if resp.OrderID == 0 {
		return ports.CarrierOrder{}, &ports.CarrierAPIError{
			StatusCode: status,
			Message:    "create-order response carried no order id",
			Body:       body,
		}
	}

	return ports.CarrierOrder{
		OrderID:    resp.OrderID,
		ShipmentID: resp.ShipmentID,
	}, nil
}

// CreateShipment assigns a courier to an already-created carrier order.
func (c *Client) CreateShipment(
	ctx context.Context, token string, carrierShipmentID, courierID int64,
) (ports.Waybill, error) {
	var resp createShipmentResponse
	_, _, err := c.call(ctx, http.MethodPost, createShipmentPath, token,
		createShipmentRequest{ShipmentID: carrierShipmentID, CourierID: courierID}, &resp)
	if err != nil {
		return ports.Waybill{}, err
	}

	return ports.Waybill{
		AWBCode:           resp.AWBCode,
		CourierName:       resp.CourierName,
		EstimatedDelivery: parseDeliveryDate(resp.ExpectedDeliveryDate),
	}, nil
}

// RegisterPickup registers the seller's pickup location with the carrier.
func (c *Client) RegisterPickup(
	ctx context.Context, token string, pickup *settings.PickupAddress,
) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	_, _, err := c.call(ctx, http.MethodPost, addPickupPath, token,
		newPickupPayload(pickup.Fields()), nil)
	return err
}

// ListCouriers retrieves the carrier's courier companies.
func (c *Client) ListCouriers(ctx context.Context, token string) ([]ports.Courier, error) {
	var resp courierListResponse
	if _, _, err := c.call(ctx, http.MethodGet, courierListPath, token, nil, &resp); err != nil {
		return nil, err
	}

	couriers := make([]ports.Courier, 0, len(resp.CourierData))
	for _, courier := range resp.CourierData {
		couriers = append(couriers, ports.Courier{ID: courier.ID, Name: courier.Name})
	}
	return couriers, nil
}

// CheckServiceability retrieves available couriers and rates for a concrete
// shipment profile.
func (c *Client) CheckServiceability(
	ctx context.Context, token string, query ports.ServiceabilityQuery,
) ([]ports.CourierRate, error) {
	var resp serviceabilityResponse
	_, _, err := c.call(ctx, http.MethodPost, serviceabilityPath, token,
		newServiceabilityPayload(query), &resp)
	if err != nil {
		return nil, err
	}

	rates := make([]ports.CourierRate, 0, len(resp.Data.AvailableCourierCompanies))
	for _, company := range resp.Data.AvailableCourierCompanies {
		rates = append(rates, ports.CourierRate{
			CourierID:     company.CourierCompanyID,
			Name:          company.CourierName,
			Rate:          company.Rate,
			EstimatedDays: company.EstimatedDeliveryDays,
			CODAvailable:  company.COD == 1,
		})
	}
	return rates, nil
}

// call performs one JSON round trip. Non-2xx responses come back as a
// classified error; 2xx responses are decoded into out when it is non-nil.
// The raw body is returned alongside the status for response-shape errors.
func (c *Client) call(
	ctx context.Context, method, path, token string, in, out any,
) (int, string, error) {
	var reqBody io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return 0, "", err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("carrier request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("reading carrier response failed: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, string(body), classifyError(resp.StatusCode, body)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, string(body), &ports.CarrierAPIError{
				StatusCode: resp.StatusCode,
				Message:    "carrier response is not valid JSON",
				Body:       string(body),
			}
		}
	}
	return resp.StatusCode, string(body), nil
}

// classifyError maps a failing carrier response onto the port's error
// taxonomy. 403 means the account plan lacks API access, 401 or an
// auth-failure marker in the message means bad credentials, and everything
// else is a retriable CarrierAPIError with the raw body preserved.
func classifyError(statusCode int, body []byte) error {
	if statusCode == http.StatusForbidden {
		return ports.ErrPermissionDenied
	}
	if statusCode == http.StatusUnauthorized {
		return ports.ErrAuthenticationFailed
	}

	message := errorMessage(body)
	if strings.Contains(strings.ToLower(message), authFailureMarker) {
		return ports.ErrAuthenticationFailed
	}

	return &ports.CarrierAPIError{
		StatusCode: statusCode,
		Message:    message,
		Body:       string(body),
	}
}

func errorMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return "unexpected carrier response"
}

// parseDeliveryDate decodes the carrier's expected delivery date. The field
// arrives in more than one layout and is advisory, so an unparseable value
// degrades to nil rather than failing the waybill.
func parseDeliveryDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}
	return nil
}

var _ ports.CarrierGateway = (*Client)(nil)
