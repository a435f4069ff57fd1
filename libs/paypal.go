package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/newbienorbie/prostore/config"
	"github.com/newbienorbie/prostore/models"
)

// PayPal is a thin client for the PayPal Orders v2 REST API. Tokens are
// requested per call via the client-credentials grant; PayPal caches them
// server side so this stays cheap at storefront volume.
type PayPal struct {
	baseURL    string
	clientID   string
	appSecret  string
	httpClient *http.Client
}

func NewPayPal() *PayPal {
	return &PayPal{
		baseURL:    config.AppConfig.PayPalAPIURL,
		clientID:   config.AppConfig.PayPalClientID,
		appSecret:  config.AppConfig.PayPalAppSecret,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *PayPal) CreateOrder(ctx context.Context, amount string) (string, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return "", err
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": "USD",
					"value":         amount,
				},
			},
		},
	}

	var response struct {
		ID string `json:"id"`
	}
	if err := p.post(ctx, "/v2/checkout/orders", token, payload, &response); err != nil {
		return "", err
	}
	if response.ID == "" {
		return "", fmt.Errorf("paypal returned no order id")
	}
	return response.ID, nil
}

func (p *PayPal) CaptureOrder(ctx context.Context, paypalOrderID string) (*models.PaymentResult, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var response struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Payer  struct {
			EmailAddress string `json:"email_address"`
		} `json:"payer"`
		PurchaseUnits []struct {
			Payments struct {
				Captures []struct {
					Amount struct {
						Value string `json:"value"`
					} `json:"amount"`
				} `json:"captures"`
			} `json:"payments"`
		} `json:"purchase_units"`
	}
	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", url.PathEscape(paypalOrderID))
	if err := p.post(ctx, path, token, struct{}{}, &response); err != nil {
		return nil, err
	}

	pricePaid := "0"
	if len(response.PurchaseUnits) > 0 && len(response.PurchaseUnits[0].Payments.Captures) > 0 {
		pricePaid = response.PurchaseUnits[0].Payments.Captures[0].Amount.Value
	}

	return &models.PaymentResult{
		ID:           response.ID,
		Status:       response.Status,
		EmailAddress: response.Payer.EmailAddress,
		PricePaid:    pricePaid,
	}, nil
}

func (p *PayPal) accessToken(ctx context.Context) (string, error) {
	if p.clientID == "" || p.appSecret == "" {
		return "", fmt.Errorf("paypal credentials not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/oauth2/token", strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.clientID, p.appSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token request failed: %s", resp.Status)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.AccessToken, nil
}

func (p *PayPal) post(ctx context.Context, path, token string, payload, out interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("paypal request to %s failed: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
