// Package stripeapi is a minimal form-encoded client for the Stripe REST
// API, covering only customers, checkout sessions and webhook signature
// verification.
package stripeapi

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sozhane/backend/config"
)

const defaultBaseURL = "https://api.stripe.com"

// placeholderKey ships in example configs and means "not configured".
const placeholderKey = "sk_test_xxxxx"

type Client struct {
	BaseURL       string
	SecretKey     string
	WebhookSecret string
	Client        *http.Client
}

func NewClient(cfg *config.StripeConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL:       baseURL,
		SecretKey:     cfg.SecretKey,
		WebhookSecret: cfg.WebhookSecret,
		Client:        &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether a usable secret key is present.
func (c *Client) Configured() bool {
	return c.SecretKey != "" && c.SecretKey != placeholderKey
}

type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type customerList struct {
	Data []Customer `json:"data"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// FindOrCreateCustomer looks a customer up by email and creates one when
// absent, so repeat buyers keep a single Stripe record.
func (c *Client) FindOrCreateCustomer(ctx context.Context, email, name string) (*Customer, error) {
	query := url.Values{"email": {email}, "limit": {"1"}}
	var list customerList
	if err := c.call(ctx, http.MethodGet, "/v1/customers?"+query.Encode(), nil, &list); err != nil {
		return nil, err
	}
	if len(list.Data) > 0 {
		return &list.Data[0], nil
	}

	form := url.Values{"email": {email}, "name": {name}}
	var customer Customer
	if err := c.call(ctx, http.MethodPost, "/v1/customers", form, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

type CheckoutParams struct {
	CustomerID  string
	PriceID     string // when empty, inline price_data is sent instead
	ProductName string
	AmountTRY   int64 // kuruş
	Recurring   bool
	SuccessURL  string
	CancelURL   string
	UserID      string
	PlanID      string
}

// CreateCheckoutSession opens a hosted checkout page. Metadata carries the
// user and plan so the webhook can activate the right account.
func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	mode := "payment"
	if params.Recurring {
		mode = "subscription"
	}
	form := url.Values{
		"customer":                {params.CustomerID},
		"mode":                    {mode},
		"locale":                  {"tr"},
		"success_url":             {params.SuccessURL},
		"cancel_url":              {params.CancelURL},
		"metadata[user_id]":       {params.UserID},
		"metadata[plan_id]":       {params.PlanID},
		"line_items[0][quantity]": {"1"},
	}
	if params.PriceID != "" {
		form.Set("line_items[0][price]", params.PriceID)
	} else {
		form.Set("line_items[0][price_data][currency]", "try")
		form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
		form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.AmountTRY, 10))
		if params.Recurring {
			form.Set("line_items[0][price_data][recurring][interval]", "month")
		}
	}

	var session CheckoutSession
	if err := c.call(ctx, http.MethodPost, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// VerifyWebhookSignature checks the Stripe-Signature header against the
// webhook secret. With no secret configured verification is skipped, which
// keeps local development working against stripe-cli replays.
func (c *Client) VerifyWebhookSignature(payload []byte, header string) error {
	if c.WebhookSecret == "" {
		return nil
	}
	var timestamp, signature string
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signature = value
		}
	}
	if timestamp == "" || signature == "" {
		return fmt.Errorf("malformed signature header")
	}

	mac := hmac.New(sha256.New, []byte(c.WebhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("stripe: %s (%s)", apiErr.Error.Message, apiErr.Error.Type)
		}
		return fmt.Errorf("stripe: unexpected status %d", resp.StatusCode)
	}
	return json.Unmarshal(data, out)
}
