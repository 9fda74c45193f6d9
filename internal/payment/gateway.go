package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"turuplats-client/internal/logger"
	"turuplats-client/internal/rest"

	"go.uber.org/zap"
)

// Gateway obtains a payment intent from the backend and confirms it
// against the external provider. The two calls go to different hosts:
// the intent comes from our API, the confirmation goes straight to the
// provider.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*Intent, error)
	Confirm(ctx context.Context, clientSecret string) (*ConfirmResult, error)
}

type gateway struct {
	api         *rest.Client
	providerURL string
	publicKey   string
	httpClient  *http.Client
}

func NewGateway(api *rest.Client, providerURL, publicKey string, timeout time.Duration) Gateway {
	if publicKey == "" {
		logger.L().Warn("payment provider public key is empty")
	}

	return &gateway{
		api:         api,
		providerURL: strings.TrimRight(providerURL, "/"),
		publicKey:   publicKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateIntent asks the backend for a client secret. Amount is in minor
// currency units.
func (g *gateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*Intent, error) {
	body := struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}{Amount: amountMinor, Currency: currency}

	var intent Intent
	if err := g.api.Post(ctx, "/api/payments/create-payment-intent", body, &intent); err != nil {
		return nil, err
	}
	if intent.ClientSecret == "" {
		return nil, errors.New("payment: backend returned no client secret")
	}
	return &intent, nil
}

// Confirm submits the confirmation to the provider and reports its
// terminal status. A declined card is not an error here; it comes back
// as a non-succeeded result with the provider's message.
func (g *gateway) Confirm(ctx context.Context, clientSecret string) (*ConfirmResult, error) {
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(zap.String("intent_id", intentID))

	form := url.Values{"client_secret": {clientSecret}}
	endpoint := fmt.Sprintf("%s/v1/payment_intents/%s/confirm", g.providerURL, intentID)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Error("failed creating confirm request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(g.publicKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	log.Info("confirming payment with provider")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("provider request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read provider response", zap.Error(err))
		return nil, fmt.Errorf("payment: failed to read provider response: %w", err)
	}

	var res struct {
		Status           string `json:"status"`
		LastPaymentError *struct {
			Message string `json:"message"`
		} `json:"last_payment_error"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding provider response", zap.Error(err))
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		msg := ""
		if res.Error != nil {
			msg = res.Error.Message
		}
		log.Warn("provider rejected confirmation",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return &ConfirmResult{Status: "failed", Message: msg}, nil
	}

	result := &ConfirmResult{Status: res.Status}
	if res.LastPaymentError != nil {
		result.Message = res.LastPaymentError.Message
	}

	log.Info("payment confirmation completed", zap.String("status", result.Status))
	return result, nil
}

// intentIDFromSecret extracts the intent identifier from a client secret
// of the form "<intent id>_secret_<nonce>".
func intentIDFromSecret(clientSecret string) (string, error) {
	idx := strings.Index(clientSecret, "_secret")
	if idx <= 0 {
		return "", errors.New("payment: malformed client secret")
	}
	return clientSecret[:idx], nil
}
