package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/leadrouter/crm-backend/pkg/notify"
)

// Gateway sends campaign messages through the WhatsApp provider's HTTP API.
type Gateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config holds the provider connection settings
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewGateway creates a new WhatsApp provider gateway
func NewGateway(cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type sendRequest struct {
	APIKey         string   `json:"apiKey"`
	CampaignName   string   `json:"campaignName"`
	Destination    string   `json:"destination"`
	Source         string   `json:"source"`
	TemplateParams []string `json:"templateParams"`
}

// Send delivers one templated campaign message. A non-2xx provider
// response is reported through SendResult, not as an error; errors are
// reserved for transport failures.
func (g *Gateway) Send(ctx context.Context, phone, campaignName, sourceLabel string, params []string) (*notify.SendResult, error) {
	body, err := json.Marshal(sendRequest{
		APIKey:         g.apiKey,
		CampaignName:   campaignName,
		Destination:    phone,
		Source:         sourceLabel,
		TemplateParams: params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach message provider: %w", err)
	}
	defer resp.Body.Close()

	// Keep the raw response for the activity trail, bounded so a
	// misbehaving provider cannot blow up the row.
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	return &notify.SendResult{
		Success:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode:  resp.StatusCode,
		RawResponse: string(raw),
	}, nil
}
