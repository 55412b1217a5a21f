package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ezpickup-backend/config"
)

// WhatsAppSender defines the interface for sending a WhatsApp text message.
type WhatsAppSender interface {
	Send(ctx context.Context, phone, message string) error
}

// WhatsAppClient sends messages through the WhatsApp Business Cloud API.
type WhatsAppClient struct {
	cfg    config.WhatsAppConfig
	client *http.Client
}

// NewWhatsAppClient creates a WhatsApp Cloud API client.
func NewWhatsAppClient(cfg config.WhatsAppConfig) *WhatsAppClient {
	return &WhatsAppClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type whatsAppTextRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

type whatsAppText struct {
	Body string `json:"body"`
}

// Send posts one text message to the Cloud API.
func (c *WhatsAppClient) Send(ctx context.Context, phone, message string) error {
	if c.cfg.PhoneNumberID == "" || c.cfg.AccessToken == "" {
		return fmt.Errorf("whatsapp credentials are not configured")
	}

	payload, err := json.Marshal(whatsAppTextRequest{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
		Text:             whatsAppText{Body: message},
	})
	if err != nil {
		return fmt.Errorf("marshal whatsapp payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.cfg.APIBaseURL, c.cfg.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("whatsapp API returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
