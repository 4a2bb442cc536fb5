package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the EmailJS REST API, the transactional email collaborator
// behind the booking and quote forms. It sends one template with a flat
// parameter map; no retry, no delivery guarantee beyond the HTTP status.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	serviceID  string
	templateID string
	publicKey  string
	toName     string
}

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Option func(*Client)

// Message carries the template parameters of one outbound email.
type Message struct {
	FromName    string
	FromEmail   string
	Phone       string
	Subject     string
	Destination string
	Body        string
}

var ErrBadStatusCode = errors.New("invalid status code from emailjs")

func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithToName(name string) Option {
	return func(c *Client) {
		c.toName = name
	}
}

func NewClient(serviceID, templateID, publicKey string, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://api.emailjs.com",
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the message through the configured service/template pair. It
// either succeeds or fails; callers decide what to surface.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.serviceID == "" || c.templateID == "" || c.publicKey == "" {
		return errors.New("emailjs credentials are not configured")
	}

	phone := msg.Phone
	if phone == "" {
		phone = "Non renseigné"
	}
	destination := msg.Destination
	if destination == "" {
		destination = "Non spécifiée"
	}

	payload := sendRequest{
		ServiceID:  c.serviceID,
		TemplateID: c.templateID,
		UserID:     c.publicKey,
		TemplateParams: map[string]string{
			"from_name":   msg.FromName,
			"from_email":  msg.FromEmail,
			"phone":       phone,
			"subject":     msg.Subject,
			"destination": destination,
			"message":     msg.Body,
			"to_name":     c.toName,
			"reply_to":    msg.FromEmail,
		},
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/api/v1.0/email/send", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrBadStatusCode, resp.StatusCode)
	}
	return nil
}
