package mailrelay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client posts contact-form fields to the site's mail relay endpoint, the
// same form-encoded contract the relay script has always accepted. The
// honeypot field is sent blank; filling it is how the relay spots bots.
type Client struct {
	httpClient HTTPClient
	relayURL   string
}

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Option func(*Client)

// Message is one relayed contact message.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

var ErrBadStatusCode = errors.New("invalid status code from mail relay")

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(relayURL string, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		relayURL:   relayURL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Send relays the message. Success is a 200 from the relay, nothing more.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.relayURL == "" {
		return errors.New("mail relay URL is not configured")
	}

	form := url.Values{
		"name":     {msg.Name},
		"email":    {msg.Email},
		"subject":  {msg.Subject},
		"message":  {msg.Body},
		"honeypot": {""},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.relayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

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
