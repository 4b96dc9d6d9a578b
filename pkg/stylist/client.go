package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Client talks to the remote chat/search/try-on backend. Every call is a
// single stateless request/response exchange: no retries, no pooling beyond
// what net/http does on its own, no client-side timeout (callers control
// cancellation through the context).
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// --- Wire structs ---

type chatRequest struct {
	Message   string `json:"message"`
	SessionId string `json:"sessionId,omitempty"`
}

// BackendProduct is one search result exactly as the backend sends it.
type BackendProduct struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	OriginalPrice   float64 `json:"originalPrice,omitempty"`
	Discount        float64 `json:"discount,omitempty"`
	ProductURL      string  `json:"product_url"`
	ProductImageURL string  `json:"product_image_url"`
	UserProductURL  string  `json:"user_product_url,omitempty"`
	Store           string  `json:"store"`
	Color           string  `json:"color"`
	Size            string  `json:"size"`
	GarmentType     string  `json:"garmentType"`
}

type chatResponse struct {
	Response      string           `json:"response"`
	SessionId     string           `json:"sessionId"`
	SearchResults []BackendProduct `json:"searchResults"`
}

// ChatResult is the provider-agnostic outcome of one chat turn.
type ChatResult struct {
	Reply         string
	SessionId     string
	SearchResults []BackendProduct
}

type tryOnRequest struct {
	SessionId    string `json:"sessionId"`
	ItemImageURL string `json:"itemImageUrl"`
}

type TryOnResult struct {
	TryOnImageURL string `json:"tryOnImageUrl"`
	Message       string `json:"message,omitempty"`
}

type UploadResult struct {
	ImageId string `json:"imageId"`
	URL     string `json:"url"`
}

type HealthResult struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// --- Operations ---

// Chat sends one conversation turn. sessionID may be empty on the first call;
// the backend establishes one and returns it.
func (c *Client) Chat(ctx context.Context, message, sessionID string) (*ChatResult, error) {
	body, err := c.postJSON(ctx, "/api/chat", chatRequest{
		Message:   message,
		SessionId: sessionID,
	})
	if err != nil {
		return nil, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &APIError{Status: 0, Message: fmt.Sprintf("unmarshal chat response: %v", err)}
	}

	return &ChatResult{
		Reply:         parsed.Response,
		SessionId:     parsed.SessionId,
		SearchResults: parsed.SearchResults,
	}, nil
}

// UploadUserImage sends the user's photo as a multipart form. Size and media
// type constraints are the caller's responsibility; this method only moves
// bytes.
func (c *Client) UploadUserImage(ctx context.Context, sessionID, filename string, data []byte) (*UploadResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if sessionID != "" {
		if err := w.WriteField("sessionId", sessionID); err != nil {
			return nil, fmt.Errorf("write session field: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/api/upload-user-image", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var parsed UploadResult
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &APIError{Status: 0, Message: fmt.Sprintf("unmarshal upload response: %v", err)}
	}
	return &parsed, nil
}

// TryOnFromItem asks the backend to composite the item onto the user's photo.
func (c *Client) TryOnFromItem(ctx context.Context, sessionID, itemImageURL string) (*TryOnResult, error) {
	body, err := c.postJSON(ctx, "/api/try-on/from-item", tryOnRequest{
		SessionId:    sessionID,
		ItemImageURL: itemImageURL,
	})
	if err != nil {
		return nil, err
	}

	var parsed TryOnResult
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &APIError{Status: 0, Message: fmt.Sprintf("unmarshal try-on response: %v", err)}
	}
	return &parsed, nil
}

// Health probes the backend's liveness endpoint.
func (c *Client) Health(ctx context.Context) (*HealthResult, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var parsed HealthResult
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &APIError{Status: 0, Message: fmt.Sprintf("unmarshal health response: %v", err)}
	}
	return &parsed, nil
}

// --- Helpers ---

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+path, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// do performs the exchange and classifies failures: transport problems come
// back as APIError with status 0, non-2xx answers carry the server's status
// and whatever message its error body held.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Status: 0, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}

	return body, nil
}

func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("server responded with status %d", status)
}
