package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"go-price-calculator/domain"
	"io"
	"net/http"
)

// Client looks up the current USD per EUR exchange rate
type Client interface {
	USDRate(ctx context.Context) (domain.Rate, error)
}

// liveClient looks up rates over HTTP
type liveClient struct {
	// url of a JSON document shaped {"rates": {"USD": <number>}}
	url string

	// client for HTTP requests
	client http.Client
}

// NewLiveClient constructs a Client fetching rates from url on every call.
func NewLiveClient(url string) Client {
	return &liveClient{
		url:    url,
		client: http.Client{},
	}
}

// USDRate loads the current USD rate. Nothing is cached.
// Any non-2xx status is ErrRequestFailed; the body of such a response is never parsed.
func (c *liveClient) USDRate(ctx context.Context) (domain.Rate, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("building http request: %w: %w", ErrRequestFailed, err)
	}
	httpResponse, err := c.client.Do(request)
	if err != nil {
		return 0, fmt.Errorf("http get: %w: %w", ErrRequestFailed, err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return 0, fmt.Errorf("http get [%v]: %w", httpResponse.Status, ErrRequestFailed)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return 0, fmt.Errorf("reading json: %w: %w", ErrRequestFailed, err)
	}

	var response any
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return 0, fmt.Errorf("decoding json: %w", &ResponseParsingError{Err: err})
	}

	return usdRate(response)
}

// usdRate extracts the numeric rates.USD field from a decoded JSON document
func usdRate(document any) (domain.Rate, error) {
	root, ok := document.(map[string]any)
	if !ok {
		return 0, ErrValueNotFound
	}
	rates, ok := root["rates"].(map[string]any)
	if !ok {
		return 0, ErrValueNotFound
	}
	usd, ok := rates["USD"].(float64)
	if !ok {
		return 0, ErrValueNotFound
	}
	return domain.Rate(usd), nil
}

// FakeClient returns a fixed rate without touching the network
type FakeClient struct {
	Rate domain.Rate
}

// USDRate returns f.Rate
func (f FakeClient) USDRate(_ context.Context) (domain.Rate, error) {
	return f.Rate, nil
}
