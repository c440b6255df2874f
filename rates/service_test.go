package rates

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-price-calculator/domain"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodGet, req.Method)
		rw.WriteHeader(status)
		_, _ = rw.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLiveClient_USDRate(t *testing.T) {
	server := serve(t, http.StatusOK, `{
		"result": "success",
		"base_code": "EUR",
		"rates": {
			"EUR": 1,
			"USD": 1.0842,
			"GBP": 0.85
		}
	}`)

	rate, err := NewLiveClient(server.URL).USDRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Rate(1.0842), rate)
}

func TestLiveClient_USDRateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"missing usd", http.StatusOK, `{"rates": {"GBP": 0.85}}`, ErrValueNotFound},
		{"missing rates", http.StatusOK, `{"result": "error"}`, ErrValueNotFound},
		{"string usd", http.StatusOK, `{"rates": {"USD": "1.08"}}`, ErrValueNotFound},
		{"rates not an object", http.StatusOK, `{"rates": [1.08]}`, ErrValueNotFound},
		{"document not an object", http.StatusOK, `1.08`, ErrValueNotFound},
		{"server error", http.StatusInternalServerError, `{"rates": {"USD": 1.08}}`, ErrRequestFailed},
		{"not found json body", http.StatusNotFound, `{"result": "error"}`, ErrRequestFailed},
		{"bad gateway html body", http.StatusBadGateway, `<html>bad gateway</html>`, ErrRequestFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serve(t, tt.status, tt.body)

			_, err := NewLiveClient(server.URL).USDRate(context.Background())

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLiveClient_USDRateInvalidJson(t *testing.T) {
	server := serve(t, http.StatusOK, `<html>not json</html>`)

	_, err := NewLiveClient(server.URL).USDRate(context.Background())

	var parsingErr *ResponseParsingError
	require.True(t, errors.As(err, &parsingErr), "got %v", err)
	assert.NotNil(t, parsingErr.Err)
}

func TestLiveClient_USDRateConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewLiveClient(url).USDRate(context.Background())

	assert.True(t, errors.Is(err, ErrRequestFailed), "got %v", err)
}

func TestLiveClient_USDRateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = rw.Write([]byte(`{"rates": {"USD": 1.08}}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()

	_, err := NewLiveClient(server.URL).USDRate(ctx)

	assert.True(t, errors.Is(err, ErrRequestFailed), "got %v", err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestLiveClient_NoCaching(t *testing.T) {
	count := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		count++
		_, _ = rw.Write([]byte(`{"rates": {"USD": 1.08}}`))
	}))
	defer server.Close()

	client := NewLiveClient(server.URL)
	_, _ = client.USDRate(context.Background())
	_, _ = client.USDRate(context.Background())

	assert.Equal(t, 2, count)
}

func TestFakeClient_USDRate(t *testing.T) {
	rate, err := FakeClient{Rate: 1.2}.USDRate(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.Rate(1.2), rate)
}
