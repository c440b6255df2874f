package main

import (
	"bytes"
	"context"
	"errors"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"go-price-calculator/convert"
	"go-price-calculator/domain"
	"go-price-calculator/rates"
	"net/http"
	"net/http/httptest"
	"testing"
)

type failingClient struct{}

func (failingClient) USDRate(_ context.Context) (domain.Rate, error) {
	return 0, rates.ErrRequestFailed
}

func TestRun(t *testing.T) {
	err := run(context.Background(), convert.NewService(rates.FakeClient{Rate: 1.2}), nil)

	assert.NoError(t, err)
}

func TestRun_RequestFailed(t *testing.T) {
	err := run(context.Background(), convert.NewService(failingClient{}), nil)

	assert.True(t, errors.Is(err, rates.ErrRequestFailed))
	assert.Contains(t, err.Error(), "convert to [Usd]")
}

func TestRun_UnreachableSource(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	err := run(
		context.Background(),
		convert.NewService(rates.FakeClient{Rate: 1.2}),
		convert.NewService(rates.NewLiveClient(url)),
	)

	assert.True(t, errors.Is(err, rates.ErrRequestFailed), "got %v", err)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		levelName string
		wantDebug bool
		wantInfo  bool
	}{
		{"info drops debug", "info", false, true},
		{"debug keeps debug", "debug", true, true},
		{"error drops info", "error", false, false},
		{"unknown falls back to info", "loud", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.levelName)

			level.Debug(logger).Log("msg", "debug line")
			level.Info(logger).Log("msg", "info line")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info line")))
		})
	}
}
