package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"kind":"payout.paid"}`, string(body))
		w.Header().Set("X-Request-Id", "42")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewHTTPClient()
	resp, err := c.Post(context.Background(), srv.URL, http.Header{"Content-Type": {"application/json"}}, []byte(`{"kind":"payout.paid"}`))
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, "42", resp.Header.Get("X-Request-Id"))
}

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient().Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, "boom", string(resp.Body))
}

type failingClient struct{}

func (failingClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestHTTPClient_TransportError(t *testing.T) {
	c := NewHTTPClient()
	c.SetClient(failingClient{})

	_, err := c.Post(context.Background(), "http://example.invalid", nil, nil)
	assert.EqualError(t, err, "connection refused")
}
