package clients

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

const timeout = time.Second * 15

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	return h.send(req, headers)
}

func (h *HTTPClient) Post(ctx context.Context, url string, headers http.Header, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return h.send(req, headers)
}

func (h *HTTPClient) send(req *http.Request, headers http.Header) (resp *Response, err error) {
	for k, v := range headers {
		req.Header[k] = v
	}
	raw, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := raw.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	body, err := io.ReadAll(raw.Body)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: raw.StatusCode, Body: body, Header: raw.Header}, nil
}

func (h *HTTPClient) SetClient(client HTTPClientI) {
	h.client = client
}
