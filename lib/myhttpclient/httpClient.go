package myhttpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	timeout = 5 * time.Second
)

type jsonHTTPClient struct {
	client *http.Client
}

func newJSONHTTPClient() *jsonHTTPClient {
	return &jsonHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c jsonHTTPClient) Send(ctx context.Context, method string, url string, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error creating http request for %s %s: %s", method, url, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error sending %s %s: %s", method, url, err)
	}
	defer httpResp.Body.Close()

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error reading response of %s %s: %s", method, url, err)
	}

	return httpResp.StatusCode, respPayload, nil
}
