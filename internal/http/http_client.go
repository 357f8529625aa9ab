package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

func (hc *HttpClientWrapper) methodRegister(ctx context.Context, method string, urlString *string, params *map[string]string, headers *map[string]string) (*http.Request, error) {
	var request *http.Request
	var err error
	switch method {
	case http.MethodPost:
		// Handle POST request with form data
		formData := url.Values{}
		for k, v := range *params {
			formData.Set(k, v)
		}
		request, err = http.NewRequestWithContext(ctx, method, *urlString, strings.NewReader(formData.Encode()))
		if err != nil {
			return nil, fmt.Errorf("error creating POST request: %v", err)
		}
	case http.MethodGet:
		request, err = http.NewRequestWithContext(ctx, method, *urlString, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating GET request: %v", err)
		}

		if params != nil {
			q := request.URL.Query()
			for k, v := range *params {
				q.Add(k, v)
			}
			request.URL.RawQuery = q.Encode()
		}
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	for k, v := range *headers {
		request.Header.Set(k, v)
	}

	return request, nil
}

// Fetch performs a single request attempt. There is deliberately no retry
// loop here: a failed or timed-out fetch simply yields no flights for that
// operator on this invocation, and the aggregator absorbs that.
func (hc *HttpClientWrapper) Fetch(ctx context.Context, method string, urlString *string, params *map[string]string, headers *map[string]string, namespace string, expiry time.Duration) ([]byte, error) {
	childCtx, cancel := context.WithTimeout(ctx, hc.contextTimeout)
	defer cancel()

	start := time.Now()
	request, err := hc.methodRegister(childCtx, method, urlString, params, headers)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	// Check the redis cache before going upstream
	if cacheResult, exist := hc.redisDb.Get(namespace, request.URL.String()); exist {
		return cacheResult, nil
	}

	resp, err := hc.client.Do(request)
	if err != nil {
		if childCtx.Err() == context.DeadlineExceeded {
			log.Warnf("Request timed out: %s %s %.3fs", method, request.URL, time.Since(start).Seconds())
		}
		return nil, fmt.Errorf("error performing HTTP request: %w", err)
	}
	defer resp.Body.Close()
	log.Infof("Request: %s %s %s %.3fs", request.Method, request.URL.String(), resp.Status, time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to process the request for %s due to http status %d", request.URL, resp.StatusCode)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	hc.redisDb.AddToChannel(namespace, request.URL.String(), result, expiry)
	return result, nil
}
