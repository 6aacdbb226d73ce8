// SPDX-License-Identifier: GPL-3.0-only

package rmqhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rmqadmin-client/commons"
)

const defaultRequestTimeout = 10 * time.Second

// defaultHTTPLayer is the HTTPLayer used when no factory is set. It speaks
// plain net/http with basic auth against the configured endpoint.
type defaultHTTPLayer struct {
	base       *url.URL
	username   string
	password   string
	httpClient *http.Client
}

func newDefaultHTTPLayer(settings HTTPLayerSettings) (HTTPLayer, error) {
	httpClient := &http.Client{Timeout: defaultRequestTimeout}
	if settings.Configurator != nil {
		settings.Configurator(httpClient)
	}
	return &defaultHTTPLayer{
		base:       settings.URL,
		username:   settings.Username,
		password:   settings.Password,
		httpClient: httpClient,
	}, nil
}

func (l *defaultHTTPLayer) Do(ctx context.Context, method, path string, body, out any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return err
	}
	u := l.base.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(l.username, l.password)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		commons.Logger.Errorf("Management API request %s %s failed: %s", method, u.Path, resp.Status)
		return fmt.Errorf("management API request failed: %s", resp.Status)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}
