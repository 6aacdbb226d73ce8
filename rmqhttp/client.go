// SPDX-License-Identifier: GPL-3.0-only

package rmqhttp

import (
	"context"
	"net"
	"net/url"
	"strconv"

	"rmqadmin-client/commons"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NewClient validates params and builds a Client from them. It fails with
// a MissingFieldError when the URL, username or password was never set.
// The HTTP layer comes from the configured factory, or from the built-in
// net/http layer when no factory is set.
func NewClient(params *ClientParameters) (*Client, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	settings := HTTPLayerSettings{
		URL:          params.url,
		Username:     params.username,
		Password:     params.password,
		Configurator: params.configurator,
	}
	var layer HTTPLayer
	var err error
	if params.factory != nil {
		layer, err = params.factory.Create(settings)
	} else {
		layer, err = newDefaultHTTPLayer(settings)
	}
	if err != nil {
		return nil, err
	}
	commons.Logger.Debugf("Management API client initialized for %s", params.url.Redacted())
	return &Client{Endpoint: params.url, layer: layer}, nil
}

// Do performs a single call against the management API through the
// configured HTTP layer. Path is resolved against the endpoint, body and
// out are JSON-encoded and -decoded; either may be nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	return c.layer.Do(ctx, method, path, body, out)
}

// FromAMQPURI derives client parameters from an AMQP URI. amqp maps to the
// plain HTTP listener on port 15672, amqps to the TLS listener on 15671;
// credentials in the URI are carried over.
func FromAMQPURI(uri string) (*ClientParameters, error) {
	parsed, err := amqp.ParseURI(uri)
	if err != nil {
		return nil, &InvalidURLError{URL: uri, Err: err}
	}
	scheme, port := "http", 15672
	if parsed.Scheme == "amqps" {
		scheme, port = "https", 15671
	}
	u := &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(parsed.Host, strconv.Itoa(port)),
	}
	return NewClientParameters().
		SetURL(u).
		SetUsername(parsed.Username).
		SetPassword(parsed.Password), nil
}
