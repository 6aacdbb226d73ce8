// SPDX-License-Identifier: GPL-3.0-only

// Package rmqhttp holds the construction parameters for a RabbitMQ
// management HTTP API client and builds clients out of them.
package rmqhttp

import (
	"context"
	"net/http"
	"net/url"
)

// ClientParameters accumulates everything needed to construct a Client.
// It is filled via chained setters and consumed once by NewClient, which
// validates it. A parameters value is not safe for concurrent mutation.
type ClientParameters struct {
	url          *url.URL
	username     string
	password     string
	factory      HTTPLayerFactory
	configurator ClientConfigurator
}

// HTTPLayerSettings is what an HTTPLayerFactory gets to work with: the
// credential-free endpoint, the credentials, and the legacy configurator
// when one was set on the parameters.
type HTTPLayerSettings struct {
	URL          *url.URL
	Username     string
	Password     string
	Configurator ClientConfigurator
}

// HTTPLayer performs HTTP exchanges against the management API. Path is
// resolved against the configured endpoint, body and out are JSON-encoded
// and -decoded; either may be nil.
type HTTPLayer interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// HTTPLayerFactory builds the HTTPLayer a Client will use. Implementations
// typically customize headers, proxy or TLS settings of the transport they
// hand out. The parameters holder stores a factory opaquely and never
// invokes it; NewClient does, exactly once.
type HTTPLayerFactory interface {
	Create(settings HTTPLayerSettings) (HTTPLayer, error)
}

// HTTPLayerFactoryFunc adapts a function to the HTTPLayerFactory interface.
type HTTPLayerFactoryFunc func(settings HTTPLayerSettings) (HTTPLayer, error)

func (f HTTPLayerFactoryFunc) Create(settings HTTPLayerSettings) (HTTPLayer, error) {
	return f(settings)
}

// ClientConfigurator post-configures the *http.Client used by the default
// HTTP layer, after the essential settings have been applied.
//
// Deprecated: set an HTTPLayerFactory on the parameters instead.
type ClientConfigurator func(*http.Client)

// Client talks to the RabbitMQ management HTTP API through its HTTPLayer.
type Client struct {
	Endpoint *url.URL
	layer    HTTPLayer
}
