// SPDX-License-Identifier: GPL-3.0-only

package rmqhttp

import (
	"net/url"

	"rmqadmin-client/commons"
)

// NewClientParameters returns an empty parameters holder.
func NewClientParameters() *ClientParameters {
	return &ClientParameters{}
}

// NewClientParametersFromEnv seeds a holder from RABBITMQ_API_URL,
// RABBITMQ_USERNAME and RABBITMQ_PASSWORD. A URL with embedded credentials
// populates username and password the same way SetURLString does; the
// explicit variables take precedence when set.
func NewClientParametersFromEnv() (*ClientParameters, error) {
	p := NewClientParameters()
	if raw := commons.GetEnv("RABBITMQ_API_URL", ""); raw != "" {
		if _, err := p.SetURLString(raw); err != nil {
			return nil, err
		}
	}
	if username := commons.GetEnv("RABBITMQ_USERNAME", ""); username != "" {
		p.SetUsername(username)
	}
	if password := commons.GetEnv("RABBITMQ_PASSWORD", ""); password != "" {
		p.SetPassword(password)
	}
	return p, nil
}

// SetURL stores u as-is. The URL is expected to be credential-free; use
// SetURLString to have embedded user-info extracted.
func (p *ClientParameters) SetURL(u *url.URL) *ClientParameters {
	p.url = u
	return p
}

// SetURLString parses raw and stores it. When raw embeds user-info, the
// decoded credentials are assigned to the username and password parameters
// and the stored URL is the credential-free equivalent. SetUsername and
// SetPassword calls made afterwards overwrite the extracted values.
func (p *ClientParameters) SetURLString(raw string) (*ClientParameters, error) {
	u, username, password, found, err := SplitCredentials(raw)
	if err != nil {
		return p, err
	}
	p.url = u
	if found {
		commons.Logger.Debug("URL contains credentials, setting the username and password parameters")
		p.username = username
		p.password = password
	}
	return p, nil
}

// SetUsername sets the username to authenticate with.
func (p *ClientParameters) SetUsername(username string) *ClientParameters {
	p.username = username
	return p
}

// SetPassword sets the password to authenticate with.
func (p *ClientParameters) SetPassword(password string) *ClientParameters {
	p.password = password
	return p
}

// SetHTTPLayerFactory sets the factory NewClient will use to build the
// client's HTTP layer. The holder stores it opaquely.
func (p *ClientParameters) SetHTTPLayerFactory(factory HTTPLayerFactory) *ClientParameters {
	p.factory = factory
	return p
}

// SetClientConfigurator sets a hook that post-configures the default HTTP
// layer's *http.Client.
//
// Deprecated: use SetHTTPLayerFactory instead.
func (p *ClientParameters) SetClientConfigurator(configurator ClientConfigurator) *ClientParameters {
	p.configurator = configurator
	return p
}

func (p *ClientParameters) URL() *url.URL { return p.url }

func (p *ClientParameters) Username() string { return p.username }

func (p *ClientParameters) Password() string { return p.password }

func (p *ClientParameters) Factory() HTTPLayerFactory { return p.factory }

// Deprecated: use Factory instead.
func (p *ClientParameters) Configurator() ClientConfigurator { return p.configurator }

func (p *ClientParameters) validate() error {
	switch {
	case p.url == nil:
		return &MissingFieldError{Field: "url"}
	case p.username == "":
		return &MissingFieldError{Field: "username"}
	case p.password == "":
		return &MissingFieldError{Field: "password"}
	}
	return nil
}
