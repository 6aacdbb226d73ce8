// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"rmqadmin-client/commons"
	"rmqadmin-client/rmqhttp"
)

func main() {
	apiURL := flag.String("url", "", "Management API URL, may embed user:pass@ credentials")
	amqpURI := flag.String("amqp-uri", "", "Derive endpoint and credentials from an AMQP URI instead")
	username := flag.String("username", "", "Username, overrides URL-embedded credentials")
	password := flag.String("password", "", "Password, overrides URL-embedded credentials")
	path := flag.String("path", "/api/overview", "Request path to GET")
	timeout := flag.Duration("timeout", 30*time.Second, "Request timeout")
	flag.Parse()

	params, err := buildParameters(*apiURL, *amqpURI, *username, *password)
	if err != nil {
		commons.Logger.Fatalf("Invalid parameters: %v", err)
	}

	client, err := rmqhttp.NewClient(params)
	if err != nil {
		commons.Logger.Fatalf("Failed to create management API client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var result map[string]any
	if err := client.Do(ctx, "GET", *path, nil, &result); err != nil {
		commons.Logger.Fatalf("Request failed: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		commons.Logger.Fatalf("Failed to print response: %v", err)
	}
}

func buildParameters(apiURL, amqpURI, username, password string) (*rmqhttp.ClientParameters, error) {
	var params *rmqhttp.ClientParameters
	var err error

	switch {
	case amqpURI != "":
		params, err = rmqhttp.FromAMQPURI(amqpURI)
	case apiURL != "":
		params, err = rmqhttp.NewClientParameters().SetURLString(apiURL)
	default:
		params, err = rmqhttp.NewClientParametersFromEnv()
	}
	if err != nil {
		return nil, fmt.Errorf("build parameters: %w", err)
	}

	if username != "" {
		params.SetUsername(username)
	}
	if password != "" {
		params.SetPassword(password)
	}
	return params, nil
}
