// SPDX-License-Identifier: GPL-3.0-only

package rmqhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	params, err := NewClientParameters().SetURLString(server.URL)
	if err != nil {
		t.Fatalf("SetURLString failed: %v", err)
	}
	client, err := NewClient(params.SetUsername("guest").SetPassword("secret"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestDefaultLayerSendsBasicAuth(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || username != "guest" || password != "secret" {
			t.Errorf("Expected basic auth guest/secret, got %q/%q", username, password)
		}
		if r.URL.Path != "/api/overview" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"rabbitmq_version": "4.0.1"})
	}))

	var overview map[string]string
	if err := client.Do(context.Background(), "GET", "/api/overview", nil, &overview); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if overview["rabbitmq_version"] != "4.0.1" {
		t.Errorf("Response should be decoded, got %+v", overview)
	}
}

func TestDefaultLayerEncodesJSONBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("Unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Unexpected content type: %s", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Body should be JSON: %v", err)
		}
		if body["type"] != "topic" {
			t.Errorf("Unexpected body: %+v", body)
		}
		w.WriteHeader(http.StatusCreated)
	}))

	body := map[string]string{"type": "topic"}
	if err := client.Do(context.Background(), "PUT", "/api/exchanges/%2F/events", body, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestDefaultLayerRejectsNon2xxStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))

	err := client.Do(context.Background(), "GET", "/api/queues/%2F/missing", nil, nil)
	if err == nil {
		t.Fatal("Do should fail for a 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Error should carry the status, got %v", err)
	}
}

func TestDefaultLayerHonorsContext(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := client.Do(ctx, "DELETE", "/api/vhosts/stale", nil, nil); err == nil {
		t.Error("Do should fail once the context is canceled")
	}
}
