package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/termninja/termninja/pkg/types"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("successful login", func(t *testing.T) {
		var requests atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)

			// Verify request method and path
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST method, got %s", r.Method)
			}
			if r.URL.Path != "/auth" {
				t.Errorf("Expected path /auth, got %s", r.URL.Path)
			}

			// Verify content type
			contentType := r.Header.Get("Content-Type")
			if !strings.HasPrefix(contentType, "application/json") {
				t.Errorf("Expected Content-Type application/json, got %s", contentType)
			}

			// Verify request body
			raw, err := io.ReadAll(r.Body)
			if err != nil {
				t.Fatalf("Failed to read request body: %v", err)
			}
			var creds types.Credentials
			if err := json.Unmarshal(raw, &creds); err != nil {
				t.Fatalf("Failed to decode request body: %v", err)
			}
			if creds.Username != "bob" || creds.Password != "secret" {
				t.Errorf("Expected credentials bob/secret, got %s/%s", creds.Username, creds.Password)
			}
			var fields map[string]any
			_ = json.Unmarshal(raw, &fields)
			if len(fields) != 2 {
				t.Errorf("Expected exactly username and password in body, got %v", fields)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(&types.AuthResponse{Username: "bob", Token: "session-token"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		resp, err := client.Login(context.Background(), "bob", "secret")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if resp.Username != "bob" {
			t.Errorf("Expected Username bob, got %s", resp.Username)
		}
		if resp.Token != "session-token" {
			t.Errorf("Expected Token session-token, got %s", resp.Token)
		}
		if n := requests.Load(); n != 1 {
			t.Errorf("Expected exactly 1 request, got %d", n)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		var requests atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid username or password"))
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		resp, err := client.Login(context.Background(), "bob", "wrong")

		if err == nil {
			t.Fatal("Expected error, got nil")
		}
		if resp != nil {
			t.Error("Expected nil response on error")
		}

		expectedError := "request failed with status: 401, message: Invalid username or password"
		if !strings.Contains(err.Error(), expectedError) {
			t.Errorf("Expected error to contain %s, got %s", expectedError, err.Error())
		}
		// failures are not retried
		if n := requests.Load(); n != 1 {
			t.Errorf("Expected exactly 1 request, got %d", n)
		}
	})

	t.Run("network error", func(t *testing.T) {
		client := NewClient("http://invalid-url", "", &http.Client{})
		resp, err := client.Login(context.Background(), "bob", "secret")

		if err == nil {
			t.Fatal("Expected error, got nil")
		}
		if resp != nil {
			t.Error("Expected nil response on error")
		}

		if !strings.Contains(err.Error(), "failed to send request") {
			t.Errorf("Expected error to contain 'failed to send request', got %s", err.Error())
		}
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("successful logout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("Expected GET method, got %s", r.Method)
			}
			if r.URL.Path != "/auth/logout" {
				t.Errorf("Expected path /auth/logout, got %s", r.URL.Path)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"message":"logged out"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token", &http.Client{})
		resp, err := client.Logout(context.Background())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if resp.Message != "logged out" {
			t.Errorf("Expected message 'logged out', got %s", resp.Message)
		}
	})

	t.Run("empty acknowledgment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		resp, err := client.Logout(context.Background())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if resp.Message != "" {
			t.Errorf("Expected empty message, got %s", resp.Message)
		}
	})
}
