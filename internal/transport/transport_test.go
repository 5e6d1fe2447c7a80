package transport

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAuthTransport_SetsHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
	}))
	defer srv.Close()

	client := NewClient("tok123")
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	_ = resp.Body.Close()

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("tok123:api_token"))
	if gotAuth != wantAuth {
		t.Fatalf("Authorization = %q, want %q", gotAuth, wantAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q", gotContentType)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-Id not set")
	}
}

func TestHTTPError(t *testing.T) {
	err := &HTTPError{StatusCode: 403, Status: "403 Forbidden", Body: "Incorrect username and/or password"}
	if !strings.Contains(err.Error(), "403 Forbidden") {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Incorrect username") {
		t.Fatalf("Error() should include body, got %q", err.Error())
	}

	if !IsHTTPStatus(err, 403) {
		t.Fatalf("IsHTTPStatus(err, 403) = false")
	}
	if IsHTTPStatus(err, 404) {
		t.Fatalf("IsHTTPStatus(err, 404) = true")
	}

	wrapped := fmt.Errorf("listing entries: %w", err)
	if !IsHTTPStatus(wrapped, 403) {
		t.Fatalf("IsHTTPStatus should see through wrapping")
	}
}

func TestIsUnauthorized(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"401", &HTTPError{StatusCode: 401, Status: "401 Unauthorized"}, true},
		{"403", &HTTPError{StatusCode: 403, Status: "403 Forbidden"}, true},
		{"500", &HTTPError{StatusCode: 500, Status: "500 Internal Server Error"}, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUnauthorized(tc.err); got != tc.want {
				t.Fatalf("IsUnauthorized() = %v, want %v", got, tc.want)
			}
		})
	}
}
