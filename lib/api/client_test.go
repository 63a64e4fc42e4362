// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1111philo/htc-app/lib/schema"
)

// staticTokens is a TokenSource returning a fixed token.
type staticTokens string

func (tokens staticTokens) IDToken(context.Context) (string, error) {
	return string(tokens), nil
}

// testClient creates a test HTTP server and a Client pointed at it.
// The server is cleaned up when the test completes.
func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Tokens:  staticTokens("test-token"),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestSearchGuests(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/getGuests", func(writer http.ResponseWriter, request *http.Request) {
		if got := request.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}

		var body struct {
			Query  string `json:"query"`
			Offset int    `json:"offset"`
			Limit  int    `json:"limit"`
		}
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if body.Query != "1987-01-01" {
			t.Errorf("query = %q, want 1987-01-01", body.Query)
		}
		if body.Limit != searchLimit || body.Offset != 0 {
			t.Errorf("pagination = offset %d limit %d", body.Offset, body.Limit)
		}

		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]any{
			"rows": []schema.Guest{
				{GuestID: 7, FirstName: "June", LastName: "Okafor", DOB: "1987-01-01"},
			},
		})
	})

	client := testClient(t, mux)
	guests, err := client.SearchGuests(context.Background(), "1987-01-01")
	if err != nil {
		t.Fatalf("SearchGuests: %v", err)
	}
	if len(guests) != 1 {
		t.Fatalf("got %d guests, want 1", len(guests))
	}
	if got := guests[0].OptionLabel(); got != "7 : June Okafor : 1987-01-01" {
		t.Errorf("OptionLabel = %q", got)
	}
}

func TestSearchGuestsEmptyQuery(t *testing.T) {
	t.Parallel()

	// The handler must never be reached for an empty query.
	client := testClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("empty query reached the backend")
	}))

	if _, err := client.SearchGuests(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestAddGuestTrimsStrings(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/addGuest", func(writer http.ResponseWriter, request *http.Request) {
		var body map[string]string
		json.NewDecoder(request.Body).Decode(&body)
		if body["first_name"] != "June" || body["last_name"] != "Okafor" {
			t.Errorf("names not trimmed: %v", body)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]int{"guest_id": 31})
	})

	client := testClient(t, mux)
	guestID, err := client.AddGuest(context.Background(), schema.Guest{
		FirstName: "  June ",
		LastName:  " Okafor\t",
		DOB:       "1987-01-01",
	})
	if err != nil {
		t.Fatalf("AddGuest: %v", err)
	}
	if guestID != 31 {
		t.Errorf("guestID = %d, want 31", guestID)
	}
}

func TestAddVisit(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/addVisit", func(writer http.ResponseWriter, request *http.Request) {
		var body struct {
			GuestID    int   `json:"guest_id"`
			ServiceIDs []int `json:"service_ids"`
		}
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if body.GuestID != 5 || len(body.ServiceIDs) != 2 {
			t.Errorf("visit body = %+v", body)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]int{"visit_id": 41})
	})

	client := testClient(t, mux)
	visitID, err := client.AddVisit(context.Background(), schema.Visit{
		GuestID:    5,
		ServiceIDs: []int{1, 3},
	})
	if err != nil {
		t.Fatalf("AddVisit: %v", err)
	}
	if visitID != 41 {
		t.Errorf("visitID = %d, want 41", visitID)
	}
}

func TestAddVisitRequiresSelections(t *testing.T) {
	t.Parallel()

	client := testClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("invalid visit reached the backend")
	}))

	if _, err := client.AddVisit(context.Background(), schema.Visit{ServiceIDs: []int{1}}); err == nil {
		t.Error("expected error for missing guest")
	}
	if _, err := client.AddVisit(context.Background(), schema.Visit{GuestID: 5}); err == nil {
		t.Error("expected error for empty service selection")
	}
}

func TestGetService(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/getServices", func(writer http.ResponseWriter, request *http.Request) {
		var body struct {
			ServiceID int `json:"service_id"`
		}
		json.NewDecoder(request.Body).Decode(&body)

		writer.Header().Set("Content-Type", "application/json")
		rows := []schema.ServiceType{}
		if body.ServiceID == 3 {
			rows = append(rows, schema.ServiceType{ServiceID: 3, Name: "Shower", Quota: 1, NumSlots: 4})
		}
		json.NewEncoder(writer).Encode(map[string]any{"rows": rows})
	})

	client := testClient(t, mux)
	service, err := client.GetService(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetService: %v", err)
	}
	if service.Name != "Shower" || service.NumSlots != 4 {
		t.Errorf("service = %+v", service)
	}

	_, err = client.GetService(context.Background(), 99)
	var apiError *Error
	if !errors.As(err, &apiError) {
		t.Fatalf("error is %T, want *api.Error", err)
	}
	if apiError.Kind != KindNotFound {
		t.Errorf("Kind = %v, want KindNotFound for an empty rows response", apiError.Kind)
	}
}

func TestToggleNotificationSuccessFalse(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/toggleGuestNotificationStatus", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]bool{"success": false})
	})

	client := testClient(t, mux)
	err := client.ToggleGuestNotificationStatus(context.Background(), 12)
	if err == nil {
		t.Fatal("expected error for success=false envelope")
	}

	var apiError *Error
	if !errors.As(err, &apiError) {
		t.Fatalf("error is %T, want *api.Error", err)
	}
	if apiError.Kind != KindServer {
		t.Errorf("Kind = %v, want KindServer", apiError.Kind)
	}
}

func TestErrorKindMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		status        int
		wantKind      Kind
		wantRetryable bool
	}{
		{"not found", http.StatusNotFound, KindNotFound, false},
		{"unauthorized", http.StatusUnauthorized, KindUnauthorized, false},
		{"forbidden", http.StatusForbidden, KindUnauthorized, false},
		{"server error", http.StatusInternalServerError, KindServer, true},
		{"bad gateway", http.StatusBadGateway, KindServer, true},
		{"bad request", http.StatusBadRequest, KindServer, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			client := testClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(test.status)
				json.NewEncoder(writer).Encode(map[string]string{"error": "nope"})
			}))

			_, err := client.GetGuest(context.Background(), 1)
			var apiError *Error
			if !errors.As(err, &apiError) {
				t.Fatalf("error is %T, want *api.Error", err)
			}
			if apiError.Kind != test.wantKind {
				t.Errorf("Kind = %v, want %v", apiError.Kind, test.wantKind)
			}
			if apiError.Retryable() != test.wantRetryable {
				t.Errorf("Retryable() = %v, want %v", apiError.Retryable(), test.wantRetryable)
			}
			if apiError.StatusCode != test.status {
				t.Errorf("StatusCode = %d, want %d", apiError.StatusCode, test.status)
			}
		})
	}
}

func TestTransportErrorRetryable(t *testing.T) {
	t.Parallel()

	// Point the client at a server that is already closed.
	server := httptest.NewServer(http.NewServeMux())
	serverURL := server.URL
	server.Close()

	client, err := NewClient(ClientConfig{
		BaseURL: serverURL,
		Tokens:  staticTokens("t"),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.GetServices(context.Background())
	var apiError *Error
	if !errors.As(err, &apiError) {
		t.Fatalf("error is %T, want *api.Error", err)
	}
	if apiError.Kind != KindTransport {
		t.Errorf("Kind = %v, want KindTransport", apiError.Kind)
	}
	if !apiError.Retryable() {
		t.Error("transport errors should be retryable")
	}
}

func TestAddUserUsesPublicNamespace(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /public/addUser", func(writer http.ResponseWriter, request *http.Request) {
		if got := request.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("X-Api-Key = %q, want test-key", got)
		}
		if got := request.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected Authorization header %q on public namespace", got)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]int{"user_id": 9})
	})

	client := testClient(t, mux)
	userID, err := client.AddUser(context.Background(), schema.User{Name: "Sam", Email: "sam@example.org"}, "hunter22")
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if userID != 9 {
		t.Errorf("userID = %d, want 9", userID)
	}
}

func TestPageOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pageNum, limit, want int
	}{
		{1, 10, 0},
		{3, 10, 20},
		{2, 25, 25},
		{0, 10, 0},
		{-4, 10, 0},
	}
	for _, test := range tests {
		if got := PageOffset(test.pageNum, test.limit); got != test.want {
			t.Errorf("PageOffset(%d, %d) = %d, want %d", test.pageNum, test.limit, got, test.want)
		}
	}
}

func TestGetUsersPagination(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/getUsers", func(writer http.ResponseWriter, request *http.Request) {
		var body struct {
			Offset int `json:"offset"`
			Limit  int `json:"limit"`
		}
		json.NewDecoder(request.Body).Decode(&body)
		if body.Offset != 20 || body.Limit != 10 {
			t.Errorf("pagination = offset %d limit %d, want 20/10", body.Offset, body.Limit)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(UsersPage{
			Rows:  []schema.User{{UserID: 21, Name: "Sam"}},
			Total: 57,
		})
	})

	client := testClient(t, mux)
	page, err := client.GetUsers(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if page.Total != 57 || len(page.Rows) != 1 {
		t.Errorf("page = %+v", page)
	}
}
