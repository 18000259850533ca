package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, New(server.URL, StaticToken("test-token"))
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "ok",
		"data":    data,
	})
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, Sauda{ID: "1"})
	})

	if _, err := client.SaudaByID(context.Background(), "1"); err != nil {
		t.Fatalf("SaudaByID: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", gotAuth)
	}
}

func TestClientUnwrapsEnvelope(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, Sauda{ID: "42", SaudaNo: "SA-42", Status: "active"})
	})

	sauda, err := client.SaudaByID(context.Background(), "42")
	if err != nil {
		t.Fatalf("SaudaByID: %v", err)
	}
	if sauda.ID != "42" || sauda.SaudaNo != "SA-42" || sauda.Status != "active" {
		t.Errorf("sauda = %+v", sauda)
	}
}

func TestClientListQueryParams(t *testing.T) {
	var gotQuery string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("sauda_id")
		writeEnvelope(w, []InwardSlipPass{{ID: "IS1", SaudaID: "S1"}})
	})

	slips, err := client.InwardSlipsBySauda(context.Background(), "S1")
	if err != nil {
		t.Fatalf("InwardSlipsBySauda: %v", err)
	}
	if gotQuery != "S1" {
		t.Errorf("sauda_id query = %q, want S1", gotQuery)
	}
	if len(slips) != 1 || slips[0].ID != "IS1" {
		t.Errorf("slips = %+v", slips)
	}
}

func TestClientAPIError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Sauda not found"}`))
	})

	_, err := client.SaudaByID(context.Background(), "missing")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", apiErr.Status)
	}
}

func TestClientNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client := New(server.URL, nil)
	server.Close()

	_, err := client.SaudaByID(context.Background(), "1")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *NetworkError", err)
	}
	if netErr.StatusCode() != 0 {
		t.Errorf("StatusCode = %d, want 0", netErr.StatusCode())
	}
}

func TestClientCreatePostsJSON(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody Purchase
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		gotBody.ID = "P1"
		writeEnvelope(w, gotBody)
	})

	created, err := client.CreatePurchase(context.Background(), &Purchase{SaudaID: "S1", Rate: 2500})
	if err != nil {
		t.Fatalf("CreatePurchase: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotBody.SaudaID != "S1" || gotBody.Rate != 2500 {
		t.Errorf("server received %+v", gotBody)
	}
	if created.ID != "P1" {
		t.Errorf("created.ID = %q, want P1", created.ID)
	}
}
