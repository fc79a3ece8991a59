package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"marketbids/internal/auth"
	"marketbids/internal/models"
	negotiation "marketbids/internal/negotiationService"
	"marketbids/internal/repository"
	"marketbids/internal/server"

	"github.com/gin-gonic/gin"
)

// TestEnv bundles a router with direct handles on the backing stores so
// tests can seed listings and mint sessions.
type TestEnv struct {
	Router   *gin.Engine
	Store    *repository.MemoryStore
	Sessions *auth.MemorySessionStore
}

// SetupTestEnv initializes the router over in-memory stores for integration
// testing, seeding the given listings.
func SetupTestEnv(listings ...models.Listing) *TestEnv {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	for _, l := range listings {
		store.AddListing(l)
	}

	sessions := auth.NewMemorySessionStore()
	service := negotiation.NewService(store, store)
	router := server.SetupRouter(service, sessions, 5*time.Second)

	return &TestEnv{Router: router, Store: store, Sessions: sessions}
}

// ExecuteRequest executes an HTTP request with an optional bearer token and
// parses the JSON response envelope.
func (env *TestEnv) ExecuteRequest(t *testing.T, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data extracts the data field of a successful response envelope.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
