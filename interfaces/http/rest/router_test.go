package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zoograph-backend/application/services"
	"zoograph-backend/infrastructure/persistence/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	zoo, err := services.NewZooGraph(
		context.Background(),
		memory.NewAviaryRepository(),
		memory.NewPathRepository(),
		memory.NewAnimalRepository(),
		memory.NewKeeperRepository(),
		zap.NewNop(),
	)
	require.NoError(t, err)

	server := httptest.NewServer(NewRouter(zoo, zap.NewNop(), Options{}).Setup())
	t.Cleanup(server.Close)
	return server
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func do(t *testing.T, method, url string, body any) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func createAviary(t *testing.T, server *httptest.Server, name string) string {
	t.Helper()
	resp, env := do(t, http.MethodPost, server.URL+"/api/v1/aviaries", map[string]any{
		"name":     name,
		"habitat":  "savannah",
		"area":     120,
		"capacity": 4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func TestRouter_AviaryLifecycle(t *testing.T) {
	server := newTestServer(t)

	id := createAviary(t, server, "North Wing")

	resp, env := do(t, http.MethodGet, server.URL+"/api/v1/aviaries/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, env = do(t, http.MethodGet, server.URL+"/api/v1/aviaries", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	resp, _ = do(t, http.MethodDelete, server.URL+"/api/v1/aviaries/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = do(t, http.MethodGet, server.URL+"/api/v1/aviaries/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestRouter_CreateAviary_ValidationError(t *testing.T) {
	server := newTestServer(t)

	resp, env := do(t, http.MethodPost, server.URL+"/api/v1/aviaries", map[string]any{
		"name":    "",
		"habitat": "savannah",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestRouter_CreateAviary_OversizedBodyRejected(t *testing.T) {
	server := newTestServer(t)

	resp, env := do(t, http.MethodPost, server.URL+"/api/v1/aviaries", map[string]any{
		"name":     strings.Repeat("x", 2<<20),
		"habitat":  "savannah",
		"area":     120,
		"capacity": 4,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestRouter_PathsAndRoutes(t *testing.T) {
	server := newTestServer(t)
	a := createAviary(t, server, "A")
	b := createAviary(t, server, "B")

	resp, _ := do(t, http.MethodPost, server.URL+"/api/v1/paths", map[string]any{
		"from_id": a,
		"to_id":   b,
		"length":  7.5,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := do(t, http.MethodGet, fmt.Sprintf("%s/api/v1/routes?from=%s&to=%s", server.URL, a, b), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var route struct {
		Route    []string `json:"route"`
		Distance float64  `json:"distance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &route))
	assert.Equal(t, []string{a, b}, route.Route)
	assert.Equal(t, 7.5, route.Distance)

	resp, env = do(t, http.MethodGet, server.URL+"/api/v1/connectivity", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var conn struct {
		Connected bool `json:"connected"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &conn))
	assert.True(t, conn.Connected)
}

func TestRouter_AnimalPlacementFlow(t *testing.T) {
	server := newTestServer(t)
	aviaryID := createAviary(t, server, "North Wing")

	resp, env := do(t, http.MethodPost, server.URL+"/api/v1/animals", map[string]any{
		"name":     "Bugs",
		"species":  "Rabbit",
		"category": "Mammal",
		"age":      2,
		"weight":   4.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var animal struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &animal))

	resp, _ = do(t, http.MethodPost, server.URL+"/api/v1/animals/"+animal.ID+"/placement", map[string]any{
		"aviary_id": aviaryID,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = do(t, http.MethodGet, server.URL+"/api/v1/animals/status", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var status struct {
		AllPlaced bool `json:"all_placed"`
		Unplaced  int  `json:"unplaced"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.AllPlaced)
	assert.Zero(t, status.Unplaced)

	resp, env = do(t, http.MethodPost, server.URL+"/api/v1/animals/"+animal.ID+"/placement", map[string]any{
		"aviary_id": "33333333-3333-4333-8333-333333333333",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
}

func TestRouter_Health(t *testing.T) {
	server := newTestServer(t)
	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
