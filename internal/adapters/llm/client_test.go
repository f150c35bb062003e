package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(ClientOptions{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
	})
	require.NoError(t, err)
	return c, srv
}

func TestClient_Generate(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Take a ten minute walk after lunch.  "}}]}`))
	})

	tip, err := c.Generate(context.Background(), "sex: female; conditions: hypertension")
	require.NoError(t, err)
	assert.Equal(t, "Take a ten minute walk after lunch.", tip)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "hypertension")
}

func TestClient_Generate_EmptyProfileUsesGenericPrompt(t *testing.T) {
	var gotReq chatRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Drink water."}}]}`))
	})

	_, err := c.Generate(context.Background(), "")
	require.NoError(t, err)
	assert.Contains(t, gotReq.Messages[1].Content, "general wellness tip")
}

func TestClient_Generate_EmptyCompletion(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := c.Generate(context.Background(), "summary")
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestClient_Generate_UpstreamError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Generate(context.Background(), "summary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 429")
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(ClientOptions{Model: "gpt-4o-mini"})
	require.Error(t, err)

	_, err = NewClient(ClientOptions{BaseURL: "http://localhost"})
	require.Error(t, err)
}
