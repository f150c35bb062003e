package healthfinder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

const sampleResponse = `{
  "Result": {
    "Error": "False",
    "Total": 2,
    "Resources": {
      "Resource": [
        {
          "Id": "30",
          "Title": "Keep Your Heart Healthy",
          "AccessibleVersion": "https://odphp.health.gov/myhealthfinder/heart-healthy",
          "Sections": {
            "section": [
              {"Title": "The Basics", "Description": "Take steps to protect your heart."}
            ]
          }
        },
        {
          "Id": "25",
          "Title": "Get Active",
          "AccessibleVersion": "https://odphp.health.gov/myhealthfinder/get-active",
          "Sections": {"section": []}
        }
      ]
    }
  }
}`

func TestClient_Search(t *testing.T) {
	var gotKeyword string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/topicsearch.json", r.URL.Path)
		gotKeyword = r.URL.Query().Get("keyword")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{BaseURL: srv.URL, RequestsPerSecond: 100})

	resources, err := c.Search(context.Background(), "heart health", 5)
	require.NoError(t, err)
	assert.Equal(t, "heart health", gotKeyword)

	require.Len(t, resources, 2)
	assert.Equal(t, model.Resource{
		Source:  model.SourceHealthFinder,
		Title:   "Keep Your Heart Healthy",
		URL:     "https://odphp.health.gov/myhealthfinder/heart-healthy",
		Snippet: "Take steps to protect your heart.",
	}, resources[0])

	// Second resource has no sections; snippet stays empty.
	assert.Equal(t, "Get Active", resources[1].Title)
	assert.Empty(t, resources[1].Snippet)
}

func TestClient_Search_LimitTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{BaseURL: srv.URL, RequestsPerSecond: 100})

	resources, err := c.Search(context.Background(), "heart", 1)
	require.NoError(t, err)
	require.Len(t, resources, 1)
}

func TestClient_Search_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Result": {"Error": "False", "Total": 0}}`))
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{BaseURL: srv.URL, RequestsPerSecond: 100})

	resources, err := c.Search(context.Background(), "zzz", 5)
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestClient_Search_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{BaseURL: srv.URL, RequestsPerSecond: 100})

	_, err := c.Search(context.Background(), "heart", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, model.SourceHealthFinder, NewClient(ClientOptions{}).Name())
}

func TestNewClient_ProjectionUsable(t *testing.T) {
	// The compiled projection is held as the library's interface type; make
	// sure a fresh client can evaluate it directly against a decoded envelope.
	c := NewClient(ClientOptions{})
	require.NotNil(t, c.projection)

	var payload any
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &payload))

	projected, err := c.projection.Search(payload)
	require.NoError(t, err)

	items, ok := projected.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Keep Your Heart Healthy", first["title"])
}
