package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "CommunityMapApp/1.0"

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, testUserAgent, 2*time.Second), srv
}

func TestSearch_Success(t *testing.T) {
	// Подготовка: заглушка Nominatim, координаты приходят строками
	var gotPath, gotUserAgent string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"display_name":"Flinders Street Station","lat":"-37.8183","lon":"144.9671"}]`))
	})
	defer srv.Close()

	// Действие
	locations, err := client.Search(context.Background(), "Flinders Street")

	// Проверки
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Flinders Street Station", locations[0].DisplayName)
	assert.InDelta(t, -37.8183, locations[0].Latitude, 1e-9)
	assert.InDelta(t, 144.9671, locations[0].Longitude, 1e-9)

	assert.Contains(t, gotPath, "q=Flinders+Street")
	assert.Contains(t, gotPath, "limit=5")
	assert.Equal(t, testUserAgent, gotUserAgent)
}

func TestSearch_EmptyResult(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	locations, err := client.Search(context.Background(), "nowhere")

	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestSearch_UpstreamError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer srv.Close()

	_, err := client.Search(context.Background(), "Flinders Street")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestReverse_Success(t *testing.T) {
	var gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Write([]byte(`{"display_name":"Собор Святого Павла","lat":"-37.8170","lon":"144.9674"}`))
	})
	defer srv.Close()

	loc, err := client.Reverse(context.Background(), -37.8170, 144.9674)

	require.NoError(t, err)
	assert.Equal(t, "Собор Святого Павла", loc.DisplayName)
	assert.Contains(t, gotPath, "lat=-37.817")
	assert.Contains(t, gotPath, "lon=144.9674")
}

func TestSearch_ContextCancelled(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "Flinders Street")

	assert.Error(t, err)
}
