package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapboxStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func featureResponse(lon, lat float64, fullAddress string) map[string]interface{} {
	return map[string]interface{}{
		"features": []map[string]interface{}{
			{
				"geometry":   map[string]interface{}{"coordinates": []float64{lon, lat}},
				"properties": map[string]interface{}{"full_address": fullAddress},
			},
		},
	}
}

func TestGeocode_NotConfigured(t *testing.T) {
	c := &MapboxClient{}
	_, err := c.Geocode(context.Background(), "845 S 3rd St, Louisville")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGeocode_Success(t *testing.T) {
	srv := mapboxStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/geocode/v6/forward", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.NotEmpty(t, r.URL.Query().Get("proximity"))
		json.NewEncoder(w).Encode(featureResponse(-85.76, 38.25, "845 S 3rd St, Louisville, KY 40203"))
	})

	c := &MapboxClient{Token: "pk.test", BaseURL: srv.URL}
	res, err := c.Geocode(context.Background(), "845 s 3rd st louisville")
	require.NoError(t, err)
	assert.Equal(t, -85.76, res.Longitude)
	assert.Equal(t, 38.25, res.Latitude)
	assert.Equal(t, "845 S 3rd St, Louisville, KY 40203", res.FormattedAddress)
}

func TestGeocode_FormattedAddressFallsBackToInput(t *testing.T) {
	srv := mapboxStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(featureResponse(-85.76, 38.25, ""))
	})

	c := &MapboxClient{Token: "pk.test", BaseURL: srv.URL}
	res, err := c.Geocode(context.Background(), "845 s 3rd st")
	require.NoError(t, err)
	assert.Equal(t, "845 s 3rd st", res.FormattedAddress)
}

func TestGeocode_RateLimited(t *testing.T) {
	srv := mapboxStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	c := &MapboxClient{Token: "pk.test", BaseURL: srv.URL}
	_, err := c.Geocode(context.Background(), "anywhere")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGeocode_Unavailable(t *testing.T) {
	srv := mapboxStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	c := &MapboxClient{Token: "pk.test", BaseURL: srv.URL}
	_, err := c.Geocode(context.Background(), "anywhere")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGeocode_NoCandidates(t *testing.T) {
	srv := mapboxStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"features": []interface{}{}})
	})
	c := &MapboxClient{Token: "pk.test", BaseURL: srv.URL}
	_, err := c.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGeocode_OutOfRegion(t *testing.T) {
	// Nashville resolves fine at the provider but must be rejected here.
	srv := mapboxStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(featureResponse(-86.7816, 36.1627, "Nashville, TN"))
	})
	c := &MapboxClient{Token: "pk.test", BaseURL: srv.URL}
	_, err := c.Geocode(context.Background(), "nashville tn")
	assert.ErrorIs(t, err, ErrOutOfRegion)
}

func TestGeocode_CacheServesRepeatLookups(t *testing.T) {
	var calls int32
	srv := mapboxStub(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(featureResponse(-85.76, 38.25, "845 S 3rd St"))
	})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := &MapboxClient{
		Token:   "pk.test",
		BaseURL: srv.URL,
		Cache:   &Cache{Rdb: rdb, TTL: time.Hour},
	}

	first, err := c.Geocode(context.Background(), "845 S 3rd St")
	require.NoError(t, err)
	// Same address, different whitespace/case — normalized to the same key.
	second, err := c.Geocode(context.Background(), "  845  s 3RD st ")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, first, second)

	// After the TTL the provider is consulted again.
	mr.FastForward(2 * time.Hour)
	_, err = c.Geocode(context.Background(), "845 S 3rd St")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestIsAddressError(t *testing.T) {
	assert.True(t, IsAddressError(ErrOutOfRegion))
	assert.True(t, IsAddressError(ErrNotFound))
	assert.False(t, IsAddressError(context.DeadlineExceeded))
}
