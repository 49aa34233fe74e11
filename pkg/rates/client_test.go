package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestPrimary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/EUR", r.URL.Path)
		w.Write([]byte(`{"base":"EUR","date":"2026-09-01","rates":{"RUB":98.5,"USD":1.07}}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithFallbackURL("http://127.0.0.1:0"))

	rates, err := c.Latest(context.Background(), "eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", rates.Base)
	assert.Equal(t, 98.5, rates.Rates["RUB"])
}

func TestLatestFallsBackToCBR(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer primary.Close()

	cbr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Date":"2026-09-01T11:30:00+03:00","Valute":{
			"EUR":{"Nominal":1,"Value":98.0},
			"USD":{"Nominal":1,"Value":91.0}
		}}`))
	}))
	defer cbr.Close()

	c := NewClient(WithBaseURL(primary.URL), WithFallbackURL(cbr.URL))

	rates, err := c.Latest(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", rates.Base)
	assert.InDelta(t, 98.0, rates.Rates["RUB"], 1e-9)
	assert.InDelta(t, 98.0/91.0, rates.Rates["USD"], 1e-9)
}

func TestLatestStaticFallback(t *testing.T) {
	c := NewClient(WithBaseURL("http://127.0.0.1:0"), WithFallbackURL("http://127.0.0.1:0"))

	rates, err := c.Latest(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Greater(t, rates.Rates["RUB"], 0.0)

	_, err = c.Latest(context.Background(), "XXX")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	r := &Rates{Base: "EUR", Rates: map[string]float64{"RUB": 100}}

	got, err := r.Convert(25, "RUB")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, got)

	same, err := r.Convert(25, "EUR")
	require.NoError(t, err)
	assert.Equal(t, 25.0, same)

	_, err = r.Convert(25, "JPY")
	assert.Error(t, err)
}
