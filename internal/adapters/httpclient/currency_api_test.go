package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefx/internal/domain"
	"storefx/internal/rate"

	"github.com/stretchr/testify/require"
)

var usdTry = domain.CurrencyPair{Base: "USD", Target: "TRY"}

func newTestClient(srv *httptest.Server) *CurrencyAPIClient {
	return NewCurrencyAPIClient(srv.Client(), srv.URL, rate.NewValidator(20, 50))
}

func TestCurrencyAPIClient_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "date": "2026-02-07",
            "usd": {"try": 43.61244666, "eur": 0.92}
        }`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)

	value, err := c.FetchLatest(context.Background(), usdTry)
	require.NoError(t, err)
	require.Equal(t, "/v1/currencies/usd.json", gotPath)
	require.InDelta(t, 43.61244666, value, 1e-9)
}

func TestCurrencyAPIClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)

	_, err := c.FetchLatest(context.Background(), usdTry)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
	require.Contains(t, err.Error(), "unexpected status code 503")
}

func TestCurrencyAPIClient_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewCurrencyAPIClient(&http.Client{}, srv.URL, rate.NewValidator(20, 50))

	_, err := c.FetchLatest(context.Background(), usdTry)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestCurrencyAPIClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)

	_, err := c.FetchLatest(context.Background(), usdTry)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrBadPayload)
}

func TestCurrencyAPIClient_MissingBaseSection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"date": "2026-02-07", "eur": {"try": 47.1}}`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)

	_, err := c.FetchLatest(context.Background(), usdTry)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrBadPayload)
	require.Contains(t, err.Error(), `missing "usd" section`)
}

func TestCurrencyAPIClient_MissingTargetRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"date": "2026-02-07", "usd": {"eur": 0.92}}`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)

	_, err := c.FetchLatest(context.Background(), usdTry)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrBadPayload)
}

func TestCurrencyAPIClient_NonNumericRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"date": "2026-02-07", "usd": {"try": "a lot"}}`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)

	_, err := c.FetchLatest(context.Background(), usdTry)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrBadPayload)
}

func TestCurrencyAPIClient_ImplausibleRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"date": "2026-02-07", "usd": {"try": 5.0}}`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)

	_, err := c.FetchLatest(context.Background(), usdTry)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrImplausibleRate)
	require.Contains(t, err.Error(), "outside [20, 50]")
}

func TestCurrencyAPIClient_BaseURLParseError(t *testing.T) {
	c := NewCurrencyAPIClient(&http.Client{}, "http://::1]", rate.NewValidator(20, 50))
	_, err := c.FetchLatest(context.Background(), usdTry)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse base URL")
}
