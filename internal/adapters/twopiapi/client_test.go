package twopiapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twopi/moneycore/internal/adapters/twopiapi"
	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
)

func TestListCurrencies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/currency", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"code":"USD","name":"US Dollar","decimal_digits":2},
			{"code":"JPY","name":"Japanese Yen","decimal_digits":0}
		]`))
	}))
	defer server.Close()

	client := twopiapi.New(server.URL)
	currencies, err := client.ListCurrencies(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Currency{
		{Code: "USD", Name: "US Dollar", DecimalDigits: 2},
		{Code: "JPY", Name: "Japanese Yen", DecimalDigits: 0},
	}, currencies)
}

func TestListCurrencies_InvalidPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Code longer than 3 letters must be rejected before reaching the core.
		w.Write([]byte(`[{"code":"DOLLARS","name":"US Dollar","decimal_digits":2}]`))
	}))
	defer server.Close()

	client := twopiapi.New(server.URL)
	currencies, err := client.ListCurrencies(context.Background())

	require.Error(t, err)
	assert.Nil(t, currencies)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFindCurrencyByCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/currency/USD":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"code":"USD","name":"US Dollar","decimal_digits":2}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := twopiapi.New(server.URL)

	t.Run("found, case-insensitive", func(t *testing.T) {
		currency, err := client.FindCurrencyByCode(context.Background(), "usd")
		require.NoError(t, err)
		assert.Equal(t, &domain.Currency{Code: "USD", Name: "US Dollar", DecimalDigits: 2}, currency)
	})

	t.Run("not found", func(t *testing.T) {
		currency, err := client.FindCurrencyByCode(context.Background(), "XXX")
		require.Error(t, err)
		assert.Nil(t, currency)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("bad code", func(t *testing.T) {
		currency, err := client.FindCurrencyByCode(context.Background(), "DOLLARS")
		require.Error(t, err)
		assert.Nil(t, currency)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestUpsertAccount(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/account", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := twopiapi.New(server.URL)
	id, err := client.UpsertAccount(context.Background(), domain.Account{
		Name:            "Checking",
		AccountType:     domain.Bank,
		CurrencyCode:    "USD",
		StartingBalance: 100000,
		IsCashFlow:      true,
		IsActive:        true,
	})

	require.NoError(t, err)
	// A missing ID is generated client-side and sent upstream.
	require.NoError(t, uuid.Validate(id))
	assert.Equal(t, id, received["id"])
	assert.Equal(t, "Bank", received["account_type"])
	assert.NotEmpty(t, received["created_at"])
}

func TestUpsertAccount_InvalidType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server for an invalid account type")
	}))
	defer server.Close()

	client := twopiapi.New(server.URL)
	_, err := client.UpsertAccount(context.Background(), domain.Account{
		Name:         "Checking",
		AccountType:  "Mattress",
		CurrencyCode: "USD",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListTransactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": "txn-1",
			"title": "Weekly shop",
			"timestamp": "2025-03-02T10:00:00Z",
			"items": [
				{"id":"item-1","account_id":"acc-1","amount":-5000,"category_id":"cat-1"},
				{"id":"item-2","account_id":"acc-1","amount":2000,"category_id":null}
			]
		}]`))
	}))
	defer server.Close()

	client := twopiapi.New(server.URL)
	transactions, err := client.ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Len(t, transactions[0].Items, 2)
	require.NotNil(t, transactions[0].Items[0].CategoryID)
	assert.Equal(t, "cat-1", *transactions[0].Items[0].CategoryID)
	assert.Nil(t, transactions[0].Items[1].CategoryID)
	assert.Equal(t, int64(-5000), transactions[0].Items[0].Amount)
}

func TestRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/currency-cache/latest":
			w.Write([]byte(`{"data":{"USD":{"code":"USD","value":1},"INR":{"code":"INR","value":84.5}}}`))
		case "/currency-cache/historical":
			require.Equal(t, "2025-03-01", r.URL.Query().Get("date"))
			w.Write([]byte(`{"data":{"USD":{"code":"USD","value":1}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := twopiapi.New(server.URL)

	t.Run("latest", func(t *testing.T) {
		rates, err := client.LatestRates(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.RateSnapshot{
			"USD": {Code: "USD", Value: 1},
			"INR": {Code: "INR", Value: 84.5},
		}, rates)
	})

	t.Run("historical", func(t *testing.T) {
		rates, err := client.HistoricalRates(context.Background(), "2025-03-01")
		require.NoError(t, err)
		assert.Equal(t, domain.RateSnapshot{"USD": {Code: "USD", Value: 1}}, rates)
	})
}

func TestErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad date", http.StatusBadRequest)
	}))
	defer server.Close()

	client := twopiapi.New(server.URL)
	_, err := client.HistoricalRates(context.Background(), "not-a-date")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "bad date")
}
