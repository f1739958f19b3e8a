package hostedclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
)

func TestFetchRows_RejectsTableOutsideAllowList(t *testing.T) {
	client := NewClient(config.HostedBackend{URL: "http://localhost", APIKey: "key"})

	_, err := client.FetchRows(context.Background(), "payments", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTableNotAllowed)
}

func TestFetchRows_NotConfigured(t *testing.T) {
	client := NewClient(config.HostedBackend{})

	_, err := client.FetchRows(context.Background(), "goals", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFetchRows_SendsKeyAndFilters(t *testing.T) {
	var gotPath, gotKey, gotAuth string
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"g1"},{"id":"g2"}]`))
	}))
	defer server.Close()

	client := NewClient(config.HostedBackend{URL: server.URL, APIKey: "anon-key"})

	rows, err := client.FetchRows(context.Background(), "goals", url.Values{"restaurant_id": {"eq.rest-1"}})
	require.NoError(t, err)

	assert.Len(t, rows, 2)
	assert.Equal(t, "/rest/v1/goals", gotPath)
	assert.Equal(t, "anon-key", gotKey)
	assert.Equal(t, "Bearer anon-key", gotAuth)
	assert.Equal(t, "eq.rest-1", gotQuery.Get("restaurant_id"))
	assert.Equal(t, "*", gotQuery.Get("select"))
	assert.Equal(t, "0", gotQuery.Get("offset"))
}

func TestFetchRows_Paginates(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		count := pageSize
		if offset > 0 {
			count = 3
		}

		items := make([]string, 0, count)
		for i := 0; i < count; i++ {
			items = append(items, fmt.Sprintf(`{"id":"%d"}`, offset+i))
		}
		_, _ = w.Write([]byte("[" + strings.Join(items, ",") + "]"))
	}))
	defer server.Close()

	client := NewClient(config.HostedBackend{URL: server.URL, APIKey: "key"})

	rows, err := client.FetchRows(context.Background(), "cash_flow", nil)
	require.NoError(t, err)
	assert.Len(t, rows, pageSize+3)
	assert.Equal(t, 2, calls)
}

func TestFetchRows_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(config.HostedBackend{URL: server.URL, APIKey: "key"})

	_, err := client.FetchRows(context.Background(), "inventory", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
