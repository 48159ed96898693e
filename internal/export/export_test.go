package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/pennyflow/internal/api"
)

const csvBody = "date,type,amount,description,category\n2025-01-02,expense,5.00,Coffee,Food\n"

func exportServer(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/export", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csvBody))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotQuery
}

func TestRun_WritesFile(t *testing.T) {
	srv, _ := exportServer(t)
	client := api.NewClient(srv.URL, time.Second)
	out := filepath.Join(t.TempDir(), "export.csv")

	n, err := Run(context.Background(), client, Options{OutputPath: out})
	require.NoError(t, err)
	assert.Equal(t, int64(len(csvBody)), n)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, csvBody, string(data))
}

func TestRun_PassesDateRange(t *testing.T) {
	srv, query := exportServer(t)
	client := api.NewClient(srv.URL, time.Second)

	_, err := Run(context.Background(), client, Options{
		OutputPath: filepath.Join(t.TempDir(), "export.csv"),
		Range:      api.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-31"},
	})
	require.NoError(t, err)

	assert.Equal(t, "end_date=2025-01-31&start_date=2025-01-01", *query)
}

func TestRun_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL, time.Second)
	out := filepath.Join(t.TempDir(), "export.csv")

	_, err := Run(context.Background(), client, Options{OutputPath: out})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
