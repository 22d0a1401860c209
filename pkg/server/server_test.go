package server

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/api"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/analysis"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyBytes(t *testing.T) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)

	_, err = db.Exec(`
		CREATE TABLE ORDER_HISTORY (
			CNP TEXT, DESCRICAO TEXT, QT_TARGET TEXT, QT_STOCK TEXT,
			QT_A_ENCOMENDAR TEXT, QT_DISPONIVEL TEXT, QT_ENCOMENDADA TEXT,
			FORNECEDOR TEXT, TIME_STAMP TEXT
		)`)
	require.NoError(t, err)

	rows := [][]any{
		{"12345", "Paracetamol 500mg", "10", "4", "6", "20", "6", "Alliance", "2024-03-01 09:00:00"},
		{"12345", "Paracetamol 500mg", "10", "4", "0", "20", "50", "Alliance", "2024-03-01 09:10:00"},
		{"67890", "Ibuprofen 400mg", "5", "5", "0", "12", "0", "", "2024-03-01 11:00:00"},
	}
	for _, r := range rows {
		_, err = db.Exec(`INSERT INTO ORDER_HISTORY VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, r...)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return raw
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Analysis: analysis.NewController(analysis.DefaultConfig()),
		},
	})
	testServer := httptest.NewServer(webAPI.router)
	defer testServer.Close()

	resp, err := http.Post(testServer.URL+"/api/v1/datasets", "application/octet-stream", bytes.NewReader(historyBytes(t)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ds api.Dataset
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ds))
	require.NotEmpty(t, ds.ID)
	assert.Equal(t, 3, ds.Rows)
	assert.Equal(t, 2, ds.Products)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		check          func(t *testing.T, body *json.Decoder)
	}{
		{
			name:           "GetROI",
			path:           "/api/v1/datasets/" + ds.ID + "/roi",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body *json.Decoder) {
				var summary api.ROISummary
				require.NoError(t, body.Decode(&summary))
				assert.Equal(t, 2, summary.Sessions)
				assert.Equal(t, 3, summary.Iterations)
				assert.InDelta(t, 560.0/3600.0, summary.Hours, 1e-9)
			},
		},
		{
			name:           "GetROI_FilteredToNothing",
			path:           "/api/v1/datasets/" + ds.ID + "/roi?from=01-01-2025",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body *json.Decoder) {
				var summary api.ROISummary
				require.NoError(t, body.Decode(&summary))
				assert.Equal(t, api.ROISummary{}, summary)
			},
		},
		{
			name:           "ListProducts",
			path:           "/api/v1/datasets/" + ds.ID + "/products",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body *json.Decoder) {
				var products []api.Product
				require.NoError(t, body.Decode(&products))
				require.Len(t, products, 2)
				assert.Equal(t, "12345 - Paracetamol 500mg", products[0].Display)
			},
		},
		{
			name:           "ListRecords",
			path:           "/api/v1/datasets/" + ds.ID + "/records",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body *json.Decoder) {
				var records []api.OrderRecord
				require.NoError(t, body.Decode(&records))
				assert.Len(t, records, 3)
			},
		},
		{
			name:           "GetProductAudit",
			path:           "/api/v1/datasets/" + ds.ID + "/products/12345/audit",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body *json.Decoder) {
				var a api.ProductAudit
				require.NoError(t, body.Decode(&a))
				assert.Equal(t, 2, a.Verifications)
				assert.Equal(t, 6, a.UnitsOrdered)
			},
		},
		{
			name:           "UnknownDataset",
			path:           "/api/v1/datasets/unknown/roi",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			if tc.check != nil {
				tc.check(t, json.NewDecoder(resp.Body))
			}
		})
	}
}

func TestWebAPI_UploadRejectsUnreadableSource(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	webAPI := NewWebAPI(logger, Config{
		Addr: ":8080",
		Dependencies: Dependencies{
			Analysis: analysis.NewController(analysis.DefaultConfig()),
		},
	})
	testServer := httptest.NewServer(webAPI.router)
	defer testServer.Close()

	resp, err := http.Post(testServer.URL+"/api/v1/datasets", "application/octet-stream",
		bytes.NewReader([]byte("not a sqlite file")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
