package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	auction "art-auction/internal/auctionService"
	"art-auction/internal/repository"
	"art-auction/internal/server"
	"art-auction/services/auction/helpers"
)

var testDBSeq int64

// SetupTestRouter initializes the router against a fresh in-memory database.
// An empty adminToken leaves the admin routes open, matching the default config.
func SetupTestRouter(t *testing.T, adminToken string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:integration_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := repository.Open("sqlite", dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := repository.NewGormStore(db)
	service := auction.NewAuctionService(store)
	return server.SetupRouter(service, adminToken)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses
// the response envelope into a map.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, headers map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := ExecuteRequest(t, router, method, url, reqBody, headers)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "expected object in data field, got %v", resp["data"])
	return data
}

// createApprovedSubmission drives the public API to create and approve a
// submission, returning its id.
func createApprovedSubmission(t *testing.T, router *gin.Engine, adminHeaders map[string]string) int64 {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/submissions", helpers.CreateSubmissionRequest{
		ArtistName:    "SharkBoy",
		WalletAddress: "0x1234567890abcdef",
		ArtworkURL:    "https://example.com/shark.png",
		Description:   "Digital painting of oceanic shifts",
		ReservePrice:  "0.1",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	id := int64(dataObject(t, resp)["id"].(float64))

	_, w = ExecuteRequestAndParse(t, router, http.MethodPatch, fmt.Sprintf("/api/submissions/%d", id),
		map[string]any{"status": "approved"}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	return id
}

// openAuction creates an auction for the given submission via the API.
func openAuction(t *testing.T, router *gin.Engine, submissionID int64, endTime time.Time, adminHeaders map[string]string) int64 {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/auctions", map[string]any{
		"submissionId": submissionID,
		"endTime":      endTime.Format(time.RFC3339Nano),
	}, adminHeaders)
	require.Equal(t, http.StatusCreated, w.Code)

	return int64(dataObject(t, resp)["id"].(float64))
}
