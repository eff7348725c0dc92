package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dom/power-league-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RevalidateResponse struct {
	Revalidated []string `json:"revalidated"`
}

func postRevalidate(t *testing.T, ts *testutil.TestServer, token, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.APIURL("/revalidate"), strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRevalidateHandler_Auth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authorization header required",
		},
		{
			name:           "bad token",
			token:          "not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postRevalidate(t, ts, tt.token, `{"_type":"motd"}`)
			testutil.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedBody)
		})
	}
}

func TestRevalidateHandler_RefreshesContent(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.CMS.SetResult(t, "powerLeague", []map[string]any{{"title": "Spring 2026"}})

	resp, err := http.Get(ts.APIURL("/leagues"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 1, ts.CMS.Hits("powerLeague"))

	ts.CMS.SetResult(t, "powerLeague", []map[string]any{{"title": "Spring 2026"}, {"title": "Fall 2026"}})

	revalidate := postRevalidate(t, ts, ts.WebhookToken(t), `{"_type":"powerLeague"}`)
	testutil.AssertStatusCode(t, revalidate, http.StatusOK)

	var result RevalidateResponse
	testutil.AssertJSONResponse(t, revalidate, &result)
	assert.ElementsMatch(t, []string{"leagues", "league-links"}, result.Revalidated)

	resp, err = http.Get(ts.APIURL("/leagues"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var links []LeagueLinkResponse
	testutil.AssertJSONResponse(t, resp, &links)
	assert.Len(t, links, 2)
	assert.Equal(t, 2, ts.CMS.Hits("powerLeague"))
}

func TestRevalidateHandler_Body(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token := ts.WebhookToken(t)

	t.Run("empty body revalidates everything", func(t *testing.T) {
		resp := postRevalidate(t, ts, token, "")
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result RevalidateResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Len(t, result.Revalidated, 4)
	})

	t.Run("unknown type", func(t *testing.T) {
		resp := postRevalidate(t, ts, token, `{"_type":"sponsor"}`)
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Unknown document type")
	})

	t.Run("invalid json", func(t *testing.T) {
		resp := postRevalidate(t, ts, token, `{"_type":`)
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid request body")
	})
}

func TestRevalidateHandler_DisabledWithoutSecret(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.RevalidateSecret = ""
	ts := testutil.NewTestServerWithConfig(t, cfg)

	resp := postRevalidate(t, ts, "", `{}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
