package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	// Error responses are plain text in this API
	assert.Contains(t, string(body), expectedMessage, "error message mismatch")
}

// GetPage fetches url and parses the HTML response
func GetPage(t *testing.T, url string) (*http.Response, *goquery.Document) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err, "failed to parse HTML")

	return resp, doc
}

// AssertSelectionCount checks how many elements match selector
func AssertSelectionCount(t *testing.T, doc *goquery.Document, selector string, expected int) {
	t.Helper()
	assert.Equal(t, expected, doc.Find(selector).Length(), "unexpected number of %q elements", selector)
}

// AssertText checks the trimmed text of the first element matching selector
func AssertText(t *testing.T, doc *goquery.Document, selector string, expected string) {
	t.Helper()

	sel := doc.Find(selector).First()
	require.Equal(t, 1, sel.Length(), "no element matches %q", selector)
	assert.Equal(t, expected, normalizeSpace(sel.Text()))
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
