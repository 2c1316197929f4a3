package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/seat-allocator/internal/seating"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch nested := m[k].(type) {
		case map[string]any:
			cleanMap(nested)
		case []any:
			for _, item := range nested {
				if itemMap, ok := item.(map[string]any); ok {
					cleanMap(itemMap)
				}
			}
		}
	}
}

// insertTestChart stores a chart with the test dimensions and the given
// zero-indexed seats reserved.
func insertTestChart(t testing.TB, app *TestApp, reserved [][2]int) string {
	t.Helper()

	chart := seating.New(TestRows, TestCols, TestMaxBlockSize)
	for _, seat := range reserved {
		chart.Reserve(seat[0], seat[1])
	}

	id, err := app.Charts.Create(context.Background(), chart)
	require.NoError(t, err)

	return id
}

func remainingSeats(t testing.TB, app *TestApp, chartID string) int {
	t.Helper()

	var remaining int
	err := app.Charts.View(context.Background(), chartID, func(chart *seating.Chart) error {
		remaining = chart.RemainingSeats()
		return nil
	})
	require.NoError(t, err)

	return remaining
}
