package rooster

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"preekrooster/feature/rooster/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, provider *fakeProvider, rows RowSource) *fiber.App {
	app := fiber.New()
	svc := newTestService(t, rows, provider)
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleStatus_NoRunYet(t *testing.T) {
	app := setupTestApp(t, &fakeProvider{}, &fakeRowSource{})

	req := httptest.NewRequest("GET", "/rooster/status", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["status"], "no run")
}

func TestHandleRun(t *testing.T) {
	rows := &fakeRowSource{rows: []models.ServiceRow{
		serviceRow(1, 9, "09.30"),
	}}
	app := setupTestApp(t, &fakeProvider{}, rows)

	req := httptest.NewRequest("POST", "/rooster/run", nil)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 1, summary.Created)
	assert.NotEmpty(t, summary.RunID)

	// The status endpoint now reports the same run.
	req = httptest.NewRequest("GET", "/rooster/status", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)

	var last Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&last))
	assert.Equal(t, summary.RunID, last.RunID)
}
