package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/ent/enttest"
	"github.com/leadrouter/crm-backend/pkg/assignment"
	"github.com/leadrouter/crm-backend/pkg/ingest"
	"github.com/leadrouter/crm-backend/pkg/rules"
)

const testWebhookSecret = "whsec_test_1234"

// setupWebhookTest creates a workspace with one active agent and returns
// a ready-to-use handler.
func setupWebhookTest(t *testing.T) (*ent.Client, *ent.Workspace, *WebhookHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetName("Test Workspace").
		SetWebhookSecret(testWebhookSecret).
		Save(ctx)
	require.NoError(t, err)

	agent, err := client.User.Create().
		SetName("Agent One").
		SetEmail("agent@test.com").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.WorkspaceMember.Create().
		SetWorkspaceID(ws.ID).
		SetUserID(agent.ID).
		Save(ctx)
	require.NoError(t, err)

	ingestor := ingest.NewIngestor(client, rules.NewStore(client, nil), assignment.NewResolver(), nil, "IN")
	handler := NewWebhookHandler(client, ingestor, nil)
	return client, ws, handler
}

func postWebhook(handler *WebhookHandler, workspaceID string, secret, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/"+workspaceID+"/leads", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if secret != "" {
		req.Header.Set("X-Webhook-Secret", secret)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("workspace_id")
	c.SetParamValues(workspaceID)

	_ = handler.IngestLead(c)
	return rec
}

func TestWebhookIngest_CreatesLead(t *testing.T) {
	client, ws, handler := setupWebhookTest(t)
	defer client.Close()

	rec := postWebhook(handler, strconv.Itoa(ws.ID), testWebhookSecret,
		`{"firstName": "Ravi", "phone": "9876543210", "source": "fb"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Event-ID"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "created", response["action"])

	lead := response["lead"].(map[string]interface{})
	assert.Equal(t, "Ravi", lead["first_name"])
	assert.Equal(t, "+919876543210", lead["phone"])
	assert.Equal(t, "FACEBOOK", lead["source"])
}

func TestWebhookIngest_DuplicateMergesWith200(t *testing.T) {
	client, ws, handler := setupWebhookTest(t)
	defer client.Close()

	first := postWebhook(handler, strconv.Itoa(ws.ID), testWebhookSecret,
		`{"firstName": "Ravi", "phone": "9876543210"}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postWebhook(handler, strconv.Itoa(ws.ID), testWebhookSecret,
		`{"firstName": "Ravi", "phone": "+91 98765 43210", "email": "ravi@test.com"}`)
	assert.Equal(t, http.StatusOK, second.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &response))
	assert.Equal(t, "updated", response["action"])

	count, err := client.Lead.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWebhookIngest_WrongSecretRejected(t *testing.T) {
	client, ws, handler := setupWebhookTest(t)
	defer client.Close()

	rec := postWebhook(handler, strconv.Itoa(ws.ID), "whsec_wrong",
		`{"firstName": "Ravi", "phone": "9876543210"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postWebhook(handler, strconv.Itoa(ws.ID), "",
		`{"firstName": "Ravi", "phone": "9876543210"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	count, err := client.Lead.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestWebhookIngest_MissingPhoneRejected(t *testing.T) {
	client, ws, handler := setupWebhookTest(t)
	defer client.Close()

	rec := postWebhook(handler, strconv.Itoa(ws.ID), testWebhookSecret,
		`{"firstName": "Ravi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookIngest_UnknownWorkspace(t *testing.T) {
	client, _, handler := setupWebhookTest(t)
	defer client.Close()

	rec := postWebhook(handler, "9999", testWebhookSecret,
		`{"firstName": "Ravi", "phone": "9876543210"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
