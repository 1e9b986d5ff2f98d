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
	"github.com/leadrouter/crm-backend/ent/workspacemember"
)

func setupRulesTest(t *testing.T) (*ent.Client, *ent.Workspace, *ent.User, *RulesHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetName("Test Workspace").
		SetWebhookSecret("whsec_rules").
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

	return client, ws, agent, NewRulesHandler(client)
}

func rulesContext(method, body string, paramNames, paramValues []string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)
	return c, rec
}

func TestCreateRule(t *testing.T) {
	client, ws, agent, handler := setupRulesTest(t)
	defer client.Close()

	body := `{"source": "FACEBOOK", "assignment_type": "specific", "assignee_id": ` + strconv.Itoa(agent.ID) + `, "priority": 10}`
	c, rec := rulesContext(http.MethodPost, body, []string{"workspace_id"}, []string{strconv.Itoa(ws.ID)})

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response RuleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "specific", response.AssignmentType)
	assert.Equal(t, agent.ID, response.AssigneeID)
	require.NotNil(t, response.Source)
	assert.Equal(t, "FACEBOOK", *response.Source)
	assert.True(t, response.IsEnabled)
}

func TestCreateRule_InvalidAssignmentType(t *testing.T) {
	client, ws, agent, handler := setupRulesTest(t)
	defer client.Close()

	body := `{"assignment_type": "random", "assignee_id": ` + strconv.Itoa(agent.ID) + `}`
	c, rec := rulesContext(http.MethodPost, body, []string{"workspace_id"}, []string{strconv.Itoa(ws.ID)})

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRule_AssigneeNotAMember(t *testing.T) {
	client, ws, _, handler := setupRulesTest(t)
	defer client.Close()

	outsider, err := client.User.Create().
		SetName("Outsider").
		SetEmail("outsider@test.com").
		Save(context.Background())
	require.NoError(t, err)

	body := `{"assignment_type": "round_robin", "assignee_id": ` + strconv.Itoa(outsider.ID) + `}`
	c, rec := rulesContext(http.MethodPost, body, []string{"workspace_id"}, []string{strconv.Itoa(ws.ID)})

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not an active member")
}

func TestCreateRule_SuspendedAssigneeRejected(t *testing.T) {
	client, ws, agent, handler := setupRulesTest(t)
	defer client.Close()

	ctx := context.Background()
	_, err := client.WorkspaceMember.Update().
		Where(workspacemember.UserIDEQ(agent.ID)).
		SetStatus(workspacemember.StatusSuspended).
		Save(ctx)
	require.NoError(t, err)

	body := `{"assignment_type": "specific", "assignee_id": ` + strconv.Itoa(agent.ID) + `}`
	c, rec := rulesContext(http.MethodPost, body, []string{"workspace_id"}, []string{strconv.Itoa(ws.ID)})

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRules_OrderedByPriority(t *testing.T) {
	client, ws, agent, handler := setupRulesTest(t)
	defer client.Close()

	ctx := context.Background()
	_, err := client.AssignmentRule.Create().
		SetWorkspaceID(ws.ID).
		SetAssignmentType("round_robin").
		SetAssigneeID(agent.ID).
		SetPriority(20).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.AssignmentRule.Create().
		SetWorkspaceID(ws.ID).
		SetSource("GOOGLE").
		SetAssignmentType("specific").
		SetAssigneeID(agent.ID).
		SetPriority(5).
		Save(ctx)
	require.NoError(t, err)

	c, rec := rulesContext(http.MethodGet, "", []string{"workspace_id"}, []string{strconv.Itoa(ws.ID)})
	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response []RuleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, 5, response[0].Priority)
	assert.Equal(t, 20, response[1].Priority)
}

func TestUpdateRule_ClearsSource(t *testing.T) {
	client, ws, agent, handler := setupRulesTest(t)
	defer client.Close()

	rule, err := client.AssignmentRule.Create().
		SetWorkspaceID(ws.ID).
		SetSource("FACEBOOK").
		SetAssignmentType("specific").
		SetAssigneeID(agent.ID).
		Save(context.Background())
	require.NoError(t, err)

	body := `{"assignment_type": "round_robin", "assignee_id": ` + strconv.Itoa(agent.ID) + `, "priority": 15}`
	c, rec := rulesContext(http.MethodPut, body,
		[]string{"workspace_id", "id"},
		[]string{strconv.Itoa(ws.ID), strconv.Itoa(rule.ID)})

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response RuleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "round_robin", response.AssignmentType)
	assert.Nil(t, response.Source)
	assert.Equal(t, 15, response.Priority)
}

func TestDeleteRule(t *testing.T) {
	client, ws, agent, handler := setupRulesTest(t)
	defer client.Close()

	ctx := context.Background()
	rule, err := client.AssignmentRule.Create().
		SetWorkspaceID(ws.ID).
		SetAssignmentType("specific").
		SetAssigneeID(agent.ID).
		Save(ctx)
	require.NoError(t, err)

	c, rec := rulesContext(http.MethodDelete, "",
		[]string{"workspace_id", "id"},
		[]string{strconv.Itoa(ws.ID), strconv.Itoa(rule.ID)})
	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted")

	count, err := client.AssignmentRule.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDeleteRule_WrongWorkspace(t *testing.T) {
	client, ws, agent, handler := setupRulesTest(t)
	defer client.Close()

	ctx := context.Background()
	rule, err := client.AssignmentRule.Create().
		SetWorkspaceID(ws.ID).
		SetAssignmentType("specific").
		SetAssigneeID(agent.ID).
		Save(ctx)
	require.NoError(t, err)

	c, rec := rulesContext(http.MethodDelete, "",
		[]string{"workspace_id", "id"},
		[]string{"9999", strconv.Itoa(rule.ID)})
	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
