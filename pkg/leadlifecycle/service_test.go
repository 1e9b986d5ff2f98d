package leadlifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrouter/crm-backend/ent"
	entactivity "github.com/leadrouter/crm-backend/ent/activity"
	"github.com/leadrouter/crm-backend/ent/enttest"
	entlead "github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/pkg/domain"

	_ "github.com/mattn/go-sqlite3"
)

func setupService(t *testing.T) (*ent.Client, *Service, *ent.Workspace, *ent.Lead, *ent.User) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetName("Acme Coaching").
		SetWebhookSecret("shh").
		Save(ctx)
	require.NoError(t, err)

	user, err := client.User.Create().SetName("Agent").SetEmail("agent@acme.test").Save(ctx)
	require.NoError(t, err)

	lead, err := client.Lead.Create().
		SetWorkspaceID(ws.ID).
		SetFirstName("Ravi").
		SetPhone("9876543210").
		Save(ctx)
	require.NoError(t, err)

	// No notifier: dispatch is exercised in pkg/notify.
	svc := NewService(client, nil, nil)
	return client, svc, ws, lead, user
}

func TestUpdateLeadStatus_RecordsHistoryAndActivity(t *testing.T) {
	client, svc, ws, lead, user := setupService(t)
	defer client.Close()
	ctx := context.Background()

	resp, err := svc.UpdateLeadStatus(ctx, ws.ID, lead.ID, &user.ID, UpdateStatusRequest{
		Status: "qualified",
		Reason: "budget confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "qualified", resp.Status)
	assert.True(t, resp.Changed)

	reloaded, err := client.Lead.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, entlead.StatusQualified, reloaded.Status)

	history, err := svc.GetLeadStatusHistory(ctx, ws.ID, lead.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "new", history[0].OldStatus)
	assert.Equal(t, "qualified", history[0].NewStatus)
	assert.Equal(t, "Agent", history[0].UserName)
	require.NotNil(t, history[0].Reason)
	assert.Equal(t, "budget confirmed", *history[0].Reason)

	activities, err := client.Activity.Query().
		Where(entactivity.LeadIDEQ(lead.ID), entactivity.TypeEQ(entactivity.TypeStatusChange)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Contains(t, activities[0].Description, "from new to qualified")
}

func TestUpdateLeadStatus_SameStatusIsNoop(t *testing.T) {
	client, svc, ws, lead, user := setupService(t)
	defer client.Close()
	ctx := context.Background()

	resp, err := svc.UpdateLeadStatus(ctx, ws.ID, lead.ID, &user.ID, UpdateStatusRequest{Status: "new"})
	require.NoError(t, err)
	assert.False(t, resp.Changed)

	history, err := svc.GetLeadStatusHistory(ctx, ws.ID, lead.ID)
	require.NoError(t, err)
	assert.Empty(t, history, "no history row for a same-status update")
}

func TestUpdateLeadStatus_SystemActor(t *testing.T) {
	client, svc, ws, lead, _ := setupService(t)
	defer client.Close()
	ctx := context.Background()

	_, err := svc.UpdateLeadStatus(ctx, ws.ID, lead.ID, nil, UpdateStatusRequest{Status: "contacted"})
	require.NoError(t, err)

	history, err := svc.GetLeadStatusHistory(ctx, ws.ID, lead.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Nil(t, history[0].UserID)
	assert.Equal(t, "System", history[0].UserName)
}

func TestUpdateLeadStatus_WrongWorkspace(t *testing.T) {
	client, svc, _, lead, user := setupService(t)
	defer client.Close()
	ctx := context.Background()

	other, err := client.Workspace.Create().
		SetName("Other Co").
		SetWebhookSecret("shh2").
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateLeadStatus(ctx, other.ID, lead.ID, &user.ID, UpdateStatusRequest{Status: "won"})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestGetLeadsByStatusAndCounts(t *testing.T) {
	client, svc, ws, lead, user := setupService(t)
	defer client.Close()
	ctx := context.Background()

	second, err := client.Lead.Create().
		SetWorkspaceID(ws.ID).
		SetFirstName("Meera").
		SetPhone("9876543211").
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateLeadStatus(ctx, ws.ID, lead.ID, &user.ID, UpdateStatusRequest{Status: "qualified"})
	require.NoError(t, err)
	_, err = svc.UpdateLeadStatus(ctx, ws.ID, second.ID, &user.ID, UpdateStatusRequest{Status: "qualified"})
	require.NoError(t, err)

	qualified, err := svc.GetLeadsByStatus(ctx, ws.ID, "qualified", 0)
	require.NoError(t, err)
	assert.Len(t, qualified, 2)

	counts, err := svc.GetStatusCounts(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["qualified"])
	assert.Equal(t, 0, counts["new"])
}
