package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/enttest"
	"github.com/leadrouter/crm-backend/ent/workspacemember"

	_ "github.com/mattn/go-sqlite3"
)

func seedWorkspace(t *testing.T, client *ent.Client) (*ent.Workspace, *ent.User) {
	t.Helper()
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetName("Acme Coaching").
		SetWebhookSecret("shh").
		Save(ctx)
	require.NoError(t, err)

	user, err := client.User.Create().SetName("Agent").SetEmail("agent@acme.test").Save(ctx)
	require.NoError(t, err)

	_, err = client.WorkspaceMember.Create().
		SetWorkspaceID(ws.ID).
		SetUserID(user.ID).
		Save(ctx)
	require.NoError(t, err)

	return ws, user
}

func TestDetectCoverageGaps(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	ctx := context.Background()

	ws, user := seedWorkspace(t, client)

	// 70% on the wildcard group: 30% of leads land unassigned.
	_, err := client.AssignmentRule.Create().
		SetWorkspaceID(ws.ID).
		SetAssigneeID(user.ID).
		SetAssignmentType(assignmentrule.AssignmentTypePercentage).
		SetPercentage(70).
		Save(ctx)
	require.NoError(t, err)

	// Fully covered source group.
	_, err = client.AssignmentRule.Create().
		SetWorkspaceID(ws.ID).
		SetAssigneeID(user.ID).
		SetAssignmentType(assignmentrule.AssignmentTypePercentage).
		SetSource("FACEBOOK").
		SetPercentage(100).
		Save(ctx)
	require.NoError(t, err)

	auditor := NewRoutingAuditor(client, nil)
	gaps, err := auditor.DetectCoverageGaps(ctx)
	require.NoError(t, err)

	require.Len(t, gaps, 1)
	assert.Equal(t, ws.ID, gaps[0].WorkspaceID)
	assert.Equal(t, "*", gaps[0].Source)
	assert.Equal(t, 70, gaps[0].Total)
}

func TestDetectOrphanedRules(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	ctx := context.Background()

	ws, user := seedWorkspace(t, client)

	suspended, err := client.User.Create().SetName("Gone").SetEmail("gone@acme.test").Save(ctx)
	require.NoError(t, err)
	_, err = client.WorkspaceMember.Create().
		SetWorkspaceID(ws.ID).
		SetUserID(suspended.ID).
		SetStatus(workspacemember.StatusSuspended).
		Save(ctx)
	require.NoError(t, err)

	healthy, err := client.AssignmentRule.Create().
		SetWorkspaceID(ws.ID).
		SetAssigneeID(user.ID).
		SetAssignmentType(assignmentrule.AssignmentTypeSpecific).
		Save(ctx)
	require.NoError(t, err)

	orphan, err := client.AssignmentRule.Create().
		SetWorkspaceID(ws.ID).
		SetAssigneeID(suspended.ID).
		SetAssignmentType(assignmentrule.AssignmentTypeRoundRobin).
		Save(ctx)
	require.NoError(t, err)

	auditor := NewRoutingAuditor(client, nil)
	orphans, err := auditor.DetectOrphanedRules(ctx)
	require.NoError(t, err)

	require.Len(t, orphans, 1)
	assert.Equal(t, orphan.ID, orphans[0].RuleID)
	assert.NotEqual(t, healthy.ID, orphans[0].RuleID)
	assert.Equal(t, suspended.ID, orphans[0].AssigneeID)
}

func TestGetRoutingStats(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	ctx := context.Background()

	ws, user := seedWorkspace(t, client)

	_, err := client.Lead.Create().
		SetWorkspaceID(ws.ID).
		SetFirstName("Ravi").
		SetPhone("9876543210").
		SetOwnerID(user.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Lead.Create().
		SetWorkspaceID(ws.ID).
		SetFirstName("Meera").
		SetPhone("9876543211").
		Save(ctx)
	require.NoError(t, err)

	auditor := NewRoutingAuditor(client, nil)
	stats, err := auditor.GetRoutingStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats["total_leads"])
	assert.Equal(t, 1, stats["unassigned_leads"])
	assert.Equal(t, 0, stats["enabled_rules"])
}
