package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrouter/crm-backend/ent"
	entactivity "github.com/leadrouter/crm-backend/ent/activity"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/enttest"
	"github.com/leadrouter/crm-backend/ent/hook"
	"github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/ent/workspacemember"
	"github.com/leadrouter/crm-backend/pkg/assignment"
	"github.com/leadrouter/crm-backend/pkg/domain"
	"github.com/leadrouter/crm-backend/pkg/rules"

	_ "github.com/mattn/go-sqlite3"
)

type fixture struct {
	client   *ent.Client
	ingestor *Ingestor
	ws       *ent.Workspace
	admin    *ent.User
	agent    *ent.User
}

func setup(t *testing.T) *fixture {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetName("Acme Coaching").
		SetWebhookSecret("shh").
		Save(ctx)
	require.NoError(t, err)

	admin, err := client.User.Create().SetName("Admin").SetEmail("admin@acme.test").Save(ctx)
	require.NoError(t, err)
	agent, err := client.User.Create().SetName("Agent").SetEmail("agent@acme.test").Save(ctx)
	require.NoError(t, err)

	_, err = client.WorkspaceMember.Create().
		SetWorkspaceID(ws.ID).
		SetUserID(admin.ID).
		SetRole(workspacemember.RoleAdmin).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.WorkspaceMember.Create().
		SetWorkspaceID(ws.ID).
		SetUserID(agent.ID).
		Save(ctx)
	require.NoError(t, err)

	store := rules.NewStore(client, nil)
	ingestor := NewIngestor(client, store, assignment.NewResolver(), nil, "IN")

	return &fixture{client: client, ingestor: ingestor, ws: ws, admin: admin, agent: agent}
}

func TestIngest_MissingFirstName(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()

	_, err := fx.ingestor.Ingest(context.Background(), fx.ws.ID, map[string]interface{}{
		"phone": "9876543210",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestIngest_MissingPhone(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()

	_, err := fx.ingestor.Ingest(context.Background(), fx.ws.ID, map[string]interface{}{
		"fname": "Ravi",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestIngest_AliasResolution(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()

	res, err := fx.ingestor.Ingest(context.Background(), fx.ws.ID, map[string]interface{}{
		"FIRST_NAME":   "Ravi",
		"Mobile":       "9876543210",
		"lead_source":  "fb",
		"course":       "Golang Basics",
		"utm_campaign": "spring",
	})
	require.NoError(t, err)
	assert.Equal(t, ActionCreated, res.Action)
	assert.Equal(t, "Ravi", res.Lead.FirstName)
	assert.Equal(t, "FACEBOOK", res.Lead.Source)
	assert.Equal(t, "fb", res.Lead.RawSource)
	assert.Equal(t, "Golang Basics", res.Lead.CourseInterested)
	assert.Equal(t, "spring", res.Lead.CustomFields["utm_campaign"])
}

func TestIngest_NumericPhonePayload(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()

	// encoding/json decodes webhook numbers as float64.
	res, err := fx.ingestor.Ingest(context.Background(), fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     float64(9876543210),
	})
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", res.Lead.Phone)
}

func TestIngest_UnmappedSourceDefaultsToOther(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()

	res, err := fx.ingestor.Ingest(context.Background(), fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
		"source":    "billboard-capmaign",
	})
	require.NoError(t, err)
	assert.Equal(t, "OTHER", res.Lead.Source)
	assert.Equal(t, "billboard-capmaign", res.Lead.RawSource)
}

func TestIngest_SpecificRuleAssignsOwner(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	_, err := fx.client.AssignmentRule.Create().
		SetWorkspaceID(fx.ws.ID).
		SetAssigneeID(fx.agent.ID).
		SetAssignmentType(assignmentrule.AssignmentTypeSpecific).
		Save(ctx)
	require.NoError(t, err)

	res, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Lead.OwnerID)
	assert.Equal(t, fx.agent.ID, *res.Lead.OwnerID)
	assert.Equal(t, assignment.StrategySpecific, res.Strategy)
}

func TestIngest_RoundRobinBookkeepingCommittedWithLead(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	rule, err := fx.client.AssignmentRule.Create().
		SetWorkspaceID(fx.ws.ID).
		SetAssigneeID(fx.agent.ID).
		SetAssignmentType(assignmentrule.AssignmentTypeRoundRobin).
		Save(ctx)
	require.NoError(t, err)

	res, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Lead.OwnerID)
	assert.Equal(t, fx.agent.ID, *res.Lead.OwnerID)

	updated, err := fx.client.AssignmentRule.Get(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.AssignmentCount)
	assert.Equal(t, 1, updated.Version)
	assert.NotNil(t, updated.LastAssignedAt)
}

func TestIngest_RoundRobinCyclesAcrossRules(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	for _, assignee := range []int{fx.admin.ID, fx.agent.ID} {
		_, err := fx.client.AssignmentRule.Create().
			SetWorkspaceID(fx.ws.ID).
			SetAssigneeID(assignee).
			SetAssignmentType(assignmentrule.AssignmentTypeRoundRobin).
			Save(ctx)
		require.NoError(t, err)
	}

	owners := map[int]int{}
	phones := []string{"9876543210", "9876543211", "9876543212", "9876543213"}
	for _, p := range phones {
		res, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
			"firstName": "Lead",
			"phone":     p,
		})
		require.NoError(t, err)
		require.NotNil(t, res.Lead.OwnerID)
		owners[*res.Lead.OwnerID]++
	}

	assert.Equal(t, 2, owners[fx.admin.ID], "round robin splits leads evenly")
	assert.Equal(t, 2, owners[fx.agent.ID])
}

func TestIngest_NoRulesLeavesUnassigned(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()

	res, err := fx.ingestor.Ingest(context.Background(), fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
	})
	require.NoError(t, err)
	assert.Nil(t, res.Lead.OwnerID)
	assert.Equal(t, assignment.StrategyNone, res.Strategy)
}

func TestIngest_DuplicatePhoneUpdatesInsteadOfCreating(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	_, err := fx.client.AssignmentRule.Create().
		SetWorkspaceID(fx.ws.ID).
		SetAssigneeID(fx.agent.ID).
		SetAssignmentType(assignmentrule.AssignmentTypeRoundRobin).
		Save(ctx)
	require.NoError(t, err)

	first, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
		"email":     "ravi@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, ActionCreated, first.Action)

	// Same phone, differently formatted, new course, empty email.
	second, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi K",
		"phone":     "+91 98765 43210",
		"email":     "",
		"course":    "Advanced Golang",
	})
	require.NoError(t, err)
	assert.Equal(t, ActionUpdated, second.Action)
	assert.Equal(t, first.Lead.ID, second.Lead.ID)

	count, err := fx.client.Lead.Query().Where(lead.WorkspaceIDEQ(fx.ws.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "exactly one lead row")

	// Merge semantics: non-empty incoming wins, empty preserved.
	assert.Equal(t, "Ravi K", second.Lead.FirstName)
	assert.Equal(t, "ravi@example.com", second.Lead.Email)
	assert.Equal(t, "Advanced Golang", second.Lead.CourseInterested)

	// Owner untouched: assignment does not re-run on update.
	require.NotNil(t, second.Lead.OwnerID)
	assert.Equal(t, *first.Lead.OwnerID, *second.Lead.OwnerID)

	updatedRule, err := fx.client.AssignmentRule.Query().First(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, updatedRule.AssignmentCount, "bookkeeping not bumped by the merge")
}

func TestIngest_CustomFieldsUnionOnMerge(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	_, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
		"budget":    "50k",
		"city":      "Pune",
	})
	require.NoError(t, err)

	res, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
		"city":      "Mumbai",
		"batch":     "weekend",
	})
	require.NoError(t, err)

	assert.Equal(t, "50k", res.Lead.CustomFields["budget"], "existing keys preserved")
	assert.Equal(t, "Mumbai", res.Lead.CustomFields["city"], "incoming keys overwrite")
	assert.Equal(t, "weekend", res.Lead.CustomFields["batch"])
}

func TestIngest_ActivitiesWritten(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	res, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
	})
	require.NoError(t, err)

	_, err = fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
	})
	require.NoError(t, err)

	activities, err := fx.client.Activity.Query().
		Where(entactivity.LeadIDEQ(res.Lead.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 2, "one activity per ingest action")
	for _, a := range activities {
		assert.Equal(t, entactivity.TypeSystem, a.Type)
	}
}

func TestIngest_SourceMergedOnDuplicate(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	// First submission carries no source at all.
	first, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "OTHER", first.Lead.Source)
	assert.Equal(t, "", first.Lead.RawSource)

	// Same phone, now with a source tag: non-empty incoming wins.
	second, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
		"source":    "fb",
	})
	require.NoError(t, err)
	require.Equal(t, ActionUpdated, second.Action)
	assert.Equal(t, "FACEBOOK", second.Lead.Source)
	assert.Equal(t, "fb", second.Lead.RawSource)

	// A later sourceless duplicate must not wipe it back out.
	third, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "FACEBOOK", third.Lead.Source)
	assert.Equal(t, "fb", third.Lead.RawSource)
}

func TestIngest_RepeatedBookkeepingConflictDegradesToUnassigned(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	rule, err := fx.client.AssignmentRule.Create().
		SetWorkspaceID(fx.ws.ID).
		SetAssigneeID(fx.agent.ID).
		SetAssignmentType(assignmentrule.AssignmentTypeRoundRobin).
		Save(ctx)
	require.NoError(t, err)

	// Bump the rule version on every lead insert, inside the same
	// transaction, so the bookkeeping compare-and-swap always sees a
	// stale version. Mimics a concurrent ingestion winning the rule
	// between resolve and commit, on every attempt.
	fx.client.Lead.Use(func(next ent.Mutator) ent.Mutator {
		return hook.LeadFunc(func(ctx context.Context, m *ent.LeadMutation) (ent.Value, error) {
			if m.Op().Is(ent.OpCreate) {
				if err := m.Client().AssignmentRule.Update().AddVersion(1).Exec(ctx); err != nil {
					return nil, err
				}
			}
			return next.Mutate(ctx, m)
		})
	})

	res, err := fx.ingestor.Ingest(ctx, fx.ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
	})
	require.NoError(t, err, "lead write must survive repeated conflicts")
	assert.Equal(t, ActionCreated, res.Action)
	assert.Nil(t, res.Lead.OwnerID)
	assert.Equal(t, assignment.StrategyNone, res.Strategy)

	// The conflicted attempts rolled back; no bookkeeping stuck.
	fresh, err := fx.client.AssignmentRule.Get(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.AssignmentCount)
	assert.Nil(t, fresh.LastAssignedAt)
}

func TestIngest_NoMembers(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetName("Empty Co").
		SetWebhookSecret("shh").
		Save(ctx)
	require.NoError(t, err)

	ingestor := NewIngestor(client, rules.NewStore(client, nil), assignment.NewResolver(), nil, "IN")

	_, err = ingestor.Ingest(ctx, ws.ID, map[string]interface{}{
		"firstName": "Ravi",
		"phone":     "9876543210",
	})
	require.Error(t, err)
	assert.True(t, domain.IsConfiguration(err))

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "nothing partial committed")
}
