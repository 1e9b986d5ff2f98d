package rules

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/enttest"
	"github.com/leadrouter/crm-backend/pkg/assignment"
	"github.com/leadrouter/crm-backend/pkg/cache"
	"github.com/leadrouter/crm-backend/pkg/domain"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
}

func createWorkspace(t *testing.T, client *ent.Client) *ent.Workspace {
	ws, err := client.Workspace.Create().
		SetName("Acme Coaching").
		SetWebhookSecret("shh").
		Save(context.Background())
	require.NoError(t, err)
	return ws
}

func createUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.Create().
		SetName("Agent").
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createRule(t *testing.T, client *ent.Client, wsID, assigneeID int, ruleType string, opts func(*ent.AssignmentRuleCreate)) *ent.AssignmentRule {
	builder := client.AssignmentRule.Create().
		SetWorkspaceID(wsID).
		SetAssigneeID(assigneeID).
		SetAssignmentType(assignmentrule.AssignmentType(ruleType))
	if opts != nil {
		opts(builder)
	}
	rule, err := builder.Save(context.Background())
	require.NoError(t, err)
	return rule
}

func TestAssignmentRules_MatchesSourceAndWildcard(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ws := createWorkspace(t, client)
	u := createUser(t, client, "a@acme.test")
	store := NewStore(client, nil)

	fb := createRule(t, client, ws.ID, u.ID, "round_robin", func(b *ent.AssignmentRuleCreate) {
		b.SetSource("FACEBOOK").SetPriority(2)
	})
	wildcard := createRule(t, client, ws.ID, u.ID, "round_robin", func(b *ent.AssignmentRuleCreate) {
		b.SetPriority(1)
	})
	createRule(t, client, ws.ID, u.ID, "round_robin", func(b *ent.AssignmentRuleCreate) {
		b.SetSource("WEBSITE")
	})
	createRule(t, client, ws.ID, u.ID, "round_robin", func(b *ent.AssignmentRuleCreate) {
		b.SetSource("FACEBOOK").SetIsEnabled(false)
	})

	got, err := store.AssignmentRules(ctx, ws.ID, "FACEBOOK", "fb")
	require.NoError(t, err)
	require.Len(t, got, 2, "source match + wildcard, disabled and other-source excluded")

	// Ascending priority ordering.
	assert.Equal(t, wildcard.ID, got[0].ID)
	assert.Equal(t, fb.ID, got[1].ID)
}

func TestAssignmentRules_MatchesRawSourceTag(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ws := createWorkspace(t, client)
	u := createUser(t, client, "a@acme.test")
	store := NewStore(client, nil)

	raw := createRule(t, client, ws.ID, u.ID, "specific", func(b *ent.AssignmentRuleCreate) {
		b.SetSource("partner-feed-7")
	})

	got, err := store.AssignmentRules(ctx, ws.ID, "OTHER", "partner-feed-7")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, raw.ID, got[0].ID)
}

func TestTrigger_LowestIDWinsOnDuplicates(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ws := createWorkspace(t, client)
	store := NewStore(client, nil)

	first, err := client.WhatsAppTrigger.Create().
		SetWorkspaceID(ws.ID).
		SetStatus("won").
		SetCampaignName("welcome-a").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.WhatsAppTrigger.Create().
		SetWorkspaceID(ws.ID).
		SetStatus("won").
		SetCampaignName("welcome-b").
		Save(ctx)
	require.NoError(t, err)

	got, err := store.Trigger(ctx, ws.ID, "won")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
}

func TestTrigger_NoneConfigured(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ws := createWorkspace(t, client)
	store := NewStore(client, nil)

	got, err := store.Trigger(context.Background(), ws.ID, "lost")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTrigger_DisabledIsSkipped(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ws := createWorkspace(t, client)
	store := NewStore(client, nil)

	_, err := client.WhatsAppTrigger.Create().
		SetWorkspaceID(ws.ID).
		SetStatus("won").
		SetCampaignName("welcome").
		SetIsEnabled(false).
		Save(ctx)
	require.NoError(t, err)

	got, err := store.Trigger(ctx, ws.ID, "won")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTrigger_CachedLookup(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	ws := createWorkspace(t, client)
	store := NewStore(client, cacheClient)

	created, err := client.WhatsAppTrigger.Create().
		SetWorkspaceID(ws.ID).
		SetStatus("won").
		SetCampaignName("welcome").
		SetTemplateParams(`["{{FirstName}}"]`).
		Save(ctx)
	require.NoError(t, err)

	got, err := store.Trigger(ctx, ws.ID, "won")
	require.NoError(t, err)
	require.NotNil(t, got)

	// Delete the row; the cached copy still serves until invalidated.
	require.NoError(t, client.WhatsAppTrigger.DeleteOne(created).Exec(ctx))

	got, err = store.Trigger(ctx, ws.ID, "won")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "welcome", got.CampaignName)

	require.NoError(t, store.InvalidateTrigger(ctx, ws.ID, "won"))

	got, err = store.Trigger(ctx, ws.ID, "won")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestApplyMutation_BumpsBookkeeping(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ws := createWorkspace(t, client)
	u := createUser(t, client, "a@acme.test")
	store := NewStore(client, nil)
	rule := createRule(t, client, ws.ID, u.ID, "round_robin", nil)

	now := time.Now()
	tx, err := client.Tx(ctx)
	require.NoError(t, err)

	err = store.ApplyMutation(ctx, tx, assignment.RuleMutation{
		RuleID:         rule.ID,
		SeenVersion:    rule.Version,
		LastAssignedAt: now,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	updated, err := client.AssignmentRule.Get(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.AssignmentCount)
	assert.Equal(t, rule.Version+1, updated.Version)
	require.NotNil(t, updated.LastAssignedAt)
	assert.WithinDuration(t, now, *updated.LastAssignedAt, time.Second)
}

func TestApplyMutation_StaleVersionConflicts(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ws := createWorkspace(t, client)
	u := createUser(t, client, "a@acme.test")
	store := NewStore(client, nil)
	rule := createRule(t, client, ws.ID, u.ID, "round_robin", nil)

	// A concurrent assignment bumped the version after we read the rule.
	_, err := client.AssignmentRule.UpdateOneID(rule.ID).AddVersion(1).Save(ctx)
	require.NoError(t, err)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	err = store.ApplyMutation(ctx, tx, assignment.RuleMutation{
		RuleID:         rule.ID,
		SeenVersion:    rule.Version,
		LastAssignedAt: time.Now(),
	})
	require.Error(t, err)
	assert.True(t, domain.IsConcurrency(err))
}
