// Package rules is the read surface for workspace routing
// configuration: assignment rules and status triggers.
package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/whatsapptrigger"
	"github.com/leadrouter/crm-backend/pkg/assignment"
	"github.com/leadrouter/crm-backend/pkg/cache"
	"github.com/leadrouter/crm-backend/pkg/domain"
	"github.com/leadrouter/crm-backend/pkg/metrics"
)

// triggerCacheTTL bounds how stale a cached trigger lookup may be.
const triggerCacheTTL = 1 * time.Minute

// Store reads assignment rules and WhatsApp triggers for a workspace.
// The cache client is optional; a nil cache disables trigger caching.
type Store struct {
	db      *ent.Client
	cache   *cache.Client
	metrics *metrics.Metrics
}

// NewStore creates a new rule store
func NewStore(db *ent.Client, cacheClient *cache.Client) *Store {
	return &Store{
		db:    db,
		cache: cacheClient,
	}
}

// WithMetrics attaches a metrics recorder.
func (s *Store) WithMetrics(m *metrics.Metrics) *Store {
	s.metrics = m
	return s
}

// AssignmentRules returns the enabled rules that are candidates for a
// lead with the given source: rules bound to the normalized source,
// rules bound to the raw source tag, and wildcard rules (null source).
// Ordered by ascending priority, then id, so resolution is stable.
func (s *Store) AssignmentRules(ctx context.Context, workspaceID int, normalizedSource, rawSource string) ([]*ent.AssignmentRule, error) {
	candidates, err := s.db.AssignmentRule.Query().
		Where(
			assignmentrule.WorkspaceIDEQ(workspaceID),
			assignmentrule.IsEnabled(true),
			assignmentrule.Or(
				assignmentrule.SourceIsNil(),
				assignmentrule.SourceEQ(normalizedSource),
				assignmentrule.SourceEQ(rawSource),
			),
		).
		Order(ent.Asc(assignmentrule.FieldPriority), ent.Asc(assignmentrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment rules: %w", err)
	}

	return candidates, nil
}

// cachedTrigger is the subset of trigger fields worth caching.
type cachedTrigger struct {
	ID             int    `json:"id"`
	WorkspaceID    int    `json:"workspace_id"`
	Status         string `json:"status"`
	CampaignName   string `json:"campaign_name"`
	Source         string `json:"source"`
	TemplateParams string `json:"template_params"`
	ParamsFallback string `json:"params_fallback"`
}

// Trigger returns the enabled trigger for (workspace, status), or nil
// when none is configured. When several enabled triggers exist for the
// same status the lowest id wins, so the result does not depend on
// storage order.
func (s *Store) Trigger(ctx context.Context, workspaceID int, status string) (*ent.WhatsAppTrigger, error) {
	key := triggerCacheKey(workspaceID, status)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil && raw != "" {
			var ct cachedTrigger
			if err := json.Unmarshal([]byte(raw), &ct); err == nil {
				s.metrics.RecordCacheHit("triggers")
				return &ent.WhatsAppTrigger{
					ID:             ct.ID,
					WorkspaceID:    ct.WorkspaceID,
					Status:         ct.Status,
					IsEnabled:      true,
					CampaignName:   ct.CampaignName,
					Source:         ct.Source,
					TemplateParams: ct.TemplateParams,
					ParamsFallback: ct.ParamsFallback,
				}, nil
			}
		}
	}

	if s.cache != nil {
		s.metrics.RecordCacheMiss("triggers")
	}

	trigger, err := s.db.WhatsAppTrigger.Query().
		Where(
			whatsapptrigger.WorkspaceIDEQ(workspaceID),
			whatsapptrigger.StatusEQ(status),
			whatsapptrigger.IsEnabled(true),
		).
		Order(ent.Asc(whatsapptrigger.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query trigger: %w", err)
	}

	if s.cache != nil {
		ct := cachedTrigger{
			ID:             trigger.ID,
			WorkspaceID:    trigger.WorkspaceID,
			Status:         trigger.Status,
			CampaignName:   trigger.CampaignName,
			Source:         trigger.Source,
			TemplateParams: trigger.TemplateParams,
			ParamsFallback: trigger.ParamsFallback,
		}
		if raw, err := json.Marshal(ct); err == nil {
			_ = s.cache.Set(ctx, key, raw, triggerCacheTTL)
		}
	}

	return trigger, nil
}

// InvalidateTrigger drops the cached lookup for (workspace, status).
// Called by the settings handlers after any trigger write.
func (s *Store) InvalidateTrigger(ctx context.Context, workspaceID int, status string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, triggerCacheKey(workspaceID, status))
}

// InvalidateAllTriggers drops every cached trigger lookup.
func (s *Store) InvalidateAllTriggers(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeletePattern(ctx, "triggers:*")
}

// ApplyMutation persists the resolver's bookkeeping instruction inside
// the caller's transaction, guarded by a compare-and-swap on the rule
// version. A concurrent assignment that bumped the version first makes
// the swap miss; the caller re-reads and re-resolves.
func (s *Store) ApplyMutation(ctx context.Context, tx *ent.Tx, m assignment.RuleMutation) error {
	affected, err := tx.AssignmentRule.Update().
		Where(
			assignmentrule.IDEQ(m.RuleID),
			assignmentrule.VersionEQ(m.SeenVersion),
		).
		SetLastAssignedAt(m.LastAssignedAt).
		AddAssignmentCount(1).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update rule bookkeeping: %w", err)
	}
	if affected == 0 {
		return domain.NewConcurrencyError(fmt.Sprintf("rule %d was assigned concurrently", m.RuleID))
	}
	return nil
}

func triggerCacheKey(workspaceID int, status string) string {
	return fmt.Sprintf("triggers:%d:%s", workspaceID, status)
}
