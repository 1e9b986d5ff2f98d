package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/ent/workspacemember"
)

// RoutingAuditor inspects workspace routing configuration for the
// silent misconfigurations the write path tolerates: percentage groups
// that do not cover the full range, and rules pointing at people who
// can no longer take leads.
type RoutingAuditor struct {
	db     *ent.Client
	logger *log.Logger
}

// NewRoutingAuditor creates a new routing auditor
func NewRoutingAuditor(db *ent.Client, logger *log.Logger) *RoutingAuditor {
	if logger == nil {
		logger = log.Default()
	}
	return &RoutingAuditor{db: db, logger: logger}
}

// CoverageGap describes a percentage rule group that sums below 100,
// so a share of its leads is created unassigned.
type CoverageGap struct {
	WorkspaceID int
	Source      string
	Total       int
}

// DetectCoverageGaps finds enabled percentage rule groups whose
// percentages sum to less than 100.
func (a *RoutingAuditor) DetectCoverageGaps(ctx context.Context) ([]CoverageGap, error) {
	rules, err := a.db.AssignmentRule.Query().
		Where(
			assignmentrule.AssignmentTypeEQ(assignmentrule.AssignmentTypePercentage),
			assignmentrule.IsEnabled(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query percentage rules: %w", err)
	}

	type groupKey struct {
		workspaceID int
		source      string
	}
	totals := make(map[groupKey]int)
	for _, r := range rules {
		source := "*"
		if r.Source != nil {
			source = *r.Source
		}
		totals[groupKey{r.WorkspaceID, source}] += r.Percentage
	}

	var gaps []CoverageGap
	for key, total := range totals {
		if total < 100 {
			gaps = append(gaps, CoverageGap{
				WorkspaceID: key.workspaceID,
				Source:      key.source,
				Total:       total,
			})
		}
	}
	return gaps, nil
}

// OrphanedRule is an enabled rule whose assignee is no longer an
// active member of the rule's workspace.
type OrphanedRule struct {
	RuleID      int
	WorkspaceID int
	AssigneeID  int
}

// DetectOrphanedRules finds enabled rules routing to suspended or
// removed members.
func (a *RoutingAuditor) DetectOrphanedRules(ctx context.Context) ([]OrphanedRule, error) {
	rules, err := a.db.AssignmentRule.Query().
		Where(assignmentrule.IsEnabled(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}

	members, err := a.db.WorkspaceMember.Query().
		Where(workspacemember.StatusEQ(workspacemember.StatusActive)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}

	type memberKey struct {
		workspaceID int
		userID      int
	}
	active := make(map[memberKey]bool, len(members))
	for _, m := range members {
		active[memberKey{m.WorkspaceID, m.UserID}] = true
	}

	var orphans []OrphanedRule
	for _, r := range rules {
		if !active[memberKey{r.WorkspaceID, r.AssigneeID}] {
			orphans = append(orphans, OrphanedRule{
				RuleID:      r.ID,
				WorkspaceID: r.WorkspaceID,
				AssigneeID:  r.AssigneeID,
			})
		}
	}
	return orphans, nil
}

// GetRoutingStats summarizes lead routing volume.
func (a *RoutingAuditor) GetRoutingStats(ctx context.Context) (map[string]interface{}, error) {
	totalLeads, err := a.db.Lead.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	unassigned, err := a.db.Lead.Query().
		Where(lead.OwnerIDIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unassigned leads: %w", err)
	}

	enabledRules, err := a.db.AssignmentRule.Query().
		Where(assignmentrule.IsEnabled(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count rules: %w", err)
	}

	return map[string]interface{}{
		"total_leads":      totalLeads,
		"unassigned_leads": unassigned,
		"enabled_rules":    enabledRules,
	}, nil
}
