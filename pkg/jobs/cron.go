package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/pkg/rules"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	auditor *RoutingAuditor
	rules   *rules.Store
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, ruleStore *rules.Store, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		auditor: NewRoutingAuditor(db, logger),
		rules:   ruleStore,
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 2 AM: audit routing configuration
	_, err := cm.cron.AddFunc("0 2 * * *", func() {
		cm.logger.Println("🕐 Running daily routing audit...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		gaps, err := cm.auditor.DetectCoverageGaps(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to detect coverage gaps: %v", err)
			return
		}
		for _, gap := range gaps {
			cm.logger.Printf("⚠️ Workspace %d source %q: percentage rules cover only %d%%, the rest of its leads land unassigned",
				gap.WorkspaceID, gap.Source, gap.Total)
		}

		orphans, err := cm.auditor.DetectOrphanedRules(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to detect orphaned rules: %v", err)
			return
		}
		for _, o := range orphans {
			cm.logger.Printf("⚠️ Workspace %d rule %d routes to user %d who is not an active member",
				o.WorkspaceID, o.RuleID, o.AssigneeID)
		}

		if len(gaps) == 0 && len(orphans) == 0 {
			cm.logger.Println("✅ Routing configuration is clean")
		}
	})
	if err != nil {
		return err
	}

	// Daily at 3 AM: drop all cached trigger lookups so config drift
	// never outlives the night
	_, err = cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Sweeping trigger cache...")

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := cm.rules.InvalidateAllTriggers(ctx); err != nil {
			cm.logger.Printf("❌ Failed to sweep trigger cache: %v", err)
			return
		}
		cm.logger.Println("✅ Trigger cache swept")
	})
	if err != nil {
		return err
	}

	// Daily at 4 AM: log routing statistics
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		cm.logger.Println("🕐 Logging routing statistics...")

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		stats, err := cm.auditor.GetRoutingStats(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to get routing stats: %v", err)
			return
		}

		cm.logger.Printf("📊 Routing Statistics:")
		cm.logger.Printf("  Total leads: %v", stats["total_leads"])
		cm.logger.Printf("  Unassigned leads: %v", stats["unassigned_leads"])
		cm.logger.Printf("  Enabled rules: %v", stats["enabled_rules"])
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Daily at 2 AM: Routing configuration audit")
	cm.logger.Println("  - Daily at 3 AM: Trigger cache sweep")
	cm.logger.Println("  - Daily at 4 AM: Log routing statistics")

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}

// GetAuditor returns the routing auditor (for manual triggers)
func (cm *CronManager) GetAuditor() *RoutingAuditor {
	return cm.auditor
}
