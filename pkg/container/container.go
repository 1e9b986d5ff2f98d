package container

import (
	"time"

	"github.com/leadrouter/crm-backend/config"
	"github.com/leadrouter/crm-backend/pkg/api/handlers"
	"github.com/leadrouter/crm-backend/pkg/assignment"
	"github.com/leadrouter/crm-backend/pkg/cache"
	"github.com/leadrouter/crm-backend/pkg/database"
	"github.com/leadrouter/crm-backend/pkg/importer"
	"github.com/leadrouter/crm-backend/pkg/ingest"
	"github.com/leadrouter/crm-backend/pkg/leadlifecycle"
	"github.com/leadrouter/crm-backend/pkg/logger"
	"github.com/leadrouter/crm-backend/pkg/metrics"
	"github.com/leadrouter/crm-backend/pkg/notify"
	"github.com/leadrouter/crm-backend/pkg/rules"
	"github.com/leadrouter/crm-backend/pkg/whatsapp"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Infrastructure
	DB    *database.Client
	Cache *cache.Client

	// Services
	RuleStore        *rules.Store
	Ingestor         *ingest.Ingestor
	Notifier         *notify.Notifier
	LifecycleService *leadlifecycle.Service
	ImportService    *importer.Service

	// Handlers
	WebhookHandler    *handlers.WebhookHandler
	LeadStatusHandler *handlers.LeadStatusHandler
	RulesHandler      *handlers.RulesHandler
	TriggersHandler   *handlers.TriggersHandler
	ActivitiesHandler *handlers.ActivitiesHandler
	ImportHandler     *handlers.ImportHandler
}

// New creates and initializes all application dependencies
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config:  cfg,
		Logger:  logger.New(cfg.LogLevel, cfg.LogFormat),
		Metrics: metrics.New(),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initServices()
	c.initHandlers()

	c.Logger.Info("Container initialized successfully",
		"environment", cfg.APIEnvironment,
		"database", "connected",
		"cache", "connected")

	return c, nil
}

// initInfrastructure initializes database and cache connections
func (c *Container) initInfrastructure() error {
	var err error

	// Database
	c.DB, err = database.NewClient(c.Config.DatabaseURL)
	if err != nil {
		c.Logger.Error("Failed to connect to database", "error", err)
		return err
	}

	// Cache
	c.Cache, err = cache.NewClient(c.Config.RedisURL)
	if err != nil {
		c.Logger.Error("Failed to connect to cache", "error", err)
		return err
	}

	c.Logger.Info("Infrastructure initialized",
		"database", "connected",
		"cache", "connected")

	return nil
}

// initServices initializes all domain services
func (c *Container) initServices() {
	c.RuleStore = rules.NewStore(c.DB.Ent, c.Cache).WithMetrics(c.Metrics)

	c.Ingestor = ingest.NewIngestor(
		c.DB.Ent,
		c.RuleStore,
		assignment.NewResolver(),
		c.Logger,
		c.Config.DefaultRegion,
	).WithMetrics(c.Metrics)

	gateway := whatsapp.NewGateway(whatsapp.Config{
		BaseURL: c.Config.WhatsAppAPIURL,
		APIKey:  c.Config.WhatsAppAPIKey,
		Timeout: time.Duration(c.Config.DispatchTimeoutSeconds) * time.Second,
	})

	c.Notifier = notify.NewNotifier(
		c.DB.Ent,
		c.RuleStore,
		gateway,
		c.Logger,
		c.Config.DefaultCountryCode,
		time.Duration(c.Config.DispatchTimeoutSeconds)*time.Second,
	).WithMetrics(c.Metrics)

	c.LifecycleService = leadlifecycle.NewService(c.DB.Ent, c.Notifier, c.Logger).WithMetrics(c.Metrics)
	c.ImportService = importer.NewService(c.Ingestor, c.Logger).WithMetrics(c.Metrics)

	c.Logger.Info("Services initialized",
		"ingestor", "ready",
		"notifier", "ready",
		"lifecycle_service", "ready",
		"import_service", "ready")
}

// initHandlers initializes all HTTP handlers
func (c *Container) initHandlers() {
	c.WebhookHandler = handlers.NewWebhookHandler(c.DB.Ent, c.Ingestor, c.Logger)
	c.LeadStatusHandler = handlers.NewLeadStatusHandler(c.LifecycleService)
	c.RulesHandler = handlers.NewRulesHandler(c.DB.Ent)
	c.TriggersHandler = handlers.NewTriggersHandler(c.DB.Ent, c.RuleStore, c.Logger)
	c.ActivitiesHandler = handlers.NewActivitiesHandler(c.DB.Ent)
	c.ImportHandler = handlers.NewImportHandler(c.ImportService)

	c.Logger.Info("Handlers initialized")
}

// Close closes all resources (database, cache connections)
func (c *Container) Close() error {
	c.Logger.Info("Shutting down container...")

	if err := c.DB.Close(); err != nil {
		c.Logger.Error("Failed to close database", "error", err)
		return err
	}

	if err := c.Cache.Close(); err != nil {
		c.Logger.Error("Failed to close cache", "error", err)
		return err
	}

	c.Logger.Info("Container shutdown complete")
	return nil
}
