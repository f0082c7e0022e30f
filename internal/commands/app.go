package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/justsurfingit/staffing-crm/internal/config"
	"github.com/justsurfingit/staffing-crm/internal/database"
	"github.com/justsurfingit/staffing-crm/internal/handlers"
	"github.com/justsurfingit/staffing-crm/internal/jobid"
	"github.com/justsurfingit/staffing-crm/internal/logging"
	"github.com/justsurfingit/staffing-crm/internal/services"
)

// app holds what every subcommand needs: the loaded configuration and, for
// commands that touch storage, the database.
type app struct {
	envFile string
	cfg     *config.Config
	db      *gorm.DB
}

func (a *app) Flags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.envFile, "env-file", ".env", "optional dotenv file read before the CRM_* environment")
}

// load reads the configuration and installs the default logger.
func (a *app) load() error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))
	return nil
}

// open connects to postgres and brings the schema up to date.
func (a *app) open() error {
	db, err := database.Connect(a.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	a.db = db
	return nil
}

// wire builds the services on top of db. Classification rules come from the
// job_categories table, seeded with the defaults on first start.
func wire(ctx context.Context, cfg *config.Config, db *gorm.DB) (*handlers.Router, *services.JobRequirementService, error) {
	categories := services.NewCategoryService(db)
	if err := categories.Seed(ctx, jobid.DefaultRules()); err != nil {
		return nil, nil, err
	}

	classifier, err := categories.Classifier(ctx, jobid.Code(cfg.JobID.FallbackCode))
	if err != nil {
		return nil, nil, err
	}

	store := services.NewIdentifierStore(db, cfg.JobID.TenantPrefix, cfg.JobID.ScanMode == config.ScanAll)
	gen, err := jobid.NewGenerator(cfg.JobID.TenantPrefix, classifier, store)
	if err != nil {
		return nil, nil, fmt.Errorf("building job id generator: %w", err)
	}

	jobs := services.NewJobRequirementService(db, gen, cfg.JobID.MaxAttempts)

	rt := &handlers.Router{
		Jobs:           handlers.NewJobRequirementHandler(jobs),
		Vendors:        handlers.NewVendorHandler(services.NewVendorService(db)),
		Resources:      handlers.NewResourceHandler(services.NewResourceService(db)),
		Flows:          handlers.NewProcessFlowHandler(services.NewProcessFlowService(db)),
		Categories:     handlers.NewCategoryHandler(categories),
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         slog.Default(),
	}
	return rt, jobs, nil
}
