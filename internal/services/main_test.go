package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/justsurfingit/staffing-crm/internal/database"
	"github.com/justsurfingit/staffing-crm/internal/dtos"
	"github.com/justsurfingit/staffing-crm/internal/jobid"
)

// newTestDB returns a migrated in-memory database private to t.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newJobService(t *testing.T, db *gorm.DB, provider jobid.Provider) *JobRequirementService {
	t.Helper()

	if provider == nil {
		provider = NewIdentifierStore(db, "DZ", false)
	}
	gen, err := jobid.NewGenerator("DZ", jobid.DefaultClassifier(), provider)
	require.NoError(t, err)

	svc := NewJobRequirementService(db, gen, 3)
	svc.Backoff = 0
	return svc
}

func jobRequest(title string) *dtos.JobRequirementRequest {
	return &dtos.JobRequirementRequest{
		Title:       title,
		Client:      "Acme",
		Description: "Build things",
		Location:    "Remote",
		Status:      "Active",
		Priority:    "High",
		Experience:  5,
		TechStack:   []string{"Go", "Postgres"},
	}
}
