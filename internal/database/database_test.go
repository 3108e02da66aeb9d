package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/defect-tracker-api/internal/config"
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDialector(t *testing.T) {
	d, err := Dialector(&config.Config{DBDriver: "postgres", DatabaseURL: "postgres://localhost/defects"})
	require.NoError(t, err)
	require.Equal(t, "postgres", d.Name())

	d, err = Dialector(&config.Config{DBDriver: "mysql", DatabaseURL: "user:pass@tcp(localhost:3306)/defects"})
	require.NoError(t, err)
	require.Equal(t, "mysql", d.Name())

	_, err = Dialector(&config.Config{DBDriver: "oracle"})
	require.Error(t, err)
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, Close(db))
	})

	require.NoError(t, Migrate(db))

	migrator := db.Migrator()
	require.True(t, migrator.HasTable(&models.User{}))
	require.True(t, migrator.HasTable(&models.Defect{}))
	require.True(t, migrator.HasColumn(&models.Defect{}, "assigneeId"))
	require.True(t, migrator.HasIndex(&models.Defect{}, "idx_defect_status"))
	require.True(t, migrator.HasIndex(&models.Defect{}, "idx_defect_priority"))

	// Running again must be a no-op.
	require.NoError(t, Migrate(db))
}
