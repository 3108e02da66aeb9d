package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/defect-tracker-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the secondary indexes used by defect listings
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model  interface{}
		table  string
		name   string
		column string
	}{
		{&models.Defect{}, models.Defect{}.TableName(), "idx_defect_status", "status"},
		{&models.Defect{}, models.Defect{}.TableName(), "idx_defect_priority", "priority"},
	}

	migrator := db.Migrator()
	quote := db.Statement.Quote
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", quote(idx.name), quote(idx.table), quote(idx.column))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", idx.table, "column", idx.column)
	}

	return nil
}
