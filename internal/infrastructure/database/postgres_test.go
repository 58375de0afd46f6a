package database

import (
	"io/fs"
	"strings"
	"testing"

	"medical-office-api/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, GormLogLevel("silent"))
	assert.Equal(t, logger.Error, GormLogLevel("error"))
	assert.Equal(t, logger.Info, GormLogLevel("info"))
	assert.Equal(t, logger.Warn, GormLogLevel("warn"))
	assert.Equal(t, logger.Warn, GormLogLevel("verbose"))
}

func TestEmbeddedMigrations(t *testing.T) {
	up, err := fs.ReadFile(migrations.FS, "000001_init_schema.up.sql")
	require.NoError(t, err)
	_, err = fs.ReadFile(migrations.FS, "000001_init_schema.down.sql")
	require.NoError(t, err)

	schema := string(up)
	// The generated-consultation insert depends on this partial index.
	assert.Contains(t, schema, "ON consultations (appointment_id) WHERE auto_generated")
	assert.Contains(t, schema, "CHECK (status IN ('en_attente', 'confirme', 'annule'))")
	assert.Equal(t, 5, strings.Count(schema, "ON DELETE CASCADE"))
}
