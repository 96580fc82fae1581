package database

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLite(t *testing.T) {
	db, err := Connect(&config.Config{DBDriver: "sqlite"})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	require.NoError(t, Ping(db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
}

func TestConnectUnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
