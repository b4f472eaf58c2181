package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLite(t *testing.T) {
	database, err := Connect(Config{
		Driver:   "sqlite",
		Database: ":memory:",
	})
	require.NoError(t, err)
	require.NotNil(t, database)
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(Config{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestAutoMigrate(t *testing.T) {
	database, err := Connect(Config{
		Driver:   "sqlite",
		Database: ":memory:",
	})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(database))

	for _, table := range []string{
		"custom_domains",
		"domain_connections",
		"websites",
		"website_pages",
		"funnels",
		"funnel_steps",
		"products",
	} {
		assert.True(t, database.Migrator().HasTable(table), "missing table %s", table)
	}
}
