package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobhub/internal/config"
)

func TestPoolFromConfig(t *testing.T) {
	pool := PoolFromConfig(&config.Config{
		DBMaxOpenConns:    10,
		DBMaxIdleConns:    2,
		DBConnMaxLifetime: time.Minute,
	})

	assert.Equal(t, Pool{MaxOpenConns: 10, MaxIdleConns: 2, ConnMaxLifetime: time.Minute}, pool)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	gormDB, err := Open(&config.Config{StoreDriver: config.DriverMemory})

	assert.Nil(t, gormDB)
	assert.ErrorContains(t, err, `unsupported sql driver "memory"`)
}

func TestOpen_UnreachableMySQL(t *testing.T) {
	gormDB, err := Open(&config.Config{
		StoreDriver: config.DriverMySQL,
		MySQLDSN:    "jobhub:jobhub@tcp(127.0.0.1:1)/jobhub?timeout=200ms",
	})

	require.Error(t, err)
	assert.Nil(t, gormDB)
	assert.Contains(t, err.Error(), "connect mysql")
}
