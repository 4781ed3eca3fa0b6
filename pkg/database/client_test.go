package database

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehouse-exchange/wex/test/util"
)

// newTestClient creates a test database client backed by the shared test
// database (per-test schema). Search indexes are created on top of the Ent
// migration so full-text queries behave like production.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := CreateSearchIndexes(ctx, drv)
	require.NoError(t, err)

	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, StatusHealthy, health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Company.Create().
		SetID("co-fts").
		SetName("FTS Storage Co").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Warehouse.Create().
		SetID("wh-fts").
		SetCompanyID("co-fts").
		SetAddress("100 Dock Rd").
		SetCity("Dallas").
		SetState("TX").
		Save(ctx)
	require.NoError(t, err)

	fact1, err := client.PropertyKnowledge.Create().
		SetID("pk-1").
		SetWarehouseID("wh-fts").
		SetTopic("loading_dock_hours").
		SetContent("Loading dock is available weekdays from 6am with forklift on site").
		Save(ctx)
	require.NoError(t, err)

	fact2, err := client.PropertyKnowledge.Create().
		SetID("pk-2").
		SetWarehouseID("wh-fts").
		SetTopic("climate_control").
		SetContent("Climate controlled section holds 55 to 75 degrees year round").
		Save(ctx)
	require.NoError(t, err)

	search := func(query string) []string {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT knowledge_id FROM property_knowledge
			WHERE to_tsvector('english', content) @@ to_tsquery('english', $1)`,
			query,
		)
		require.NoError(t, err)
		defer rows.Close()

		var ids []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			ids = append(ids, id)
		}
		return ids
	}

	// Both terms must match the same row
	results := search("loading & forklift")
	assert.Equal(t, []string{fact1.ID}, results)

	results = search("climate")
	assert.Equal(t, []string{fact2.ID}, results)

	results = search("refrigerated")
	assert.Empty(t, results)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}
	t.Cleanup(clearEnv)

	t.Run("defaults", func(t *testing.T) {
		clearEnv()
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "wex", cfg.User)
		assert.Equal(t, "wex", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv()
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")
		os.Setenv("DB_MAX_IDLE_CONNS", "20")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, 50, cfg.MaxOpenConns)
		assert.Equal(t, 20, cfg.MaxIdleConns)
	})

	t.Run("invalid DB_PORT", func(t *testing.T) {
		clearEnv()
		os.Setenv("DB_PORT", "invalid")
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	// Response time is reported in milliseconds (can be 0 for fast local pings)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000))

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonData)
	require.NoError(t, err)

	// If these were nanoseconds they would exceed 1,000,000 for a 1ms ping
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000))

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0))
}
