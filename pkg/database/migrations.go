package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates full-text search GIN indexes for PostgreSQL.
// The SMS detail fetcher and the question router both probe learned facts and
// memories by keyword before falling back to routing a supplier question.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for knowledge base lookups
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_property_knowledge_content_gin
		ON property_knowledge USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create knowledge content GIN index: %w", err)
	}

	// GIN index for contextual memory lookups
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_contextual_memories_content_gin
		ON contextual_memories USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create memory content GIN index: %w", err)
	}

	return nil
}
