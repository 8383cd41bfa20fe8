package database

import (
	"metrodir-backend/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN. PreferSimpleProtocol disables prepared
// statement caching to avoid 42P05 ("prepared statement already exists")
// behind connection poolers (PgBouncer, Supabase, Render).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate creates/updates the directory tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Listing{}, &domain.Submission{})
}

// Bootstrap installs the postgres-only pieces AutoMigrate cannot express:
// the pg_trgm and postgis extensions, the trigger-maintained search_vector
// column, and the indexes backing search and map queries. The search vector
// is derived from name, description, role, specialties and address, and is
// regenerated whenever any of those change; application code never writes it.
// No-op on other dialects (tests run on sqlite).
func Bootstrap(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS postgis`,
		`CREATE EXTENSION IF NOT EXISTS pg_trgm`,
		`ALTER TABLE listings ADD COLUMN IF NOT EXISTS search_vector tsvector`,
		`CREATE OR REPLACE FUNCTION listings_search_vector_refresh() RETURNS trigger AS $$
		BEGIN
			NEW.search_vector := to_tsvector('english',
				coalesce(NEW.name, '') || ' ' ||
				coalesce(NEW.description, '') || ' ' ||
				coalesce(NEW.role, '') || ' ' ||
				coalesce(NEW.specialties::text, '') || ' ' ||
				coalesce(NEW.address, ''));
			RETURN NEW;
		END
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS listings_search_vector_trg ON listings`,
		`CREATE TRIGGER listings_search_vector_trg
			BEFORE INSERT OR UPDATE OF name, description, role, specialties, address
			ON listings FOR EACH ROW
			EXECUTE FUNCTION listings_search_vector_refresh()`,
		`CREATE INDEX IF NOT EXISTS listings_search_vector_idx ON listings USING gin (search_vector)`,
		`CREATE INDEX IF NOT EXISTS listings_name_trgm_idx ON listings USING gin (name gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS listings_location_idx ON listings USING gist (location)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
