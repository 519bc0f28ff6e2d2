package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so a
// snapshot file can be reopened and appended to.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		id          TEXT PRIMARY KEY,
		started_at  TEXT NOT NULL,
		exported_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS needs (
		snapshot_id     TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		id              INTEGER NOT NULL CHECK(id > 0),
		label           TEXT NOT NULL,
		category        TEXT NOT NULL
		                CHECK(category IN ('environment','social_inclusion','skills_development')),
		priority        TEXT NOT NULL
		                CHECK(priority IN ('high','medium','low')),
		neighborhood    TEXT NOT NULL,
		identified_date TEXT NOT NULL,
		impact_score    INTEGER NOT NULL CHECK(impact_score BETWEEN 1 AND 10),
		PRIMARY KEY (snapshot_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS partners (
		snapshot_id          TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		id                   INTEGER NOT NULL CHECK(id > 0),
		name                 TEXT NOT NULL,
		type                 TEXT NOT NULL
		                     CHECK(type IN ('association','community_center','social_enterprise','school','local_business')),
		focus_area           TEXT NOT NULL
		                     CHECK(focus_area IN ('environment','social_inclusion','skills_development','multiple')),
		address              TEXT NOT NULL,
		website              TEXT NOT NULL,
		contact_person       TEXT NOT NULL,
		latitude             REAL NOT NULL,
		longitude            REAL NOT NULL,
		previous_engagements INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (snapshot_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		snapshot_id       TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		seq               INTEGER NOT NULL,
		need_id           INTEGER NOT NULL,
		partner_id        INTEGER NOT NULL,
		need              TEXT NOT NULL,
		category          TEXT NOT NULL,
		partner_name      TEXT NOT NULL,
		description       TEXT NOT NULL,
		estimated_impact  INTEGER NOT NULL CHECK(estimated_impact BETWEEN 1 AND 10),
		estimated_effort  INTEGER NOT NULL CHECK(estimated_effort BETWEEN 1 AND 10),
		feasibility_score INTEGER NOT NULL CHECK(feasibility_score BETWEEN 1 AND 10),
		neighborhood      TEXT NOT NULL,
		PRIMARY KEY (snapshot_id, seq),
		FOREIGN KEY (snapshot_id, need_id) REFERENCES needs(snapshot_id, id) ON DELETE CASCADE,
		FOREIGN KEY (snapshot_id, partner_id) REFERENCES partners(snapshot_id, id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_need ON activities(snapshot_id, need_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_partner ON activities(snapshot_id, partner_id)`,
}
