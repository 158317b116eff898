package journal

import (
	"database/sql"
	"fmt"

	"codeberg.org/pointwerk/e57"
)

const schemaVersion = 1

// initSchema brings the exceptions table to the current schema version.
// The journal holds only diagnostics, so on a version mismatch the table
// is dropped and recreated rather than migrated.
func initSchema(db *sql.DB) error {
	var current int
	if err := db.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return e57.New(e57.ErrOpenFailed, "phase=schema_version err="+err.Error())
	}

	if current != 0 && current != schemaVersion {
		if _, err := db.Exec("DROP TABLE IF EXISTS exceptions"); err != nil {
			return e57.New(e57.ErrOpenFailed, "phase=schema_reset err="+err.Error())
		}
	}

	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS exceptions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp INTEGER NOT NULL,
            code INTEGER NOT NULL,
            description TEXT,
            context TEXT,
            source_file TEXT,
            source_line INTEGER,
            source_function TEXT,
            reporting_file TEXT,
            reporting_line INTEGER,
            reporting_function TEXT
        )
    `)
	if err != nil {
		return e57.New(e57.ErrOpenFailed, "phase=create_table err="+err.Error())
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return e57.New(e57.ErrOpenFailed, "phase=set_version err="+err.Error())
	}

	return nil
}
