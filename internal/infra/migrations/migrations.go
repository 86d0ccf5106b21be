package migrations

import "embed"

// FS holds the schema migrations in golang-migrate naming (NNNNNN_name.up.sql).
//
//go:embed sql/*.sql
var FS embed.FS

const Dir = "sql"
