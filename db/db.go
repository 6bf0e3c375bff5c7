// Package db embeds the SQL schema applied by the admin CLI and the store tests.
package db

import _ "embed"

// InitSQL creates every table and index used by the service
//
//go:embed init_pg_db.sql
var InitSQL string
