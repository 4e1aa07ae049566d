// Package migrations embeds the goose SQL migrations so the server binary
// can bring a fresh database up to the current schema on boot.
package migrations

import "embed"

//go:embed churn/*.sql
var FS embed.FS
