// Package migrations embeds the SQL migrations applied to the local store on
// startup. Migrations must stay additive: re-opening an existing database may
// only create what is missing, never drop or rewrite user data.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
