// Package photobooth embeds the SQL migrations so the server binary can
// bootstrap its own schema without shipping files alongside it.
package photobooth

import "embed"

//go:embed migrations
var Migrations embed.FS
