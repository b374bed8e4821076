// Package migrations embeds the goose SQL migrations so the service binary and
// gardenctl can apply them without a checkout.
package migrations

import "embed"

// FS holds every *.sql migration at its root
//
//go:embed *.sql
var FS embed.FS
