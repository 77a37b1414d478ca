package appfs

import "embed"

// FS holds the email and web templates. Partials start with "_", hence the `all:` prefix.
//
//go:embed all:templates
var FS embed.FS
