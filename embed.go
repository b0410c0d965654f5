// embed.go declares the embedded data directory.
// It must stay in the module root, next to data/, because //go:embed only
// reaches files below the declaring package.
package main

import "embed"

//go:embed data
var dataFS embed.FS
