//go:build mobile

package mobile

import "embed"

// dataFS holds a copy of the root data directory, made before binding.
//
//go:embed data
var dataFS embed.FS
