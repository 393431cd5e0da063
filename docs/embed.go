// Package docs bundles long-form Markdown documentation into the trp binary.
package docs

import "embed"

// FS contains the Markdown docs served by 'trp docs'.
//
//go:embed *.md
var FS embed.FS
