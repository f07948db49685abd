// Where: cli/assets/templates_embed.go
// What: Embed deployment file templates for the scaffolder.
// Why: Ship every generated file inside the binary, dotfiles included.
package assets

import "embed"

//go:embed all:templates
var TemplatesFS embed.FS
