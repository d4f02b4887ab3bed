package assets

import _ "embed"

// OptionsData holds the raw JSON catalog of selectable form options.
//
//go:embed options.json
var OptionsData []byte
