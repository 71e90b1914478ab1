// Package data embeds the built-in language profile files.
package data

import _ "embed"

//go:embed dutch.yaml
var DutchProfile []byte
