package docs

import _ "embed"

// SwaggerYAML is the generated document in YAML form, read by the compatibility and coverage checks.
//
//go:embed swagger.yaml
var SwaggerYAML []byte
