package level

import "github.com/invopop/jsonschema"

// Schema builds a machine-readable JSON schema for level documents,
// for validation and editor tooling.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Level))
	schema.Title = "Browserons Call Level"
	schema.Description = "Validates level documents (floors, vendors, spawners, portals) under the level directory"
	return schema
}
