package catalog

import "github.com/santhosh-tekuri/jsonschema/v5"

const manifestSchemaURL = "mono://schemas/package.json"

const manifestSchemaSource = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "version": {"type": "string"},
    "private": {"type": "boolean"},
    "scripts": {"$ref": "#/definitions/stringMap"},
    "dependencies": {"$ref": "#/definitions/stringMap"},
    "devDependencies": {"$ref": "#/definitions/stringMap"},
    "peerDependencies": {"$ref": "#/definitions/stringMap"}
  },
  "definitions": {
    "stringMap": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    }
  }
}`

// manifestSchema checks the package.json fields the catalog relies on.
var manifestSchema = jsonschema.MustCompileString(manifestSchemaURL, manifestSchemaSource)
