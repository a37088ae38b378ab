package engine

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-replay/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the immutable run configuration. It is constructed once, before
// the run starts, and never re-read per bar.
type Config struct {
	// Size is the default order size used when a strategy buys without an
	// explicit size.
	Size float64 `yaml:"size" json:"size" jsonschema:"title=Default Order Size,description=Order size used when the strategy does not specify one,minimum=0" validate:"gte=0"`
	// Params is the parameter set handed to the strategy's Validate check
	// before the run starts.
	Params map[string]float64 `yaml:"params" json:"params" jsonschema:"title=Strategy Parameters,description=Named parameter values checked against the strategy before the run"`
}

// EmptyConfig returns the default configuration.
func EmptyConfig() Config {
	return Config{
		Size:   1,
		Params: nil,
	}
}

// ParseConfig parses and validates a YAML configuration string. An empty
// string yields the default configuration.
func ParseConfig(content string) (Config, error) {
	config := EmptyConfig()

	if content != "" {
		if err := yaml.Unmarshal([]byte(content), &config); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse engine config", err)
		}
	}

	if config.Size == 0 {
		config.Size = 1
	}

	if err := validator.New().Struct(config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid engine config", err)
	}

	return config, nil
}

// GenerateSchema generates a JSON schema for the engine configuration.
func (c *Config) GenerateSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
	}

	schema := reflector.Reflect(c)

	// Set schema metadata
	schema.Title = "replay-engine-config"
	schema.Description = "Configuration schema for the replay engine"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema
}

// GenerateSchemaJSON generates a JSON schema string for the engine
// configuration.
func (c *Config) GenerateSchemaJSON() (string, error) {
	schema := c.GenerateSchema()

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to marshal config schema", err)
	}

	return string(schemaBytes), nil
}
