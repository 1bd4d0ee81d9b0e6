package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrMalformed is returned when a stored value fails to parse or validate.
var ErrMalformed = errors.New("malformed stored value")

// schemas holds the JSON Schema each key's value must satisfy. Keys
// without an entry are only checked for well-formed JSON.
var schemas = map[string]string{
	KeySessions: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["numbers"],
			"properties": {
				"schemaVersion": {"type": "integer", "minimum": 0},
				"date": {"type": "string"},
				"numbers": {"type": "array", "items": {"type": "integer"}},
				"total": {"type": "integer"},
				"duration": {"type": "number", "minimum": 0},
				"answers": {
					"type": ["array", "null"],
					"items": {
						"type": "object",
						"required": ["round"],
						"properties": {"round": {"type": "integer", "minimum": 1}}
					}
				},
				"accuracy": {"type": "integer", "minimum": 0, "maximum": 100},
				"xpEarned": {"type": "integer", "minimum": 0}
			}
		}
	}`,
	KeyStats: `{
		"type": "object",
		"properties": {
			"totalSessions": {"type": "integer", "minimum": 0},
			"totalXP": {"type": "integer", "minimum": 0},
			"currentLevel": {"type": "integer", "minimum": 1},
			"currentStreak": {"type": "integer", "minimum": 0},
			"bestStreak": {"type": "integer", "minimum": 0}
		}
	}`,
	KeyAchievements: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id"],
			"properties": {
				"id": {"type": "string"},
				"progress": {"type": "integer", "minimum": 0},
				"unlocked": {"type": "boolean"}
			}
		}
	}`,
	KeyChallenges: `{
		"type": "object",
		"properties": {
			"currentChallenge": {
				"type": ["object", "null"],
				"required": ["id", "startDate", "endDate"],
				"properties": {
					"id": {"type": "string"},
					"progress": {"type": "integer", "minimum": 0},
					"completed": {"type": "boolean"}
				}
			},
			"completedChallengeIds": {"type": ["array", "null"], "items": {"type": "string"}}
		}
	}`,
	KeyPreferences:   `{"type": "object"}`,
	KeyNotifications: `{"type": "object", "properties": {"enabled": {"type": "boolean"}}}`,
	KeyTutorial: `{
		"type": "object",
		"properties": {
			"completed": {"type": "boolean"},
			"currentStep": {"type": "integer", "minimum": 0},
			"skipped": {"type": "boolean"}
		}
	}`,
	KeyProfile: `{"type": "object", "properties": {"name": {"type": "string"}}}`,
	KeyMeta: `{
		"type": "object",
		"required": ["schemaVersion"],
		"properties": {
			"schemaVersion": {"type": "integer", "minimum": 1},
			"appVersion": {"type": "string"}
		}
	}`,
}

// schemaCache caches compiled JSON schemas by key.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Validate checks raw against the schema registered for key.
func Validate(key string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: %s: invalid JSON: %v", ErrMalformed, key, err)
	}

	compiled, err := compiledSchema(key)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", key, err)
	}
	if compiled == nil {
		return nil
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(key string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}
	def, ok := schemas[key]
	if !ok {
		return nil, nil
	}

	var defParsed any
	if err := json.Unmarshal([]byte(def), &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", key)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(key, compiled)
	return compiled, nil
}

// LoadRaw reads key and validates it. A missing key returns ok == false
// and a nil error.
func LoadRaw(ctx context.Context, kv KV, key string) ([]byte, bool, error) {
	value, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	raw := []byte(value)
	if err := Validate(key, raw); err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// LoadJSON reads key, validates it and decodes it into dst. It reports
// false when the key is missing; dst must be discarded on error.
func LoadJSON(ctx context.Context, kv KV, key string, dst any) (bool, error) {
	raw, ok, err := LoadRaw(ctx, kv, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// SaveJSON encodes v and stores it under key.
func SaveJSON(ctx context.Context, kv KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(b))
}
