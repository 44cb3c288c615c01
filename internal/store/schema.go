package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Per-collection JSON schemas. A stored document failing its schema on read
// is treated the same as an undecodable one: the collection default wins.
var schemaSources = map[Key]string{
	KeySessions: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "subject", "duration", "focusScore"],
			"properties": {
				"id":               {"type": "string", "minLength": 1},
				"subject":          {"type": "string", "minLength": 1},
				"duration":         {"type": "integer", "minimum": 0},
				"breaks":           {"type": "integer", "minimum": 0},
				"distractionCount": {"type": "integer", "minimum": 0},
				"mood":             {"type": "integer", "minimum": 1, "maximum": 5},
				"focusScore":       {"type": "integer", "minimum": 10, "maximum": 100},
				"pomodoroUsed":     {"type": "boolean"}
			}
		}
	}`,
	KeyDailyChecks: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["date", "mood", "sleep", "stress"],
			"properties": {
				"date":   {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
				"mood":   {"type": "integer", "minimum": 1, "maximum": 5},
				"sleep":  {"type": "number", "minimum": 0},
				"stress": {"type": "integer", "minimum": 1, "maximum": 5}
			}
		}
	}`,
	KeySubjects: `{
		"type": "array",
		"items": {"type": "string", "minLength": 1}
	}`,
	KeyStreak: `{
		"type": "object",
		"required": ["current", "longest"],
		"properties": {
			"current": {"type": "integer", "minimum": 0},
			"longest": {"type": "integer", "minimum": 0}
		}
	}`,
	KeySettings: `{
		"type": "object",
		"properties": {
			"defaultRestMinutes":    {"type": "integer", "minimum": 1},
			"defaultSessionMinutes": {"type": "integer", "minimum": 1}
		}
	}`,
	KeyUserProfile: `{
		"type": "object",
		"properties": {
			"name": {"type": "string"}
		}
	}`,
}

var (
	compileOnce sync.Once
	compiled    map[Key]*jsonschema.Schema
	compileErr  error
)

// compiledSchemas compiles every collection schema once.
func compiledSchemas() (map[Key]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[Key]*jsonschema.Schema, len(schemaSources))
		c := jsonschema.NewCompiler()
		for key, src := range schemaSources {
			doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
			if err != nil {
				compileErr = fmt.Errorf("parse schema %s: %w", key, err)
				return
			}
			url := string(key) + ".schema.json"
			if err := c.AddResource(url, doc); err != nil {
				compileErr = fmt.Errorf("add schema %s: %w", key, err)
				return
			}
			sch, err := c.Compile(url)
			if err != nil {
				compileErr = fmt.Errorf("compile schema %s: %w", key, err)
				return
			}
			compiled[key] = sch
		}
	})
	return compiled, compileErr
}

// validateDoc checks raw JSON against the collection's schema. Keys without
// a schema pass through.
func validateDoc(key Key, raw []byte) error {
	schemas, err := compiledSchemas()
	if err != nil {
		return err
	}
	sch, ok := schemas[key]
	if !ok {
		return nil
	}

	var parsed any
	if err := sonic.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
