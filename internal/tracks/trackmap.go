// Package tracks ranks candidate career tracks by skill overlap and carries
// the track-definition configuration with its built-in fallback.
package tracks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

// Definition names a track and the canonical skills that define it.
// Definitions are kept in a slice, not a map, so ranking ties break on the
// order the configuration listed them in.
type Definition struct {
	Name   string
	Skills []string
}

// trackMapSchema validates the external track-map document: a non-empty JSON
// object of track name to skill-string arrays.
const trackMapSchema = `{
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": "array",
		"items": {"type": "string"}
	}
}`

// DefaultMap returns the built-in track definitions used when no external
// configuration is available.
func DefaultMap() []Definition {
	return []Definition{
		{"Web Development", []string{"react", "node", "django", "flask", "javascript", "html", "css", "nextjs"}},
		{"Data Science", []string{"pandas", "numpy", "scikit-learn", "matplotlib", "seaborn", "sql"}},
		{"AI/ML", []string{"tensorflow", "pytorch", "nlp", "cv", "llm", "transformers"}},
		{"Cloud/DevOps", []string{"aws", "gcp", "azure", "docker", "kubernetes", "terraform"}},
		{"Mobile", []string{"android", "kotlin", "flutter", "swift"}},
		{"UI/UX", []string{"figma", "wireframing", "prototyping"}},
	}
}

// LoadMap reads track definitions from a JSON file. A missing, unreadable, or
// malformed file is recovered locally by substituting the built-in default
// map; configuration problems are logged, never surfaced to callers.
func LoadMap(path string) []Definition {
	if path == "" {
		return DefaultMap()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("track map unreadable, using built-in default")
		return DefaultMap()
	}
	defs, err := ParseMap(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("track map invalid, using built-in default")
		return DefaultMap()
	}
	return defs
}

// ParseMap validates and decodes a track-map JSON document, preserving the
// order tracks appear in so ranking tie-breaks stay deterministic.
func ParseMap(data []byte) ([]Definition, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(trackMapSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate track map: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("track map does not match schema: %v", result.Errors())
	}
	return parseOrdered(data)
}

// parseOrdered decodes the object with a token stream because encoding/json
// maps do not preserve key order.
func parseOrdered(data []byte) ([]Definition, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode track map: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("track map must be a JSON object")
	}

	var defs []Definition
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode track name: %w", err)
		}
		name := keyTok.(string)

		var skillList []string
		if err := dec.Decode(&skillList); err != nil {
			return nil, fmt.Errorf("failed to decode skills for track %q: %w", name, err)
		}
		defs = append(defs, Definition{Name: name, Skills: skillList})
	}
	return defs, nil
}
