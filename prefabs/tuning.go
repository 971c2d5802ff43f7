package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/milk9111/platformer/motion"
	"gopkg.in/yaml.v3"
)

// DefaultTuningFile is the preset file loaded when none is named.
const DefaultTuningFile = "tuning.yaml"

var ErrNoPresets = errors.New("prefabs: no tuning presets")

// Presets keeps tuning presets in file order so cycling through them is
// stable.
type Presets = orderedmap.OrderedMap[string, motion.Tuning]

// LoadTuningPresets reads a preset file, YAML or TOML by extension. Every
// preset starts from motion.DefaultTuning, so a preset only lists what it
// changes, and must validate.
func LoadTuningPresets(name string) (*Presets, error) {
	if name == "" {
		name = DefaultTuningFile
	}
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	return ParseTuningPresets(name, data)
}

// ParseTuningPresets decodes data as the format implied by name's
// extension.
func ParseTuningPresets(name string, data []byte) (*Presets, error) {
	var (
		presets *Presets
		err     error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		presets, err = parseTOMLPresets(data)
	case ".yaml", ".yml":
		presets, err = parseYAMLPresets(data)
	default:
		return nil, fmt.Errorf("prefabs: %s: unsupported tuning format", name)
	}
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	if presets.Len() == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPresets, name)
	}

	for el := presets.Front(); el != nil; el = el.Next() {
		if err := el.Value.Validate(); err != nil {
			return nil, fmt.Errorf("prefabs: %s: preset %q: %w", name, el.Key, err)
		}
	}
	return presets, nil
}

func parseYAMLPresets(data []byte) (*Presets, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	presets := orderedmap.NewOrderedMap[string, motion.Tuning]()
	if len(doc.Content) == 0 {
		return presets, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of preset names", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		t := motion.DefaultTuning()
		if err := value.Decode(&t); err != nil {
			return nil, fmt.Errorf("preset %q: %w", key.Value, err)
		}
		if _, ok := presets.Get(key.Value); ok {
			return nil, fmt.Errorf("line %d: duplicate preset %q", key.Line, key.Value)
		}
		presets.Set(key.Value, t)
	}
	return presets, nil
}

func parseTOMLPresets(data []byte) (*Presets, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	presets := orderedmap.NewOrderedMap[string, motion.Tuning]()
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		t := motion.DefaultTuning()
		if err := md.PrimitiveDecode(raw[name], &t); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets.Set(name, t)
	}

	for _, key := range md.Undecoded() {
		log.Printf("prefabs: ignoring unknown tuning key %s", key)
	}
	return presets, nil
}

// EncodeTuningYAML renders t as a single named preset, ready to paste into
// a preset file.
func EncodeTuningYAML(name string, t motion.Tuning) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]motion.Tuning{name: t}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
