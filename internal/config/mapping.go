package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
)

// Mapping holds per-column export lookups, keyed by export column position.
//
//	translations:
//	  2:
//	    M: Male
//	    F: Female
//	select_lists:
//	  3: [A, B, C]
type Mapping struct {
	Translations map[int]map[string]string `yaml:"translations"`
	SelectLists  map[int][]string          `yaml:"select_lists"`
}

// ParseMapping decodes a mapping document. Unknown keys are rejected.
func ParseMapping(r io.Reader) (*Mapping, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Mapping
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse mapping: %w", err)
	}
	for col := range m.Translations {
		if col < 0 {
			return nil, fmt.Errorf("parse mapping: negative translation column %d", col)
		}
	}
	for col := range m.SelectLists {
		if col < 0 {
			return nil, fmt.Errorf("parse mapping: negative select list column %d", col)
		}
	}
	return &m, nil
}

// LoadMapping reads a mapping file.
func LoadMapping(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMapping(f)
}

// Table returns the translations as a translation table.
func (m *Mapping) Table() models.TranslationTable {
	if m == nil || len(m.Translations) == 0 {
		return nil
	}
	return models.TranslationTable(m.Translations)
}
