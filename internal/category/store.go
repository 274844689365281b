// Package category provides the read-only business-type template store.
// Templates are loaded once at startup and never mutated afterwards; the
// store is handed to components by reference rather than accessed globally.
package category

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaultTemplates embed.FS

// Template is the per-business-type data backing keyword generation and the
// population-based volume model. All rate fields are probabilities in [0,1].
type Template struct {
	Name             string              `yaml:"name"`
	UsageRate        float64             `yaml:"usage_rate"`
	SearchRate       float64             `yaml:"search_rate"`
	ConversionRate   float64             `yaml:"conversion_rate"`
	BaseKeywords     []string            `yaml:"base_keywords"`
	Modifiers        map[string][]string `yaml:"modifiers"`
	LongtailPatterns []string            `yaml:"longtail_patterns"`
	Strategies       map[string][]string `yaml:"strategies"`
	Goals            map[string][]string `yaml:"goals"`
}

// genericName is the reserved template holding roadmap strategies/goals for
// business types without their own file. It is not listed as a category.
const genericName = "_generic"

// aliases maps common user inputs onto the canonical template names.
var aliases = map[string]string{
	"레스토랑": "음식점",
	"식당":   "음식점",
	"맛집":   "음식점",
	"커피숍":  "카페",
	"커피":   "카페",
	"카페테리아": "카페",
	"헤어샵":  "미용실",
	"헤어살롱": "미용실",
	"미용":   "미용실",
	"의원":   "병원",
	"클리닉":  "병원",
	"피트니스": "헬스장",
	"짐":    "헬스장",
	"체육관":  "헬스장",
	"교습소":  "학원",
	"학교":   "학원",
}

// Store holds all loaded category templates, keyed by canonical name.
type Store struct {
	templates map[string]*Template
	generic   *Template
}

// Load builds a store from the embedded template files, overlaid with any
// *.yaml files found in overrideDir (optional; pass "" to skip). Overlay
// files replace embedded templates with the same name.
func Load(overrideDir string) (*Store, error) {
	s := &Store{templates: make(map[string]*Template)}

	if err := s.loadFS(defaultTemplates, "data"); err != nil {
		return nil, fmt.Errorf("embedded category templates: %w", err)
	}

	if overrideDir != "" {
		if err := s.loadDir(overrideDir); err != nil {
			return nil, fmt.Errorf("category override dir %s: %w", overrideDir, err)
		}
	}

	if s.generic == nil {
		return nil, fmt.Errorf("missing %s template", genericName)
	}
	return s, nil
}

func (s *Store) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return err
		}
		if err := s.add(entry.Name(), data); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) loadDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := s.add(filepath.Base(path), data); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) add(filename string, data []byte) error {
	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if tpl.Name == "" {
		return fmt.Errorf("%s: template has no name", filename)
	}
	if err := validateRates(&tpl); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if tpl.Name == genericName {
		s.generic = &tpl
		return nil
	}
	s.templates[tpl.Name] = &tpl
	return nil
}

func validateRates(tpl *Template) error {
	for _, r := range []struct {
		name string
		v    float64
	}{
		{"usage_rate", tpl.UsageRate},
		{"search_rate", tpl.SearchRate},
		{"conversion_rate", tpl.ConversionRate},
	} {
		if r.v < 0 || r.v > 1 {
			return fmt.Errorf("%s %v out of range [0,1]", r.name, r.v)
		}
	}
	return nil
}

// Normalize maps a user-supplied business-type string onto its canonical
// template name. Unknown types are returned trimmed but otherwise untouched.
func Normalize(businessType string) string {
	name := strings.TrimSpace(businessType)
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// Get returns the template for a business type, resolving aliases. The
// second return is false for unknown types (callers fall back to generic
// keyword expansion).
func (s *Store) Get(businessType string) (*Template, bool) {
	tpl, ok := s.templates[Normalize(businessType)]
	return tpl, ok
}

// Names returns the canonical names of all known business types, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StrategiesFor returns the roadmap strategy lines for a level key
// ("level_5" .. "level_1"), preferring the business type's own template and
// falling back to the generic one.
func (s *Store) StrategiesFor(businessType, levelKey string) []string {
	if tpl, ok := s.Get(businessType); ok {
		if lines, ok := tpl.Strategies[levelKey]; ok && len(lines) > 0 {
			return lines
		}
	}
	return s.generic.Strategies[levelKey]
}

// GoalsFor is the goals counterpart of StrategiesFor.
func (s *Store) GoalsFor(businessType, levelKey string) []string {
	if tpl, ok := s.Get(businessType); ok {
		if lines, ok := tpl.Goals[levelKey]; ok && len(lines) > 0 {
			return lines
		}
	}
	return s.generic.Goals[levelKey]
}

// Rates returns the usage and search rates used by the population-based
// volume model, falling back to the generic template for unknown types.
func (s *Store) Rates(businessType string) (usage, search float64) {
	if tpl, ok := s.Get(businessType); ok {
		return tpl.UsageRate, tpl.SearchRate
	}
	return s.generic.UsageRate, s.generic.SearchRate
}

// ConversionRate returns the template conversion rate for a business type,
// or the generic default for unknown types.
func (s *Store) ConversionRate(businessType string) float64 {
	if tpl, ok := s.Get(businessType); ok && tpl.ConversionRate > 0 {
		return tpl.ConversionRate
	}
	return s.generic.ConversionRate
}
