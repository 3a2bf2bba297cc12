package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLang provides every message; other locales fall back to it
const DefaultLang = "en_US"

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog maps message keys to localized templates
type Catalog struct {
	lang     string
	messages map[Key]string
}

// Load builds the catalog for the requested locale from the embedded files
func Load(requested string) (*Catalog, error) {
	return LoadFS(localeFS, "locales", requested)
}

// LoadFS builds a catalog from <dir>/<lang>.yaml files in fsys.
// The requested locale is matched against the available files, merged over
// the default locale and checked for completeness.
func LoadFS(fsys fs.FS, dir, requested string) (*Catalog, error) {
	available, err := Available(fsys, dir)
	if err != nil {
		return nil, err
	}

	lang := Match(requested, available, DefaultLang)

	defaults, err := readLocale(fsys, dir, DefaultLang)
	if err != nil {
		return nil, err
	}

	merged := defaults
	if lang != DefaultLang {
		translated, err := readLocale(fsys, dir, lang)
		if err != nil {
			return nil, err
		}
		for key, value := range translated {
			if value != "" {
				merged[key] = value
			}
		}
	}

	c := &Catalog{lang: lang, messages: merged}
	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Available lists the locales present in dir, sorted
func Available(fsys fs.FS, dir string) ([]string, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}

	langs := make([]string, 0, len(matches))
	for _, m := range matches {
		langs = append(langs, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(langs)

	return langs, nil
}

func readLocale(fsys fs.FS, dir, lang string) (map[Key]string, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, lang+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to read locale %s: %w", lang, err)
	}

	messages := make(map[Key]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse locale %s: %w", lang, err)
	}

	return messages, nil
}

func (c *Catalog) validate() error {
	var missing []string
	for _, key := range Keys {
		if strings.TrimSpace(c.messages[key]) == "" {
			missing = append(missing, string(key))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("locale %s: missing messages: %s", c.lang, strings.Join(missing, ", "))
	}

	return nil
}

// Lang returns the locale the catalog was resolved to
func (c *Catalog) Lang() string {
	return c.lang
}

// Get returns the message for key
func (c *Catalog) Get(key Key) string {
	return c.messages[key]
}

// Format fills the template for key with args
func (c *Catalog) Format(key Key, args ...any) string {
	return fmt.Sprintf(c.messages[key], args...)
}
