// Package i18n translates admin captions from YAML message catalogs.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed translations/*.yaml
var embedded embed.FS

// DefaultLocale is used when a key is missing from the requested locale.
var DefaultLocale = language.English

// Translator resolves translation keys such as "caption.dashboard".
type Translator interface {
	Translate(key string) string
}

// Catalog is a Translator over messages.<locale>.yaml files.
// Missing keys fall back to DefaultLocale, then to the key itself.
type Catalog struct {
	tag      language.Tag
	printer  *message.Printer
	fallback *message.Printer
	keys     map[string]map[string]bool
}

// Embedded loads the catalogs bundled with the binary.
func Embedded(locale string) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "translations")
	if err != nil {
		return nil, fmt.Errorf("open embedded translations: %w", err)
	}
	return Load(sub, locale)
}

// LoadDir loads catalogs from a directory on disk.
func LoadDir(dir, locale string) (*Catalog, error) {
	return Load(os.DirFS(dir), locale)
}

// Load reads every messages.<locale>.yaml file at the root of fsys.
func Load(fsys fs.FS, locale string) (*Catalog, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	files, err := fs.Glob(fsys, "messages.*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	sort.Strings(files)

	b := catalog.NewBuilder(catalog.Fallback(DefaultLocale))
	keys := make(map[string]map[string]bool)

	for _, f := range files {
		name := strings.TrimSuffix(strings.TrimPrefix(path.Base(f), "messages."), ".yaml")
		ftag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("translation file %s: %w", f, err)
		}

		data, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}

		msgs, err := parseMessages(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}

		if keys[ftag.String()] == nil {
			keys[ftag.String()] = make(map[string]bool, len(msgs))
		}
		for k, v := range msgs {
			if err := b.SetString(ftag, k, escape(v)); err != nil {
				return nil, fmt.Errorf("set %s[%s]: %w", ftag, k, err)
			}
			keys[ftag.String()][k] = true
		}
	}

	return &Catalog{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(b)),
		fallback: message.NewPrinter(DefaultLocale, message.Catalog(b)),
		keys:     keys,
	}, nil
}

// Locale returns the requested locale.
func (c *Catalog) Locale() language.Tag {
	return c.tag
}

// Translate returns the message for key.
func (c *Catalog) Translate(key string) string {
	if c.has(c.tag, key) {
		return c.printer.Sprintf(key)
	}
	if c.has(DefaultLocale, key) {
		return c.fallback.Sprintf(key)
	}
	return key
}

func (c *Catalog) has(tag language.Tag, key string) bool {
	for t := tag; ; t = t.Parent() {
		if c.keys[t.String()][key] {
			return true
		}
		if t.IsRoot() {
			return false
		}
	}
}

// parseMessages flattens nested YAML mappings into dotted keys.
func parseMessages(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]string)
	var walk func(prefix string, m map[string]any) error
	walk = func(prefix string, m map[string]any) error {
		for k, v := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			switch val := v.(type) {
			case map[string]any:
				if err := walk(key, val); err != nil {
					return err
				}
			case string:
				out[key] = val
			case nil:
			default:
				out[key] = fmt.Sprint(val)
			}
		}
		return nil
	}

	return out, walk("", raw)
}

// escape keeps literal percent signs out of the printf verbs.
func escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
