package locales

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"instabug_bridge/contract"
)

// Catalog holds string overrides keyed by contract.StringKey, one message
// file per language (e.g. "de.toml", "active.pt-BR.toml").
type Catalog struct {
	bundle *i18n.Bundle
}

func NewCatalog() *Catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &Catalog{bundle: bundle}
}

// LoadDir loads every .toml message file in dir.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read strings dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, err := c.bundle.LoadMessageFile(path); err != nil {
			return fmt.Errorf("load strings %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Add registers overrides for a single language.
func (c *Catalog) Add(tag language.Tag, overrides map[contract.StringKey]string) error {
	messages := make([]*i18n.Message, 0, len(overrides))
	for key, value := range overrides {
		messages = append(messages, &i18n.Message{ID: string(key), Other: value})
	}
	return c.bundle.AddMessages(tag, messages...)
}

// Overrides resolves every known string key for tag. Keys without a
// message are left out.
func (c *Catalog) Overrides(tag language.Tag) map[contract.StringKey]string {
	localizer := i18n.NewLocalizer(c.bundle, tag.String())

	out := make(map[contract.StringKey]string)
	for _, key := range contract.StringKeys {
		value, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: string(key)})
		if err != nil {
			continue
		}
		out[key] = value
	}
	return out
}
