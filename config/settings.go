package config

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// Settings is the simple key-value configuration persisted next to the
// database file: theme, template path, default tax rate and the company
// identity printed on every invoice. Not security-sensitive.
type Settings struct {
	Theme          string  `json:"theme"`
	TemplatePath   string  `json:"template_path"`
	OutputDir      string  `json:"output_dir"`
	DefaultTaxRate float64 `json:"default_tax_rate"`
	CompanyName    string  `json:"company_name"`
	CompanyAddress string  `json:"company_address"`
	CompanyPhone   string  `json:"company_phone"`
}

// DefaultSettings are the hardcoded fallbacks used when the settings file
// is absent or unreadable.
func DefaultSettings() Settings {
	return Settings{
		Theme:          "dark",
		TemplatePath:   "pyinvoice.tmpl",
		OutputDir:      ".",
		DefaultTaxRate: 0.0,
		CompanyName:    "Your Company",
		CompanyAddress: "123 Business St",
		CompanyPhone:   "123-456-7890",
	}
}

// SettingsStore loads and persists the settings file. Reads and writes are
// serialized; the file itself is rewritten whole on every save.
type SettingsStore struct {
	path string

	mu      sync.Mutex
	current Settings
}

func NewSettingsStore(path string) *SettingsStore {
	if path == "" {
		path = "invoice_settings.json"
	}
	store := &SettingsStore{path: path, current: DefaultSettings()}
	store.load()
	return store
}

func (s *SettingsStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("failed to read settings file, using defaults")
		}
		return
	}
	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("settings file is malformed, using defaults")
		return
	}
	s.current = settings
}

// Get returns a snapshot of the current settings.
func (s *SettingsStore) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Save replaces the current settings and persists them to disk.
func (s *SettingsStore) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}
	s.current = settings
	return nil
}
