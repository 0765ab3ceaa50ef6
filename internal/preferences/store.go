// Package preferences persists user settings between runs. Settings are
// loaded and saved explicitly; nothing reads them as ambient state.
package preferences

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const (
	preferencesKey    = "preferences"
	currentSessionKey = "current_session"
)

// Preferences are the settings-page values. Blank defaults leave the
// matching generation field to the user.
type Preferences struct {
	DefaultTone       string `json:"defaultTone"`
	DefaultOutputType string `json:"defaultOutputType"`
	DefaultAudience   string `json:"defaultAudience"`
	DarkMode          bool   `json:"darkMode"`
	CompetitorMode    bool   `json:"competitorMode"`
}

// Set assigns one preference by its settings key, e.g. "defaultTone".
func (p *Preferences) Set(key, value string) error {
	switch key {
	case "defaultTone":
		p.DefaultTone = value
	case "defaultOutputType":
		p.DefaultOutputType = value
	case "defaultAudience":
		p.DefaultAudience = value
	case "darkMode":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		p.DarkMode = b
	case "competitorMode":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		p.CompetitorMode = b
	default:
		return fmt.Errorf("unknown preference: %s", key)
	}
	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", v)
}

// Store keeps preferences and the current session id as flat files under
// a base directory.
type Store struct {
	d *diskv.Diskv
}

func NewStore(basePath string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
	})}
}

// Load returns the saved preferences, or the zero defaults when nothing
// was saved yet.
func (s *Store) Load() (Preferences, error) {
	var p Preferences
	if !s.d.Has(preferencesKey) {
		return p, nil
	}
	raw, err := s.d.Read(preferencesKey)
	if err != nil {
		return p, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return Preferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return p, nil
}

func (s *Store) Save(p Preferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.d.Write(preferencesKey, raw)
}

// Reset stores and returns the zero defaults.
func (s *Store) Reset() (Preferences, error) {
	var p Preferences
	return p, s.Save(p)
}

// CurrentSession is the id of the last opened session, empty if none.
func (s *Store) CurrentSession() (string, error) {
	if !s.d.Has(currentSessionKey) {
		return "", nil
	}
	raw, err := s.d.Read(currentSessionKey)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *Store) SetCurrentSession(id string) error {
	return s.d.Write(currentSessionKey, []byte(id))
}
