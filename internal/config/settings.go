package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pyrafetch/pyrafetch/internal/overlay"
	"github.com/pyrafetch/pyrafetch/internal/paint"
)

// Settings holds all user-configurable settings organized by category.
type Settings struct {
	General GeneralSettings `json:"general"`
	Palette PaletteSettings `json:"palette"`
	Layout  LayoutSettings  `json:"layout"`
}

// GeneralSettings contains application behavior settings.
type GeneralSettings struct {
	ColorProfile      string `json:"color_profile"`
	LogRetentionCount int    `json:"log_retention_count"`
}

// Accepted values for GeneralSettings.ColorProfile
const (
	ProfileAuto      = "auto"
	ProfileTrueColor = "truecolor"
	ProfileANSI256   = "ansi256"
	ProfileANSI      = "ansi"
	ProfileASCII     = "ascii"
)

// PaletteSettings holds one ramp per bar, as hex colors. The memory bars
// fade from the "used" ramp into the "free" ramp.
type PaletteSettings struct {
	CPU     []string `json:"cpu"`
	RAMUsed []string `json:"ram_used"`
	RAMFree []string `json:"ram_free"`
	OS      []string `json:"os"`
}

// LayoutSettings controls how the memory bars blend and are annotated.
type LayoutSettings struct {
	RAMMode         string `json:"ram_mode"`
	MemoryMode      string `json:"memory_mode"`
	UnderlineMemory bool   `json:"underline_memory"`
	HumanizeMemory  bool   `json:"humanize_memory"`
}

// DefaultSettings returns a new Settings instance with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		General: GeneralSettings{
			ColorProfile:      ProfileAuto,
			LogRetentionCount: 5,
		},
		Palette: PaletteSettings{
			CPU:     []string{"#64b400"},
			RAMUsed: []string{"#960064"},
			RAMFree: []string{"#006496"},
			OS:      []string{"#5a5ac8"},
		},
		Layout: LayoutSettings{
			RAMMode:         "choose-fade:0.1",
			MemoryMode:      "choose-fade:0.1",
			UnderlineMemory: true,
			HumanizeMemory:  false,
		},
	}
}

// Ramps is the parsed form of PaletteSettings
type Ramps struct {
	CPU     paint.Ramp
	RAMUsed paint.Ramp
	RAMFree paint.Ramp
	OS      paint.Ramp
}

// Ramps parses every palette entry
func (s *Settings) Ramps() (Ramps, error) {
	var r Ramps
	fields := []struct {
		key string
		in  []string
		out *paint.Ramp
	}{
		{"cpu", s.Palette.CPU, &r.CPU},
		{"ram_used", s.Palette.RAMUsed, &r.RAMUsed},
		{"ram_free", s.Palette.RAMFree, &r.RAMFree},
		{"os", s.Palette.OS, &r.OS},
	}
	for _, f := range fields {
		ramp, err := paint.ParseRamp(f.in...)
		if err != nil {
			return Ramps{}, fmt.Errorf("palette.%s: %w", f.key, err)
		}
		*f.out = ramp
	}
	return r, nil
}

// Modes parses the memory bar modes
func (s *Settings) Modes() (ram, memory overlay.Mode, err error) {
	if ram, err = overlay.ParseMode(s.Layout.RAMMode); err != nil {
		return ram, memory, fmt.Errorf("layout.ram_mode: %w", err)
	}
	if memory, err = overlay.ParseMode(s.Layout.MemoryMode); err != nil {
		return ram, memory, fmt.Errorf("layout.memory_mode: %w", err)
	}
	return ram, memory, nil
}

// Validate checks everything that would otherwise fail at render time
func (s *Settings) Validate() error {
	switch s.General.ColorProfile {
	case ProfileAuto, ProfileTrueColor, ProfileANSI256, ProfileANSI, ProfileASCII:
	default:
		return fmt.Errorf("general.color_profile: unknown profile %q", s.General.ColorProfile)
	}
	if _, err := s.Ramps(); err != nil {
		return err
	}
	_, _, err := s.Modes()
	return err
}

// LoadSettingsFrom loads settings from path. Returns defaults if the file
// doesn't exist; a partial file only overrides the keys it names.
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings() // Start with defaults to fill any missing fields
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// SaveSettingsTo writes settings atomically while holding a lock file next
// to path, so two concurrent writers cannot interleave.
func SaveSettingsTo(path string, s *Settings) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock settings: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}
