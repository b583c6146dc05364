package focus

import (
	"encoding/json"
	"os"
	"time"
)

// Mode selects how Navigate resolves the next element. It is fixed for the
// session's lifetime, not per call.
type Mode int

const (
	// ModeSpatial picks the geometrically nearest candidate in the requested
	// direction.
	ModeSpatial Mode = iota
	// ModeSequential steps through the priority/reading order instead.
	ModeSequential
)

func (m Mode) String() string {
	if m == ModeSequential {
		return "sequential"
	}
	return "spatial"
}

const (
	// DefaultDeadzone is the analog-stick magnitude below which input is
	// treated as neutral.
	DefaultDeadzone = 0.5
	// DefaultNavigationDelay throttles repeated navigations from any source.
	DefaultNavigationDelay = 180 * time.Millisecond
)

// Config is supplied once when a session starts.
type Config struct {
	Mode            Mode
	Deadzone        float64 // 0..1 exclusive; zero means DefaultDeadzone
	NavigationDelay time.Duration
	Haptics         bool
	// DisableAutoFocus suppresses focusing the first registered element.
	DisableAutoFocus bool
}

// DefaultConfig returns the stock settings: spatial mode, 0.5 deadzone,
// 180ms delay, haptics on.
func DefaultConfig() Config {
	return Config{
		Deadzone:        DefaultDeadzone,
		NavigationDelay: DefaultNavigationDelay,
		Haptics:         true,
	}
}

func (c Config) withDefaults() Config {
	if c.Deadzone <= 0 || c.Deadzone >= 1 {
		c.Deadzone = DefaultDeadzone
	}
	if c.NavigationDelay <= 0 {
		c.NavigationDelay = DefaultNavigationDelay
	}
	return c
}

// configFile is the on-disk shape under the profile config dir.
type configFile struct {
	Mode              string  `json:"mode"`
	Deadzone          float64 `json:"deadzone"`
	NavigationDelayMS int64   `json:"navigationDelayMs"`
	Haptics           bool    `json:"haptics"`
}

const configName = "padnav.json"

// LoadConfig reads the saved settings for this profile. A missing or
// unreadable file falls back to DefaultConfig.
func LoadConfig() Config {
	return loadConfigFrom(ConfigPath(configName))
}

// SaveConfig persists the settings for this profile.
func SaveConfig(c Config) error {
	return saveConfigTo(ConfigPath(configName), c)
}

func loadConfigFrom(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig()
	}
	var cf configFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return DefaultConfig()
	}
	c := Config{
		Deadzone:        cf.Deadzone,
		NavigationDelay: time.Duration(cf.NavigationDelayMS) * time.Millisecond,
		Haptics:         cf.Haptics,
	}
	if cf.Mode == "sequential" {
		c.Mode = ModeSequential
	}
	return c.withDefaults()
}

func saveConfigTo(path string, c Config) error {
	c = c.withDefaults()
	cf := configFile{
		Mode:              c.Mode.String(),
		Deadzone:          c.Deadzone,
		NavigationDelayMS: c.NavigationDelay.Milliseconds(),
		Haptics:           c.Haptics,
	}
	b, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
