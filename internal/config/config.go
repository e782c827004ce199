package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pders01/dsviz/internal/validation"
)

type Config struct {
	Status   StatusConfig             `mapstructure:"status"`
	Log      LogConfig                `mapstructure:"log"`
	UI       UIConfig                 `mapstructure:"ui"`
	Keys     KeyConfig                `mapstructure:"keys"`
	Variants map[string]VariantConfig `mapstructure:"variants"`
}

type StatusConfig struct {
	// Timeout is how long an operation message stays on screen.
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
	Highlight string `mapstructure:"highlight"`
}

type KeyConfig struct {
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Append      string `mapstructure:"append"`
	Remove      string `mapstructure:"remove"`
	Insert      string `mapstructure:"insert"`
	Delete      string `mapstructure:"delete"`
	Peek        string `mapstructure:"peek"`
	Search      string `mapstructure:"search"`
	ClearSearch string `mapstructure:"clear_search"`
	Clear       string `mapstructure:"clear"`
	Traverse    string `mapstructure:"traverse"`
	Limit       string `mapstructure:"limit"`
	Edit        string `mapstructure:"edit"`
	Theory      string `mapstructure:"theory"`
	Back        string `mapstructure:"back"`
	Quit        string `mapstructure:"quit"`
}

// VariantConfig overrides the built-in limits of one demonstration page.
// Zero values keep the built-in setting.
type VariantConfig struct {
	Ceiling  int   `mapstructure:"ceiling"`
	Capacity int   `mapstructure:"capacity"`
	Seed     []int `mapstructure:"seed"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Status: StatusConfig{
			Timeout: 3 * time.Second,
		},
		Log: LogConfig{
			Level: "OFF",
			Path:  filepath.Join(homeDir, ".dsviz", "dsviz.log"),
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#60A5FA",
				Secondary: "#C084FC",
				Accent:    "#95E1D3",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#F87171",
				Success:   "#4ADE80",
				Highlight: "#FDE047",
			},
		},
		Keys: KeyConfig{
			Bindings: KeyBindings{
				Append:      "a",
				Remove:      "r",
				Insert:      "i",
				Delete:      "d",
				Peek:        "p",
				Search:      "f",
				ClearSearch: "c",
				Clear:       "x",
				Traverse:    "t",
				Limit:       "l",
				Edit:        "e",
				Theory:      "?",
				Back:        "esc",
				Quit:        "q",
			},
		},
		Variants: map[string]VariantConfig{},
	}
}

// setDefaults registers every setting as its own dotted key. AutomaticEnv
// only consults keys viper already knows, so DSVIZ_STATUS_TIMEOUT and friends
// are honored only for keys listed here.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("status.timeout", cfg.Status.Timeout)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.path", cfg.Log.Path)

	c := cfg.UI.Colors
	v.SetDefault("ui.colors.primary", c.Primary)
	v.SetDefault("ui.colors.secondary", c.Secondary)
	v.SetDefault("ui.colors.accent", c.Accent)
	v.SetDefault("ui.colors.text", c.Text)
	v.SetDefault("ui.colors.muted", c.Muted)
	v.SetDefault("ui.colors.error", c.Error)
	v.SetDefault("ui.colors.success", c.Success)
	v.SetDefault("ui.colors.highlight", c.Highlight)

	k := cfg.Keys.Bindings
	v.SetDefault("keys.bindings.append", k.Append)
	v.SetDefault("keys.bindings.remove", k.Remove)
	v.SetDefault("keys.bindings.insert", k.Insert)
	v.SetDefault("keys.bindings.delete", k.Delete)
	v.SetDefault("keys.bindings.peek", k.Peek)
	v.SetDefault("keys.bindings.search", k.Search)
	v.SetDefault("keys.bindings.clear_search", k.ClearSearch)
	v.SetDefault("keys.bindings.clear", k.Clear)
	v.SetDefault("keys.bindings.traverse", k.Traverse)
	v.SetDefault("keys.bindings.limit", k.Limit)
	v.SetDefault("keys.bindings.edit", k.Edit)
	v.SetDefault("keys.bindings.theory", k.Theory)
	v.SetDefault("keys.bindings.back", k.Back)
	v.SetDefault("keys.bindings.quit", k.Quit)
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	setDefaults(v, cfg)

	if configPath != "" {
		path, err := validation.FilePath(configPath)
		if err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "dsviz")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DSVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// Decoding onto the defaults keeps every field a partial file leaves out.
	config := *defaultConfig()
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.Status.Timeout <= 0 {
		config.Status.Timeout = cfg.Status.Timeout
	}
	if config.Variants == nil {
		config.Variants = map[string]VariantConfig{}
	}

	if config.Log.Path != "" {
		logPath, err := validation.FilePath(config.Log.Path)
		if err != nil {
			return nil, fmt.Errorf("log path: %w", err)
		}
		config.Log.Path = logPath
	}

	return &config, nil
}

func Save(config *Config, path string) error {
	v := viper.New()

	statusCfg := map[string]interface{}{
		"timeout": config.Status.Timeout.String(),
	}

	variants := make(map[string]interface{}, len(config.Variants))
	for name, vc := range config.Variants {
		entry := map[string]interface{}{}
		if vc.Ceiling > 0 {
			entry["ceiling"] = vc.Ceiling
		}
		if vc.Capacity > 0 {
			entry["capacity"] = vc.Capacity
		}
		if vc.Seed != nil {
			entry["seed"] = vc.Seed
		}
		variants[name] = entry
	}

	logCfg := map[string]interface{}{
		"level": config.Log.Level,
		"path":  config.Log.Path,
	}

	c := config.UI.Colors
	uiCfg := map[string]interface{}{
		"colors": map[string]interface{}{
			"primary":   c.Primary,
			"secondary": c.Secondary,
			"accent":    c.Accent,
			"text":      c.Text,
			"muted":     c.Muted,
			"error":     c.Error,
			"success":   c.Success,
			"highlight": c.Highlight,
		},
	}

	b := config.Keys.Bindings
	keysCfg := map[string]interface{}{
		"bindings": map[string]interface{}{
			"append":       b.Append,
			"remove":       b.Remove,
			"insert":       b.Insert,
			"delete":       b.Delete,
			"peek":         b.Peek,
			"search":       b.Search,
			"clear_search": b.ClearSearch,
			"clear":        b.Clear,
			"traverse":     b.Traverse,
			"limit":        b.Limit,
			"edit":         b.Edit,
			"theory":       b.Theory,
			"back":         b.Back,
			"quit":         b.Quit,
		},
	}

	v.Set("status", statusCfg)
	v.Set("log", logCfg)
	v.Set("ui", uiCfg)
	v.Set("keys", keysCfg)
	if len(variants) > 0 {
		v.Set("variants", variants)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
