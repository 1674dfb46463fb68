package config

import (
	"fmt"

	"github.com/louiszeng0623/Yzeng17/internal/team"
	"github.com/spf13/viper"
)

// SourceConfig describes one upstream source in the config file.
type SourceConfig struct {
	Kind string `mapstructure:"kind"`
	URL  string `mapstructure:"url"`
}

// TeamConfig describes one tracked team.
type TeamConfig struct {
	Key         string         `mapstructure:"key"`
	Name        string         `mapstructure:"name"`
	Aliases     []string       `mapstructure:"aliases"`
	HomeStadium string         `mapstructure:"home_stadium"`
	Sources     []SourceConfig `mapstructure:"sources"`
}

// WindowConfig holds the time-window horizons in days around "now".
type WindowConfig struct {
	BackDays    int `mapstructure:"back_days"`
	ForwardDays int `mapstructure:"forward_days"`
}

// OutputConfig holds filesystem destinations.
type OutputConfig struct {
	DataDir        string `mapstructure:"data_dir"`
	CalendarDir    string `mapstructure:"calendar_dir"`
	MergedCalendar string `mapstructure:"merged_calendar"`
}

// Config is the full pipeline configuration, loaded once at process
// start and read-only thereafter.
type Config struct {
	Teams  []TeamConfig `mapstructure:"teams"`
	Window WindowConfig `mapstructure:"window"`
	Output OutputConfig `mapstructure:"output"`
}

// Team converts a TeamConfig into the pipeline's team value.
func (tc TeamConfig) Team() team.Team {
	t := team.Team{
		Key:         tc.Key,
		Name:        tc.Name,
		Aliases:     tc.Aliases,
		HomeStadium: tc.HomeStadium,
	}
	for _, s := range tc.Sources {
		t.Sources = append(t.Sources, team.Source{
			Kind: team.SourceKind(s.Kind),
			URL:  s.URL,
		})
	}
	return t
}

// Load reads a config file (YAML or JSON, by extension) and validates
// it. An empty path returns the built-in default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.back_days", 7)
	v.SetDefault("window.forward_days", 180)
	v.SetDefault("output.data_dir", "data")
	v.SetDefault("output.calendar_dir", ".")
	v.SetDefault("output.merged_calendar", "calendar.ics")
}

func (c *Config) validate() error {
	if len(c.Teams) == 0 {
		return fmt.Errorf("config: no teams defined")
	}
	seen := make(map[string]bool)
	for i, tc := range c.Teams {
		if tc.Key == "" || tc.Name == "" {
			return fmt.Errorf("config: team %d missing key or name", i)
		}
		if seen[tc.Key] {
			return fmt.Errorf("config: duplicate team key %q", tc.Key)
		}
		seen[tc.Key] = true
		for _, s := range tc.Sources {
			switch team.SourceKind(s.Kind) {
			case team.KindAPI, team.KindEmbeddedJSON, team.KindHTMLTable:
			default:
				return fmt.Errorf("config: team %s: unknown source kind %q", tc.Key, s.Kind)
			}
			if s.URL == "" {
				return fmt.Errorf("config: team %s: source missing url", tc.Key)
			}
		}
	}
	if c.Window.BackDays < 0 || c.Window.ForwardDays < 0 {
		return fmt.Errorf("config: window horizons must be non-negative")
	}
	return nil
}

// Default is the built-in configuration: the two tracked teams with
// their sources in priority order.
func Default() *Config {
	return &Config{
		Teams: []TeamConfig{
			{
				Key:         "chengdu",
				Name:        "成都蓉城",
				Aliases:     []string{"成都蓉城", "蓉城"},
				HomeStadium: "凤凰山体育公园专业足球场",
				Sources: []SourceConfig{
					{Kind: "api", URL: "https://api.sofascore.com/api/v1/team/29335/events/next/0"},
					{Kind: "embedded-json", URL: "https://www.dongqiudi.com/team/50076899.html"},
					{Kind: "html-table", URL: "https://m.dongqiudi.com/team/50076899.html"},
				},
			},
			{
				Key:         "inter",
				Name:        "国际米兰",
				Aliases:     []string{"国际米兰", "Inter", "Internazionale"},
				HomeStadium: "圣西罗球场",
				Sources: []SourceConfig{
					{Kind: "api", URL: "https://api.sofascore.com/api/v1/team/44/events/next/0"},
					{Kind: "embedded-json", URL: "https://www.dongqiudi.com/team/50001042.html"},
					{Kind: "html-table", URL: "https://m.dongqiudi.com/team/50001042.html"},
				},
			},
		},
		Window: WindowConfig{BackDays: 7, ForwardDays: 180},
		Output: OutputConfig{
			DataDir:        "data",
			CalendarDir:    ".",
			MergedCalendar: "calendar.ics",
		},
	}
}
