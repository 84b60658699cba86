package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rohmanhakim/linkscrub/internal/rules"
	"github.com/rohmanhakim/linkscrub/internal/textclean"
	"github.com/rohmanhakim/linkscrub/pkg/fileutil"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//===============
	// Rules
	//===============
	// Whether the built-in domain and global rules are loaded before custom ones
	useDefaultRules bool
	// Extra per-domain rules, merged with the built-in ones for the same domain
	domainRules []rules.DomainRule
	// Extra parameter actions applied on every domain
	globalActions []rules.Action
	// Table built from the three fields above. Set by Build.
	table *rules.Table

	//===============
	// Text cleaning
	//===============
	// Rules applied when a whole-text clean is requested
	profile textclean.Profile
	// Which trigger the profile is reduced to: hotkey or auto
	trigger textclean.Mode

	//===============
	// Logging
	//===============
	debug   bool
	quiet   bool
	jsonLog bool
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	if err := validateDTO(dto); err != nil {
		return Config{}, err
	}

	cfg := WithDefault()
	cfg.useDefaultRules = !dto.DisableDefaultRules

	for _, r := range dto.Rules {
		rule, err := r.toDomainRule()
		if err != nil {
			return Config{}, err
		}
		cfg.domainRules = append(cfg.domainRules, rule)
	}
	for _, a := range dto.GlobalParams {
		action, err := a.toAction()
		if err != nil {
			return Config{}, err
		}
		cfg.globalActions = append(cfg.globalActions, action)
	}

	if dto.Profile != nil {
		profile, err := dto.Profile.toProfile()
		if err != nil {
			return Config{}, err
		}
		cfg.profile = profile
	}
	if dto.Trigger != "" {
		cfg.trigger = textclean.Mode(dto.Trigger)
	}

	cfg.debug = dto.Debug
	cfg.quiet = dto.Quiet
	cfg.jsonLog = dto.JSONLog

	return cfg.Build()
}

// WithConfigFile loads a JSON or YAML config file. The format is picked
// from the extension: .yaml and .yml are YAML, anything else is JSON.
func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}
	cfgDTO := configDTO{}

	switch fileutil.GetFileExtension(path) {
	case "yaml", "yml":
		err = yaml.Unmarshal(configContent, &cfgDTO)
	default:
		err = json.Unmarshal(configContent, &cfgDTO)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	cfg, err := newConfigFromDTO(cfgDTO)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func WithDefault() *Config {
	defaultConfig := Config{
		useDefaultRules: true,
		domainRules:     []rules.DomainRule{},
		globalActions:   []rules.Action{},
		profile:         textclean.DefaultProfile(),
		trigger:         textclean.ModeHotkey,
		debug:           false,
		quiet:           false,
		jsonLog:         false,
	}
	return &defaultConfig
}

func (c *Config) WithDefaultRules(use bool) *Config {
	c.useDefaultRules = use
	return c
}

func (c *Config) WithDomainRules(domainRules ...rules.DomainRule) *Config {
	c.domainRules = append(c.domainRules, domainRules...)
	return c
}

func (c *Config) WithGlobalActions(actions ...rules.Action) *Config {
	c.globalActions = append(c.globalActions, actions...)
	return c
}

func (c *Config) WithProfile(profile textclean.Profile) *Config {
	c.profile = profile
	return c
}

func (c *Config) WithTrigger(trigger textclean.Mode) *Config {
	c.trigger = trigger
	return c
}

func (c *Config) WithDebug(debug bool) *Config {
	c.debug = debug
	return c
}

func (c *Config) WithQuiet(quiet bool) *Config {
	c.quiet = quiet
	return c
}

func (c *Config) WithJSONLog(jsonLog bool) *Config {
	c.jsonLog = jsonLog
	return c
}

// Build validates the rules and freezes them into a table.
func (c *Config) Build() (Config, error) {
	if c.trigger != textclean.ModeHotkey && c.trigger != textclean.ModeAuto {
		return Config{}, fmt.Errorf("%w: trigger must be %q or %q, got %q",
			ErrInvalidConfig, textclean.ModeHotkey, textclean.ModeAuto, c.trigger)
	}

	builder := rules.NewTableBuilder()
	if c.useDefaultRules {
		builder = builder.WithDefaults()
	}
	table, err := builder.
		WithDomainRules(c.domainRules...).
		WithGlobalActions(c.globalActions...).
		Build()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	c.table = table

	return *c, nil
}

func (c Config) UseDefaultRules() bool {
	return c.useDefaultRules
}

func (c Config) DomainRules() []rules.DomainRule {
	out := make([]rules.DomainRule, len(c.domainRules))
	copy(out, c.domainRules)
	return out
}

func (c Config) GlobalActions() []rules.Action {
	out := make([]rules.Action, len(c.globalActions))
	copy(out, c.globalActions)
	return out
}

// RuleTable returns the table built by Build, or the default table when
// the config was never built.
func (c Config) RuleTable() *rules.Table {
	if c.table == nil {
		return rules.Default()
	}
	return c.table
}

func (c Config) Profile() textclean.Profile {
	return c.profile
}

func (c Config) Trigger() textclean.Mode {
	return c.trigger
}

// EffectiveProfile is the profile reduced to the rules that run on the configured trigger.
func (c Config) EffectiveProfile() textclean.Profile {
	return c.profile.ForMode(c.trigger)
}

func (c Config) Debug() bool {
	return c.debug
}

func (c Config) Quiet() bool {
	return c.quiet
}

func (c Config) JSONLog() bool {
	return c.jsonLog
}
