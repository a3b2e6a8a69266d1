package composer

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/infinigence/octochat/pkg/bot"
)

const (
	DynamicTime = "time"
)

const (
	DefaultNoMatchText  = "Sorry, I don't understand."
	DefaultFarewellText = "Goodbye!"
	DefaultGreeting     = "Hello, world! I'm a cool chatbot! What is your name?"
	DefaultWelcome      = "Hello, %s, ask me something!"
	DefaultListen       = ":8080"
	DefaultModelName    = "octochat"
)

//go:embed default_rules.yaml
var defaultRulesYAML []byte

type BotConfig struct {
	ExitKeyword  *string `json:"exit_keyword" yaml:"exit_keyword"` // nil means "exit", empty disables
	NoMatchText  string  `json:"no_match_text" yaml:"no_match_text"`
	FarewellText string  `json:"farewell_text" yaml:"farewell_text"`
	Greeting     string  `json:"greeting" yaml:"greeting"`
	Welcome      string  `json:"welcome" yaml:"welcome" validate:"one_string_template"` // fmt template, %s is the user's name
	TimeZone     string  `json:"time_zone" yaml:"time_zone"`                            // IANA name, "" or "Local" for the host zone
}

type ServerConfig struct {
	Listen    string            `json:"listen" yaml:"listen"`
	ModelName string            `json:"model_name" yaml:"model_name"` // reported in API responses
	APIKeys   map[string]string `json:"api_keys" yaml:"api_keys" validate:"dive,keys,required,endkeys,required"`
}

type RuleList []*RuleConfig

type RuleConfig struct {
	Name     string       `json:"name" yaml:"name" validate:"required"`
	Match    *MatchConfig `json:"match" yaml:"match" validate:"required"`
	Response string       `json:"response" yaml:"response" validate:"required_without=Dynamic"`
	Dynamic  string       `json:"dynamic" yaml:"dynamic" validate:"omitempty,oneof=time"`

	// only for dynamic: time
	TimeLayout   string `json:"time_layout" yaml:"time_layout"`
	TimeTemplate string `json:"time_template" yaml:"time_template" validate:"omitempty,one_string_template"`
}

// MatchConfig is one node of a matcher tree. Exactly one field must be set.
type MatchConfig struct {
	Word  *string        `json:"word" yaml:"word"`
	Text  *string        `json:"text" yaml:"text"`
	Regex *string        `json:"regex" yaml:"regex"`
	Expr  *string        `json:"expr" yaml:"expr"`
	All   []*MatchConfig `json:"all" yaml:"all"`
	Any   []*MatchConfig `json:"any" yaml:"any"`
	Not   *MatchConfig   `json:"not" yaml:"not"`
}

type ConfigFile struct {
	Bot    BotConfig    `json:"bot" yaml:"bot"`
	Server ServerConfig `json:"server" yaml:"server"`
	Rules  RuleList     `json:"rules" yaml:"rules" validate:"dive,required"`
}

func ReadConfigFile(path string) (*ConfigFile, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(yamlFile)
}

func ParseConfig(data []byte) (*ConfigFile, error) {
	cfg := &ConfigFile{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the built-in rule set.
func DefaultConfig() *ConfigFile {
	cfg, err := ParseConfig(defaultRulesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default rules are invalid: %v", err))
	}
	return cfg
}

func (c *ConfigFile) applyDefaults() {
	if c.Bot.NoMatchText == "" {
		c.Bot.NoMatchText = DefaultNoMatchText
	}
	if c.Bot.FarewellText == "" {
		c.Bot.FarewellText = DefaultFarewellText
	}
	if c.Bot.Greeting == "" {
		c.Bot.Greeting = DefaultGreeting
	}
	if c.Bot.Welcome == "" {
		c.Bot.Welcome = DefaultWelcome
	}
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Server.ModelName == "" {
		c.Server.ModelName = DefaultModelName
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("one_string_template", validateOneStringTemplate); err != nil {
		panic(err)
	}
	return v
}

// validateOneStringTemplate accepts fmt templates that take exactly one
// string argument, e.g. "Hello, %s!" or "100%% at %s".
func validateOneStringTemplate(fl validator.FieldLevel) bool {
	return isOneStringTemplate(fl.Field().String())
}

func isOneStringTemplate(tmpl string) bool {
	return !strings.Contains(fmt.Sprintf(tmpl, "x"), "%!")
}

// Validate checks the struct tags and that rule names are unique. Matcher
// trees are checked when the table is built.
func (c *ConfigFile) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	seen := make(map[string]struct{}, len(c.Rules))
	for _, r := range c.Rules {
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("%w: duplicate rule name %s", ErrInvalidConfig, r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	return nil
}

func (c *BotConfig) EffectiveExitKeyword() string {
	if c.ExitKeyword == nil {
		return bot.DefaultExitKeyword
	}
	return *c.ExitKeyword
}
