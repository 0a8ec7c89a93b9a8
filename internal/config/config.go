package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeConsole = "console"
	ModeTUI     = "tui"

	SourceFile  = "file"
	SourceRedis = "redis"
)

var (
	ErrUnknownMode   = errors.New("unknown mode")
	ErrUnknownSource = errors.New("unknown lexicon source")
	ErrInvalidBudget = errors.New("guess budget must be positive")
	ErrInvalidCanvas = errors.New("canvas size must be positive")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"HANGMAN_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"HANGMAN_LOG_FILE"`
	Mode     string  `yaml:"mode" env:"HANGMAN_MODE" env-default:"console"`
	Game     Game    `yaml:"game"`
	Lexicon  Lexicon `yaml:"lexicon"`
	Redis    Redis   `yaml:"redis"`
	Console  Console `yaml:"console"`
	Canvas   Canvas  `yaml:"canvas"`
}

type Game struct {
	GuessBudget int `yaml:"guess-budget" env:"HANGMAN_GUESS_BUDGET" env-default:"8"`
}

type Lexicon struct {
	Source   string `yaml:"source" env:"HANGMAN_LEXICON_SOURCE" env-default:"file"`
	Path     string `yaml:"path" env:"HANGMAN_LEXICON_PATH" env-default:"HangmanLexicon.txt"`
	RedisKey string `yaml:"redis-key" env:"HANGMAN_LEXICON_REDIS_KEY" env-default:"hangman:words"`
}

type Redis struct {
	Host string `yaml:"host" env:"HANGMAN_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"HANGMAN_REDIS_PORT" env-default:"6379"`
}

type Console struct {
	HideFigure bool `yaml:"hide-figure" env:"HANGMAN_HIDE_FIGURE"`
}

// Canvas - pixel geometry of the gallows drawing.
type Canvas struct {
	Width             int `yaml:"width" env-default:"400"`
	Height            int `yaml:"height" env-default:"560"`
	BeamOffset        int `yaml:"beam-offset" env-default:"20"`
	ScaffoldHeight    int `yaml:"scaffold-height" env-default:"360"`
	BeamLength        int `yaml:"beam-length" env-default:"144"`
	RopeLength        int `yaml:"rope-length" env-default:"18"`
	HeadRadius        int `yaml:"head-radius" env-default:"36"`
	BodyLength        int `yaml:"body-length" env-default:"144"`
	ArmOffsetFromHead int `yaml:"arm-offset-from-head" env-default:"28"`
	UpperArmLength    int `yaml:"upper-arm-length" env-default:"72"`
	LowerArmLength    int `yaml:"lower-arm-length" env-default:"44"`
	HipWidth          int `yaml:"hip-width" env-default:"36"`
	LegLength         int `yaml:"leg-length" env-default:"108"`
	FootLength        int `yaml:"foot-length" env-default:"28"`
	CharWidth         int `yaml:"char-width" env-default:"11"`
	FontSize          int `yaml:"font-size" env-default:"20"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

// LoadEnv - load configuration from environment variables only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeConsole, ModeTUI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	switch that.Lexicon.Source {
	case SourceFile, SourceRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, that.Lexicon.Source)
	}

	if that.Game.GuessBudget <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBudget, that.Game.GuessBudget)
	}

	if that.Canvas.Width <= 0 || that.Canvas.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, that.Canvas.Width, that.Canvas.Height)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
