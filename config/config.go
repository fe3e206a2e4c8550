package config

import (
	"time"

	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig      AppConfig      `env:"APPCONFIG"`
	TelegramConfig TelegramConfig `env:"TELEGRAMCONFIG"`
	DBConfig       DBConfig       `env:"DBCONFIG"`
	AnalyzerConfig AnalyzerConfig `env:"ANALYZERCONFIG"`
	SpeechConfig   SpeechConfig   `env:"SPEECHCONFIG"`
	GoalsConfig    GoalsConfig    `env:"GOALSCONFIG"`
}

type AppConfig struct {
	APPName  string `default:"nutrobot"`
	Version  string `default:"x.x.x" env:"VERSION"`
	Port     int    `default:"8080" env:"APP_PORT"`
	LogLevel string `default:"info" env:"LOG_LEVEL"`
}

type TelegramConfig struct {
	Token       string `required:"true" env:"TELEGRAM_TOKEN" default:"test-token"`
	PollTimeout int    `default:"30" env:"TELEGRAM_POLL_TIMEOUT"`
	Debug       bool   `default:"false" env:"TELEGRAM_DEBUG"`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"nutrobot" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

type AnalyzerConfig struct {
	APIKey            string        `required:"true" env:"OPENAI_API_KEY" default:"test-key"`
	Model             string        `default:"gpt-4-turbo-preview" env:"OPENAI_MODEL"`
	MaxAttempts       int           `default:"3" env:"ANALYZER_MAX_ATTEMPTS"`
	AttemptTimeout    time.Duration `default:"30s" env:"ANALYZER_ATTEMPT_TIMEOUT"`
	InitialBackoff    time.Duration `default:"500ms" env:"ANALYZER_INITIAL_BACKOFF"`
	MaxDescriptionLen int           `default:"500" env:"ANALYZER_MAX_DESCRIPTION_LEN"`
}

type SpeechConfig struct {
	Model       string `default:"whisper-1" env:"SPEECH_MODEL"`
	MinVoiceSec int    `default:"1" env:"SPEECH_MIN_VOICE_SEC"`
}

// GoalsConfig carries the per-diet macro profiles. Values are
// configuration, not domain logic; defaults match the profiles the
// bot has always shipped with.
type GoalsConfig struct {
	WeightLoss  MacroProfile `env:"GOALS_WEIGHT_LOSS"`
	MuscleGain  MacroProfile `env:"GOALS_MUSCLE_GAIN"`
	Maintenance MacroProfile `env:"GOALS_MAINTENANCE"`
	Keto        MacroProfile `env:"GOALS_KETO"`
}

type MacroProfile struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	applyGoalDefaults(&config.GoalsConfig)

	return config
}

func applyGoalDefaults(g *GoalsConfig) {
	if g.WeightLoss.Calories == 0 {
		g.WeightLoss = MacroProfile{Calories: 1500, Protein: 120, Fat: 50, Carbs: 150}
	}
	if g.MuscleGain.Calories == 0 {
		g.MuscleGain = MacroProfile{Calories: 2500, Protein: 180, Fat: 80, Carbs: 250}
	}
	if g.Maintenance.Calories == 0 {
		g.Maintenance = MacroProfile{Calories: 2000, Protein: 150, Fat: 65, Carbs: 200}
	}
	if g.Keto.Calories == 0 {
		g.Keto = MacroProfile{Calories: 1800, Protein: 120, Fat: 120, Carbs: 30}
	}
}
