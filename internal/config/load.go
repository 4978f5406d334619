package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys understood by greenbench.
const (
	KeyScale             = "scale"
	KeyContinueOnFailure = "continue_on_failure"
	KeyVerbose           = "verbose"
	KeyLogFile           = "log_file"
	KeyMetricsFile       = "metrics_file"
	KeyMetricsAddr       = "metrics_addr"
)

// Settings is the typed view of the loaded configuration.
type Settings struct {
	Scale             int
	ContinueOnFailure bool
	Verbose           bool
	LogFile           string
	MetricsFile       string
	MetricsAddr       string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyScale, 1)
	v.SetDefault(KeyContinueOnFailure, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyMetricsAddr, "")
}

// Load reads .env, the config file and GREENBENCH_* variables into v.
// Without cfgFile, ./greenbench.yaml is used when present.
func Load(v *viper.Viper, cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("greenbench")
	}

	v.SetEnvPrefix("GREENBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || (cfgFile == "" && errors.Is(err, fs.ErrNotExist)) {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	return nil
}

// FromViper returns the Settings held by v.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		Scale:             v.GetInt(KeyScale),
		ContinueOnFailure: v.GetBool(KeyContinueOnFailure),
		Verbose:           v.GetBool(KeyVerbose),
		LogFile:           v.GetString(KeyLogFile),
		MetricsFile:       v.GetString(KeyMetricsFile),
		MetricsAddr:       v.GetString(KeyMetricsAddr),
	}
}
