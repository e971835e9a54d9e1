package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"acsd/internal/structures"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "ACSD_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "ACSD_SAVE_INTERVAL")
	viper.BindEnv("latency.enabled", "ACSD_LATENCY_ENABLED")
	viper.BindEnv("cache.enabled", "ACSD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "ACSD_CACHE_SIZE")
	viper.BindEnv("auth.adminEmail", "ACSD_ADMIN_EMAIL")
	viper.BindEnv("auth.adminPassword", "ACSD_ADMIN_PASSWORD")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "AssociationSiteDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
