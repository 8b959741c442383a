package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftwizard/base/log"
)

const (
	envPrefix         = "NFTWIZARD"
	defaultConfigFile = "infra/configs/nftwizard/config.yaml"
)

func setDefaults() {
	viper.SetDefault("activeNetwork", "localhost")
	viper.SetDefault("context.timeout", 30*time.Second)
	viper.SetDefault("wizard.mintPrice", "0.001")
	viper.SetDefault("wizard.defaultFeeBps", 250)
	viper.SetDefault("wizard.approvalGracePeriod", time.Second)
	viper.SetDefault("submitter.pollInterval", 2*time.Second)
	viper.SetDefault("submitter.pollLimit", 10*time.Second)
	viper.SetDefault("submitter.confirmTimeout", 5*time.Minute)
	viper.SetDefault("cache.sizeMB", 8)
	viper.SetDefault("cache.ttl", 5*time.Minute)
}

// initConfig reads the config file named by --config, then lets the environment and the
// explicitly set flags override it
func initConfig(fs *pflag.FlagSet) error {
	file, err := fs.GetString("config")
	if err != nil {
		return err
	}

	setDefaults()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(file)
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("privateKey"); err != nil {
		return err
	}
	if err := viper.BindEnv("activeNetwork"); err != nil {
		return err
	}

	if err := viper.ReadInConfig(); err != nil {
		return xerrors.Errorf("failed to read config %s: %w", file, err)
	}

	if f := fs.Lookup("debug"); f != nil && f.Changed {
		if err := viper.BindPFlag("debug", f); err != nil {
			return err
		}
	}
	if f := fs.Lookup("network"); f != nil && f.Changed {
		viper.Set("activeNetwork", f.Value.String())
	}

	setupLogger(viper.GetBool("debug"))
	if viper.GetBool("debug") {
		log.Log().Info("RUN on DEBUG mode")
	}
	return nil
}

// setupLogger swaps the json production logger for a console one, quiet unless debugging
func setupLogger(debug bool) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return
	}
	log.Replace(l)
	log.SetDebug(debug)
}
