package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFiles    []string
	level, version string
	jsonLogs       bool

	logger = zap.NewNop().Sugar()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "uextern",
	Short:         "Generate Haxe extern declarations from native reflection data",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "write logs as JSON")
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")
}

// parseLevel accepts zap level names plus "trace", which maps to debug.
func parseLevel(s string) (zapcore.Level, error) {
	if strings.EqualFold(s, "trace") {
		return zapcore.DebugLevel, nil
	}
	return zapcore.ParseLevel(s)
}

func newLogger(lvl zapcore.Level, json bool) (*zap.Logger, error) {
	if json {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		config.OutputPaths = []string{"stderr"}
		return config.Build()
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return config.Build()
}

func setLogger(s string) {
	lvl, err := parseLevel(s)
	if err != nil {
		panic("invalid log level: " + s)
	}
	l, err := newLogger(lvl, jsonLogs)
	if err != nil {
		panic(err)
	}
	logger = l.Sugar().Named("uextern")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setLogger(level)

	if len(configFiles) > 0 {
		// Use config file from the flag.
		viper.SetConfigFile(configFiles[0])
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("uextern")
	}

	viper.SetEnvPrefix("UEXTERN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debugw("using config file(s)", "config", viper.ConfigFileUsed())
	} else {
		logger.Debugw("unable to use config file(s)", "error", err, "config", viper.ConfigFileUsed())
	}
	if len(configFiles) > 1 {
		for _, file := range configFiles[1:] {
			if configBytes, err := os.ReadFile(file); err == nil {
				if err = viper.MergeConfig(bytes.NewReader(configBytes)); err != nil {
					logger.Warnw("failed to merge config file", "error", err, "file", file)
				} else {
					logger.Debugw("merged config file", "file", file)
				}
			}
		}
	}
	if len(version) > 0 {
		viper.Set("version", version)
	}

	// the config file may pick a level when the flag was left alone
	if !rootCmd.PersistentFlags().Changed("level") {
		if cfgLevel := viper.GetString("log.level"); cfgLevel != "" && !strings.EqualFold(cfgLevel, level) {
			setLogger(cfgLevel)
		}
	}
}

// SetVersion records the build version reported by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
