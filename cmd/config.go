package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "recase"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	mappingFlagName   = "mapping"
	inverseFlagName   = "inverse"
	excludeFlagName   = "exclude"
	suffixFlagName    = "suffix"
	dryRunFlagName    = "dry-run"
	diffFlagName      = "diff"
	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	classesFlagName   = "classes"
	symbolFlagName    = "symbol"
	registrarFlagName = "registrar"
	annotateFlagName  = "annotation"
	ruleFlagName      = "rule"
	dropFlagName      = "drop-prefix"
	parallelFlagName  = "parallel"

	mappingFileKey     = "mapping.file"
	mappingInverseKey  = "mapping.inverse"
	excludeConfigKey   = "paths.exclude"
	suffixesConfigKey  = "paths.suffixes"
	dryRunConfigKey    = "run.dry_run"
	diffConfigKey      = "run.diff"
	renameTestsKey     = "rename.tests"
	renameSourcesKey   = "rename.sources"
	renameClassesKey   = "rename.classes"
	listClassesKey     = "list.classes"
	propsPathsKey      = "props.paths"
	usagePathsKey      = "usage.paths"
	prunePathsKey      = "prune.paths"
	pruneSymbolsKey    = "prune.symbols"
	pruneRegistrarsKey = "prune.registrars"
	pruneAnnotationKey = "prune.annotation"
	tidyPathsKey       = "tidy.paths"
	tidyRulesKey       = "tidy.rules"
	tidyDropKey        = "tidy.drop_prefixes"
	auditParallelKey   = "audit.parallel"

	defaultMappingFile   = "snake_to_camel_mapping.json"
	defaultAuditParallel = 4

	envPrefix = "RECASE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".recase.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultSuffixes      = []string{".ts"}
	defaultRenameTests   = []string{"tests/*.ts"}
	defaultRenameSources = []string{"src/..."}
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(mappingFileKey, defaultMappingFile)
	viper.SetDefault(mappingInverseKey, false)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(suffixesConfigKey, defaultSuffixes)
	viper.SetDefault(dryRunConfigKey, false)
	viper.SetDefault(diffConfigKey, false)

	viper.SetDefault(renameTestsKey, defaultRenameTests)
	viper.SetDefault(renameSourcesKey, defaultRenameSources)
	viper.SetDefault(renameClassesKey, []string{})
	viper.SetDefault(listClassesKey, []string{})
	viper.SetDefault(propsPathsKey, []string{})
	viper.SetDefault(usagePathsKey, []string{})
	viper.SetDefault(prunePathsKey, []string{})
	viper.SetDefault(pruneSymbolsKey, []string{})
	viper.SetDefault(pruneRegistrarsKey, []string{"Deno.test"})
	viper.SetDefault(pruneAnnotationKey, "disabled: {symbol} was removed")
	viper.SetDefault(tidyPathsKey, []string{})
	viper.SetDefault(tidyRulesKey, []string{})
	viper.SetDefault(tidyDropKey, []string{})
	viper.SetDefault(auditParallelKey, defaultAuditParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
