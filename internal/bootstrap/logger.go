package bootstrap

import (
	"log/slog"

	"github.com/xapes/xma-slots/internal/config"
	"github.com/xapes/xma-slots/internal/logger"
)

// SetupLogger installs the process-wide structured logger and logs the
// effective configuration (secrets excluded).
func SetupLogger(cfg *config.Config, version string) *slog.Logger {
	addSource := cfg.Environment == logger.EnvironmentDev
	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat)

	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"rpc_url", cfg.RPCURL,
		"commitment", cfg.ConfirmCommitment,
		"recovery_interval", cfg.RecoveryInterval.String(),
		"recovery_min_age", cfg.RecoveryMinAge.String())

	return l
}
