// Package logger builds log/slog loggers and keeps attribute names consistent.
//
// New returns a *slog.Logger configured through functional options; NewFromConfig
// reads level and format from a Config populated by pkg/config. Context extractors
// add request scoped attributes at log time:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "override saved", logger.Path(p), logger.Culture("fr-FR"))
//
// Libraries in this module accept a *slog.Logger through a WithLogger option and
// default to a discarding logger.
package logger
