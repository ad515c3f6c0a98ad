package logging

import (
	"context"

	apperrors "weblatedl/internal/errors"
	"weblatedl/internal/logger"
)

// Error logs msg at error level. An AppError in err's chain is expanded into
// fields; any other error is logged under "error".
func Error(ctx context.Context, log logger.Logger, msg string, err error) {
	if log == nil {
		return
	}
	if appErr, ok := apperrors.As(err); ok {
		log.ErrorContext(ctx, msg, Fields(appErr)...)
		return
	}
	log.ErrorContext(ctx, msg, logger.Error(err))
}

// Fields flattens appErr into log fields. Metadata cannot shadow the
// error_code, error_category, module, operation or error keys.
func Fields(appErr *apperrors.AppError) []logger.Field {
	if appErr == nil {
		return nil
	}

	fixed := []logger.Field{
		logger.String("error_code", appErr.Code),
		logger.String("error_category", string(appErr.Category)),
		logger.String("module", appErr.Module),
		logger.String("operation", appErr.Operation),
	}

	fields := make([]logger.Field, 0, len(fixed)+len(appErr.Metadata)+1)
	taken := make(map[string]bool, len(fixed)+1)
	for _, f := range fixed {
		if f.Value != "" {
			fields = append(fields, f)
		}
		taken[f.Key] = true
	}

	// error holds the cause, or the message when there is none.
	taken["error"] = true
	if appErr.Err != nil {
		fields = append(fields, logger.Error(appErr.Err))
	} else {
		fields = append(fields, logger.String("error", appErr.Message))
	}

	for k, v := range appErr.Metadata {
		if !taken[k] {
			fields = append(fields, logger.Any(k, v))
		}
	}
	return fields
}
