package errors

// New creates an AppError in the given category wrapping err, which may be nil.
func New(category ErrorCategory, code, message string, err error) *AppError {
	return &AppError{
		Code:     code,
		Category: category,
		Message:  message,
		Err:      err,
	}
}

func NetworkError(code, message string, err error) *AppError {
	return New(ErrCategoryNetwork, code, message, err)
}

func ConfigError(code, message string, err error) *AppError {
	return New(ErrCategoryConfig, code, message, err)
}

func ValidationError(code, message string, err error) *AppError {
	return New(ErrCategoryValidation, code, message, err)
}

func SystemError(code, message string, err error) *AppError {
	return New(ErrCategorySystem, code, message, err)
}

func DecodeError(code, message string, err error) *AppError {
	return New(ErrCategoryDecode, code, message, err)
}
