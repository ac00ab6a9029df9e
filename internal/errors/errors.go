package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/keyring"
	"github.com/julianstephens/smokeless/internal/logger"
	"github.com/julianstephens/smokeless/internal/storage"
	"github.com/julianstephens/smokeless/internal/validation"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a follow-up suggestion for well-known failures, or "".
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, storage.ErrNotInitialized):
		return "Run 'smokeless init' to create the database."
	case stderrors.Is(err, storage.ErrNotFound):
		return "Run 'smokeless onboard' to set up your quit date and profile."
	case stderrors.Is(err, validation.ErrInvalidProfile):
		return "Update your profile with 'smokeless profile set'."
	case stderrors.Is(err, keyring.ErrKeyringUnavailable):
		return "Set " + constants.EnvConnectionString + " or pass --config instead of using the OS keyring."
	}
	return ""
}

// Fatal logs an error, prints it with any hint, and exits with code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "       %s\n", hint)
		}
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits with code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
