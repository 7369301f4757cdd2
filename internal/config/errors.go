package config

import "github.com/ayoisaiah/flightlog/internal/apperr"

var (
	errReadConfig = &apperr.Error{
		Kind:    apperr.Config,
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Kind:    apperr.Config,
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Kind:    apperr.Config,
		Message: "editor prompt failed",
	}

	errTooFewArgs = &apperr.Error{
		Kind:    apperr.InvalidRoute,
		Message: "expected an origin, at least one waypoint and the elapsed time, got %d argument(s)",
	}

	errMisplacedOption = &apperr.Error{
		Kind:    apperr.Usage,
		Message: "option %q must come before ORIGIN: flightlog [OPTIONS] ORIGIN WAYPOINT... ELAPSED",
	}

	errInvalidLogLevel = &apperr.Error{
		Kind:    apperr.Config,
		Message: "log level must be one of debug, info, warn or error, got %q",
	}

	errInvalidLogRotation = &apperr.Error{
		Kind:    apperr.Config,
		Message: "log rotation settings must not be negative",
	}

	errInvalidEditor = &apperr.Error{
		Kind:    apperr.Config,
		Message: "invalid editor command %q",
	}
)
