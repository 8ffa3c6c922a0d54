package domain

import "errors"

var (
	// ErrNoActiveRate means the pair has no active row. Absence, not a failure.
	ErrNoActiveRate = errors.New("no active exchange rate")

	// ErrSourceUnavailable covers transport failures, timeouts and non-2xx
	// responses from the third-party rate API.
	ErrSourceUnavailable = errors.New("rate source unavailable")

	// ErrBadPayload means the API answered but the expected rate field was
	// missing or not numeric.
	ErrBadPayload = errors.New("malformed rate payload")

	// ErrImplausibleRate means the fetched value fell outside the configured
	// plausibility band.
	ErrImplausibleRate = errors.New("rate outside plausibility bounds")

	// ErrStorage wraps persistence failures on either the read or write path.
	ErrStorage = errors.New("rate storage failure")

	ErrProfileNotFound = errors.New("profile not found")
)
