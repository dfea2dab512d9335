package workers

import "errors"

var (
	errUnsupportedSource     = errors.New("job has no file dataset source")
	errInvalidRetentionSpec  = errors.New("invalid retention schedule")
	errNonPositiveExportTick = errors.New("export interval must be positive")
)
