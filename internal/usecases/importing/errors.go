package importing

import "fmt"

// Stage names where an import run can fail.
const (
	StageLoad              = "load"
	StageDiscover          = "discover"
	StagePersistHistorical = "persist_historical"
	StagePersistForecast   = "persist_forecast"
)

// ImportError is a fatal failure of one stage of an import run.
type ImportError struct {
	Err     error
	Stage   string
	Details string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("import failed at %s (%s): %v", e.Stage, e.Details, e.Err)
	}
	return fmt.Sprintf("import failed at %s: %v", e.Stage, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
