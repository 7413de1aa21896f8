package model

// StartType is the deployment behavior tag governing how an application
// participates in the running release.
type StartType string

const (
	// StartPermanent is the default: the release fails if the
	// application terminates.
	StartPermanent StartType = "permanent"
	// StartTransient restarts the application only on abnormal exit.
	StartTransient StartType = "transient"
	// StartTemporary never triggers a restart on exit.
	StartTemporary StartType = "temporary"
	// StartLoad loads the application's code without starting it. This
	// is the default for applications reached only through another
	// package's included_applications list.
	StartLoad StartType = "load"
	// StartNone neither loads nor starts the application.
	StartNone StartType = "none"
)

// ParseStartType recognizes the five valid start type atoms. The second
// return value is false for anything else.
func ParseStartType(s string) (StartType, bool) {
	switch StartType(s) {
	case StartPermanent, StartTransient, StartTemporary, StartLoad, StartNone:
		return StartType(s), true
	}
	return "", false
}
