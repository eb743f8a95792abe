package config

// FixtureExtensions are all recognized fixture file extensions
var FixtureExtensions = []string{".yaml", ".yml"}

// IsTestMode indicates if the program is running under go test.
// Set once by test helpers; printers use it to drop colour and timing.
var IsTestMode = false

// Environment variables read by the command-line driver
const (
	ColorEnvVar    = "PATCOVER_COLOR"
	DatabaseEnvVar = "PATCOVER_DB"
)

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Surface syntax keywords and names
const (
	UniverseName  = "Type"
	SigmaKeyword  = "Sigma"
	WildcardName  = "_"
	FallbackName  = "x"
	MaxUnfoldings = 1000
)

// Case kinds as written in fixtures and reports
const (
	CoverageKind = "coverage"
	CoveringKind = "covering"
	RefinesKind  = "refines"
	UnifyKind    = "unify"
)
