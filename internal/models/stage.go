package models

// Stage identifies where a project is in its life cycle. Configs written
// before the status->stage rename carry the value under the legacy "status"
// key; Project.Load copies it forward.
type Stage string

const (
	StageUnknown      Stage = "unknown"
	StageExperimental Stage = "experimental"
	StagePlanning     Stage = "planning"
	StageDevelopment  Stage = "development"
	StageTesting      Stage = "testing"
	StageStaging      Stage = "staging"
	StageRelease      Stage = "release"
	StageLive         Stage = "live"
)

func (s Stage) String() string {
	return string(s)
}

// Location identifies which storage root currently holds a project.
type Location string

const (
	LocationActive  Location = "active"
	LocationHold    Location = "hold"
	LocationArchive Location = "archive"
)

// Environment is a deployment stage a package may apply to.
type Environment = string

const (
	// BaseEnvironment represents the common dependencies and
	// circumstances across all other environments.
	BaseEnvironment Environment = "base"

	ControlEnvironment     Environment = "control"
	DevelopmentEnvironment Environment = "development"
	TestingEnvironment     Environment = "testing"
	StagingEnvironment     Environment = "staging"
	LiveEnvironment        Environment = "live"
)

// Environments lists the recognized deployment environments in report order
var Environments = []Environment{
	BaseEnvironment,
	ControlEnvironment,
	DevelopmentEnvironment,
	TestingEnvironment,
	StagingEnvironment,
	LiveEnvironment,
}

// DefaultVersion is the version assigned to a project without a VERSION.txt
const DefaultVersion = "0.1.0-d"
