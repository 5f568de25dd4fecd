package helpers

// Deployment stages recognized by the bootstrap code.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage reports whether the given stage name is one we deploy to.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	}
	return false
}
