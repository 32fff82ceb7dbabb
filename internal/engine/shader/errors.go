package shader

import "fmt"

// Stage identifies where program construction failed.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
	StageLink     Stage = "link"
)

// CompileError carries the driver's info log for a failed stage.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == StageLink {
		return fmt.Sprintf("link: %s", e.Log)
	}
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}
