package frame

import (
	"fmt"
	"time"
)

// Stats summarizes one second of rendering.
type Stats struct {
	FPS       int
	FrameTime time.Duration
	Triangles int
}

// Title formats the stats after the base window title.
func (s Stats) Title(base string) string {
	return fmt.Sprintf("%s | %d fps | %.2f ms | %d tris",
		base, s.FPS, float64(s.FrameTime.Microseconds())/1000, s.Triangles)
}
