package frame

import (
	"testing"
	"time"
)

func TestStatsTitle(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  string
	}{
		{"zero", Stats{}, "Planet | 0 fps | 0.00 ms | 0 tris"},
		{"steady", Stats{FPS: 60, FrameTime: 16667 * time.Microsecond, Triangles: 20000}, "Planet | 60 fps | 16.67 ms | 20000 tris"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.Title("Planet"); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}
