// Package config handles runtime configuration loading.
//
// Window size and camera tuning are compile-time constants in package game;
// only presentation, asset and logging choices live here.
package config

import "fmt"

// Config holds all runtime settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds presentation settings.
type GraphicsConfig struct {
	VSync       bool `yaml:"vsync"`
	Multisample int  `yaml:"multisample"` // MSAA samples, 0 disables
	Atmosphere  bool `yaml:"atmosphere"`  // Draw the atmosphere shell
	Wireframe   bool `yaml:"wireframe"`   // Start in wireframe mode
}

// AssetsConfig holds optional asset locations.
type AssetsConfig struct {
	ShaderDir      string   `yaml:"shader_dir"`      // Overrides embedded GLSL when set
	SurfaceTexture string   `yaml:"surface_texture"` // PNG, TGA or BMP wrapped on the planet
	SkyboxFaces    []string `yaml:"skybox_faces"`    // +X, -X, +Y, -Y, +Z, -Z
	ScreenshotDir  string   `yaml:"screenshot_dir"`  // F12 output
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			VSync:       true,
			Multisample: 4,
			Atmosphere:  true,
			Wireframe:   false,
		},
		Assets: AssetsConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings that cannot be applied.
func (c *Config) Validate() error {
	switch c.Graphics.Multisample {
	case 0, 2, 4, 8, 16:
	default:
		return fmt.Errorf("graphics.multisample: %d is not one of 0, 2, 4, 8, 16", c.Graphics.Multisample)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}

	if n := len(c.Assets.SkyboxFaces); n != 0 && n != 6 {
		return fmt.Errorf("assets.skybox_faces: need 6 paths, got %d", n)
	}
	return nil
}

// SkyboxPaths returns the six face paths, or false when no skybox is configured.
func (c *Config) SkyboxPaths() ([6]string, bool) {
	var paths [6]string
	if len(c.Assets.SkyboxFaces) != 6 {
		return paths, false
	}
	copy(paths[:], c.Assets.SkyboxFaces)
	return paths, true
}
