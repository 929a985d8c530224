// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Data     DataConfig     `yaml:"data"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// DataConfig holds asset file locations, relative to the asset root.
type DataConfig struct {
	AssetRoot    string `yaml:"asset_root"`    // Base directory for all assets
	TerrainTable string `yaml:"terrain_table"` // Terrain type descriptor table (CSV)
	BlendTable   string `yaml:"blend_table"`   // Blend mask descriptor table (CSV)
	PlayerColors string `yaml:"player_colors"` // Player color sub-palette
}

// TerrainConfig holds terrain map settings.
type TerrainConfig struct {
	MapSize int `yaml:"map_size"` // Side length of the square tile map
}

// GameConfig holds gameplay and debugging settings.
type GameConfig struct {
	ScrollSpeed    float32 `yaml:"scroll_speed"` // Camera scroll speed, pixels per second
	ShowFPS        bool    `yaml:"show_fps"`
	ShowBlendMasks bool    `yaml:"show_blend_masks"` // Draw raw blend masks instead of blended overlays
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
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Data: DataConfig{
			AssetRoot:    "assets",
			TerrainTable: "terrain_meta.csv",
			BlendTable:   "blending_meta.csv",
			PlayerColors: "player_color_palette.pal",
		},
		Terrain: TerrainConfig{
			MapSize: 20,
		},
		Game: GameConfig{
			ScrollSpeed:    500,
			ShowFPS:        false,
			ShowBlendMasks: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
