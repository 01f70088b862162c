package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ljurgs/game/internal/entities"
	"github.com/ljurgs/game/internal/world"
	"github.com/pelletier/go-toml/v2"
)

const (
	configDirName    = "spritewalk"
	settingsFileName = "settings.toml"
	configDirEnv     = "SPRITEWALK_CONFIG_DIR"
)

type WorldSettings struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	TileSize int     `toml:"tile_size"`
}

type SpriteSettings struct {
	FrameWidth  float64 `toml:"frame_width"`
	FrameHeight float64 `toml:"frame_height"`
	Scale       float64 `toml:"scale"`
	SheetRows   int     `toml:"sheet_rows"`
}

type PlayerSettings struct {
	Speed     float64        `toml:"speed"`
	ClickMode string         `toml:"click_mode"`
	Sprite    SpriteSettings `toml:"sprite"`
}

type CatSettings struct {
	Speed  float64        `toml:"speed"`
	Sprite SpriteSettings `toml:"sprite"`
}

type WanderSettings struct {
	IdleMinMs  float64 `toml:"idle_min_ms"`
	IdleMaxMs  float64 `toml:"idle_max_ms"`
	RetryMs    float64 `toml:"retry_ms"`
	MinLegDist float64 `toml:"min_leg_dist"`
	Margin     float64 `toml:"margin"`
	Attempts   int     `toml:"attempts"`
}

type AudioSettings struct {
	Enabled   bool   `toml:"enabled"`
	SoundsDir string `toml:"sounds_dir"`
}

// Settings is everything read from settings.toml.
type Settings struct {
	LogLevel string         `toml:"log_level"`
	World    WorldSettings  `toml:"world"`
	Player   PlayerSettings `toml:"player"`
	Cat      CatSettings    `toml:"cat"`
	Wander   WanderSettings `toml:"wander"`
	Audio    AudioSettings  `toml:"audio"`
}

func DefaultSettings() *Settings {
	w := entities.DefaultWanderConfig()
	return &Settings{
		LogLevel: "info",
		World: WorldSettings{
			Width:    world.DefaultWidth,
			Height:   world.DefaultHeight,
			TileSize: world.DefaultTileSize,
		},
		Player: PlayerSettings{
			Speed:     120,
			ClickMode: "path",
			Sprite:    SpriteSettings{FrameWidth: 32, FrameHeight: 32, Scale: 1.5, SheetRows: 4},
		},
		Cat: CatSettings{
			Speed:  50,
			Sprite: SpriteSettings{FrameWidth: 64, FrameHeight: 64, Scale: 0.5, SheetRows: 8},
		},
		Wander: WanderSettings{
			IdleMinMs:  w.IdleMinMs,
			IdleMaxMs:  w.IdleMaxMs,
			RetryMs:    w.RetryMs,
			MinLegDist: w.MinLegDist,
			Margin:     w.Margin,
			Attempts:   w.Attempts,
		},
		Audio: AudioSettings{SoundsDir: "assets/sounds"},
	}
}

// configBaseDir determines the directory holding settings.toml.
// If SPRITEWALK_CONFIG_DIR is set, it is used as-is. Otherwise, use UserConfigDir()/spritewalk.
func configBaseDir() (string, error) {
	if env := os.Getenv(configDirEnv); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func settingsFilePath() (string, error) {
	dir, err := configBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// LoadSettings reads settings.toml over the defaults. A missing file is
// created with the defaults. On any error the defaults are returned along
// with the error so callers can log it and carry on.
func LoadSettings() (*Settings, error) {
	path, err := settingsFilePath()
	if err != nil {
		return DefaultSettings(), fmt.Errorf("locate settings: %w", err)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := DefaultSettings()
		if err := SaveSettings(s); err != nil {
			return s, fmt.Errorf("write default settings: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("read settings: %w", err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes TOML over the defaults and validates the result.
func ParseSettings(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveSettings writes settings.toml atomically.
func SaveSettings(s *Settings) error {
	if s == nil {
		return errors.New("nil settings")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	path, err := settingsFilePath()
	if err != nil {
		return err
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *Settings) Validate() error {
	if s.World.Width <= 0 || s.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", s.World.Width, s.World.Height)
	}
	if s.Player.Speed <= 0 || s.Cat.Speed <= 0 {
		return errors.New("speeds must be positive")
	}
	if s.Player.ClickMode != "path" && s.Player.ClickMode != "direct" {
		return fmt.Errorf("unknown click_mode %q", s.Player.ClickMode)
	}
	for name, sp := range map[string]SpriteSettings{"player": s.Player.Sprite, "cat": s.Cat.Sprite} {
		if sp.FrameWidth <= 0 || sp.FrameHeight <= 0 || sp.Scale <= 0 {
			return fmt.Errorf("%s sprite footprint must be positive", name)
		}
		if sp.SheetRows != 4 && sp.SheetRows != 8 {
			return fmt.Errorf("%s sheet_rows must be 4 or 8, got %d", name, sp.SheetRows)
		}
	}
	w := s.Wander
	if w.IdleMinMs < 0 || w.IdleMaxMs < w.IdleMinMs {
		return fmt.Errorf("wander idle range [%v, %v] is invalid", w.IdleMinMs, w.IdleMaxMs)
	}
	if w.RetryMs <= 0 || w.MinLegDist <= 0 || w.Margin < 0 || w.Attempts <= 0 {
		return errors.New("wander retry, min leg, margin and attempts must be positive")
	}
	return nil
}

func (s *Settings) Rect() *world.Rect {
	return &world.Rect{Width: s.World.Width, Height: s.World.Height, TileSize: s.World.TileSize}
}

func (sp SpriteSettings) sprite() entities.Sprite {
	return entities.Sprite{
		FrameW: sp.FrameWidth,
		FrameH: sp.FrameHeight,
		Scale:  sp.Scale,
		Layout: entities.SheetLayout(sp.SheetRows),
	}
}

func (s *Settings) ClickMode() entities.ClickMode {
	if s.Player.ClickMode == "direct" {
		return entities.ClickDirect
	}
	return entities.ClickPath
}

func (s *Settings) WanderConfig() entities.WanderConfig {
	return entities.WanderConfig{
		IdleMinMs:  s.Wander.IdleMinMs,
		IdleMaxMs:  s.Wander.IdleMaxMs,
		RetryMs:    s.Wander.RetryMs,
		MinLegDist: s.Wander.MinLegDist,
		Margin:     s.Wander.Margin,
		Attempts:   s.Wander.Attempts,
	}
}
