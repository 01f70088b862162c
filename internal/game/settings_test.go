package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ljurgs/game/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(configDirEnv, dir)
	return dir
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, 1280.0, s.World.Width)
	assert.Equal(t, 720.0, s.World.Height)
	assert.Equal(t, entities.ClickPath, s.ClickMode())
	assert.Equal(t, entities.DefaultWanderConfig(), s.WanderConfig())
	assert.Equal(t, entities.Sprite{FrameW: 32, FrameH: 32, Scale: 1.5, Layout: entities.FourRowSheet}, s.Player.Sprite.sprite())
	assert.Equal(t, entities.Sprite{FrameW: 64, FrameH: 64, Scale: 0.5, Layout: entities.EightRowSheet}, s.Cat.Sprite.sprite())
}

func TestLoadSettingsWritesDefaults(t *testing.T) {
	dir := useConfigDir(t)
	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	_, err = os.Stat(filepath.Join(dir, settingsFileName))
	assert.NoError(t, err, "defaults should be written back")
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	dir := useConfigDir(t)
	doc := `
log_level = "debug"

[player]
speed = 200.0
click_mode = "direct"

[wander]
attempts = 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(doc), 0o644))

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 200.0, s.Player.Speed)
	assert.Equal(t, entities.ClickDirect, s.ClickMode())
	assert.Equal(t, 4, s.Wander.Attempts)

	def := DefaultSettings()
	assert.Equal(t, def.Player.Sprite, s.Player.Sprite)
	assert.Equal(t, def.Cat, s.Cat)
	assert.Equal(t, def.World, s.World)
	assert.Equal(t, def.Wander.MinLegDist, s.Wander.MinLegDist)
}

func TestLoadSettingsFallsBack(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed", doc: "[player\nspeed = "},
		{name: "bad click mode", doc: "[player]\nclick_mode = \"teleport\"\n"},
		{name: "bad sheet", doc: "[cat.sprite]\nsheet_rows = 6\n"},
		{name: "inverted idle range", doc: "[wander]\nidle_min_ms = 5000.0\nidle_max_ms = 10.0\n"},
		{name: "empty world", doc: "[world]\nwidth = 0.0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := useConfigDir(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(tc.doc), 0o644))
			s, err := LoadSettings()
			assert.Error(t, err)
			assert.Equal(t, DefaultSettings(), s)
		})
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	dir := useConfigDir(t)
	s := DefaultSettings()
	s.Cat.Speed = 75
	s.Audio.Enabled = true
	s.Wander.Margin = 64
	require.NoError(t, SaveSettings(s))

	_, err := os.Stat(filepath.Join(dir, settingsFileName+".tmp"))
	assert.True(t, os.IsNotExist(err), "temp file left behind")

	got, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSaveSettingsRejectsInvalid(t *testing.T) {
	useConfigDir(t)
	assert.Error(t, SaveSettings(nil))
	s := DefaultSettings()
	s.Player.Speed = -1
	assert.Error(t, SaveSettings(s))
}
