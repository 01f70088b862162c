package game

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	log "github.com/sirupsen/logrus"
)

type SoundData struct {
	raw []byte
}

type AudioManager struct {
	ctx  *audio.Context
	turn *SoundData
	bump *SoundData
}

const disableAudioEnv = "SPRITEWALK_DISABLE_AUDIO"

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// getAudioContext returns nil unless audio is enabled in settings.
// SPRITEWALK_DISABLE_AUDIO=1 turns it off regardless.
func getAudioContext(enabled bool) *audio.Context {
	if !enabled || os.Getenv(disableAudioEnv) == "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(44100)
	})
	return audioCtx
}

// NewAudioManager loads the turn and bump cues from soundsDir, synthesizing
// a short beep for any file that is missing.
func NewAudioManager(s AudioSettings) *AudioManager {
	dir := s.SoundsDir
	if dir == "" {
		dir = "assets/sounds"
	}
	am := &AudioManager{ctx: getAudioContext(s.Enabled)}
	am.turn = loadOrBeep(dir, "turn.wav", 40, 990)
	am.bump = loadOrBeep(dir, "bump.wav", 120, 220)
	return am
}

func loadOrBeep(dir, file string, durationMs int, freq float64) *SoundData {
	sd, err := loadSoundData(dir, file)
	if err != nil {
		log.WithError(err).Debugf("sound %s not loaded, using a beep", file)
		return &SoundData{raw: synthBeepWAV(44100, durationMs, freq)}
	}
	return sd
}

func loadSoundData(dir, file string) (*SoundData, error) {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%s: empty sound file", file)
	}
	return &SoundData{raw: b}, nil
}

// Enabled reports whether cues are actually played.
func (am *AudioManager) Enabled() bool {
	return am != nil && am.ctx != nil
}

func (am *AudioManager) play(sd *SoundData) {
	if !am.Enabled() || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode from bytes each time to allow overlapping plays
	stream, err := wav.Decode(am.ctx, bytes.NewReader(sd.raw))
	if err != nil {
		log.WithError(err).Debug("decode sound")
		return
	}
	p, err := audio.NewPlayer(am.ctx, stream)
	if err != nil {
		log.WithError(err).Debug("create sound player")
		return
	}
	p.Play()
}

// PlayTurn is the cue for a promoted display direction.
func (am *AudioManager) PlayTurn() {
	if am != nil {
		am.play(am.turn)
	}
}

// PlayBump is the cue for the player running into the cat.
func (am *AudioManager) PlayBump() {
	if am != nil {
		am.play(am.bump)
	}
}

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate int, durationMs int, freq float64) []byte {
	numSamples := int(float64(sampleRate) * float64(durationMs) / 1000.0)
	// WAV header (44 bytes)
	byteRate := sampleRate * 2 // mono 16-bit
	blockAlign := 2
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)
	// RIFF header
	copy(buf[0:4], []byte{'R', 'I', 'F', 'F'})
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], []byte{'W', 'A', 'V', 'E'})
	// fmt chunk
	copy(buf[12:16], []byte{'f', 'm', 't', ' '})
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(byteRate))
	putLE16(buf[32:34], uint16(blockAlign))
	putLE16(buf[34:36], 16) // bits per sample
	// data chunk
	copy(buf[36:40], []byte{'d', 'a', 't', 'a'})
	putLE32(buf[40:44], uint32(dataSize))
	// samples
	amp := 0.25 // reduce volume
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		s := math.Sin(2 * math.Pi * freq * t)
		v := int16(s * 32767.0 * amp)
		off := 44 + i*2
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
