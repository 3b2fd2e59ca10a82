package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/automoto/tilehop/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// SFXPath returns the embedded file of a sound effect.
func SFXPath(id config.SoundID) string {
	return path.Join("audio", "sfx", id.String()+".wav")
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}
	decoded, err := l.decode(name)
	if err != nil {
		return err
	}
	l.sfxCache[name] = decoded
	return nil
}

// LoadSFX returns a new player each time. SFX are cached as decoded bytes
// for instant playback.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	if err := l.PreloadSFX(name); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[name]))
}

func (l *AudioLoader) decode(name string) ([]byte, error) {
	data, err := audioFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}

// SFXPlayer plays the simulation's sound ids through an audio context.
type SFXPlayer struct {
	loader *AudioLoader
	Volume float64
}

// NewSFXPlayer creates the audio context and preloads every effect.
// Effects that fail to decode are skipped silently at play time.
func NewSFXPlayer(sampleRate int, volume float64) *SFXPlayer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	p := &SFXPlayer{loader: NewAudioLoader(ctx), Volume: volume}
	for id := range config.Sound.Names {
		_ = p.loader.PreloadSFX(SFXPath(id))
	}
	return p
}

// Play starts a one-shot effect.
func (p *SFXPlayer) Play(id config.SoundID) {
	if p == nil || p.Volume <= 0 || id == config.SoundNone {
		return
	}
	player, err := p.loader.LoadSFX(SFXPath(id))
	if err != nil {
		return
	}
	player.SetVolume(p.Volume)
	player.Play()
}
