package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

// maxIntensity bounds the published scalar so a loud track cannot blow up
// the speed modulation downstream.
const maxIntensity = 1.5

// Source plays an audio file on loop and publishes a per-block intensity
// into a Level cell. Absence of a Source is not an error anywhere; the field
// simply sees zero intensity.
type Source struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	level    *Level
}

// intensityTap wraps a beep.Streamer and publishes the RMS of each streamed
// block, compressed and clamped, into the level cell.
type intensityTap struct {
	src   beep.Streamer
	level *Level
}

func (t *intensityTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n > 0 {
		var sumSquares float64
		for i := 0; i < n; i++ {
			mono := (samples[i][0] + samples[i][1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(n))
		v := math.Pow(rms, 0.3)
		if v > maxIntensity {
			v = maxIntensity
		}
		t.level.Store(v)
	}
	return n, ok
}

func (t *intensityTap) Err() error { return t.src.Err() }

// Open decodes the audio file at path, starts looping playback through the
// speaker, and wires the intensity tap into level.
func Open(path string, level *Level) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("unsupported audio file type %q", filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(&intensityTap{src: beep.Loop(-1, streamer), level: level})

	return &Source{file: f, streamer: streamer, format: format, level: level}, nil
}

// Close stops playback and releases the decoder and file.
func (s *Source) Close() error {
	speaker.Clear()
	s.level.Store(0)
	err := s.streamer.Close()
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// ChooseFile opens a native file dialog for a supported audio track. It
// returns an empty path without error when the user cancels.
func ChooseFile() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Audio Track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}
