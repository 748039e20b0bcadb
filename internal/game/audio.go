package game

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

const sfxVolume = 0.8

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundGrow
	SoundGameOver
	SoundMenuSelect
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect. No-op until the
// audio context is ready or when InitAudio failed.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := globalAudio.ctx.NewPlayer(&sampleReader{data: samples})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

const bytesPerFrame = 8 // 2 channels × float32

// writeFrame stores one [-1,1] sample into both stereo channels of frame i.
func writeFrame(buf []byte, i int, sample float64) {
	bits := math.Float32bits(float32(sample))
	off := i * bytesPerFrame
	binary.LittleEndian.PutUint32(buf[off:], bits)
	binary.LittleEndian.PutUint32(buf[off+4:], bits)
}

func newFrameBuf(n int) []byte { return make([]byte, n*bytesPerFrame) }

// clip limits a sample softly: cubic inside [-1,1], asymptotic outside.
func clip(x float64) float64 {
	switch {
	case x > 1.0:
		return 1.0 - 0.5/x
	case x < -1.0:
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// envelope evaluates an ADSR curve at normalized progress p in [0,1];
// attack, decay and release are fractions of the total duration.
func envelope(p, attack, decay, sustain, release float64) float64 {
	if p < attack {
		return p / attack
	}
	p -= attack
	if p < decay {
		return 1.0 - p/decay*(1.0-sustain)
	}
	if p+attack < 1.0-release {
		return sustain
	}
	return sustain * (1.0 - (p+attack-(1.0-release))/release)
}

// fmTone is two-operator FM: a carrier phase-modulated by a sine at
// ratio×carrier with the given modulation depth.
func fmTone(t, carrier, ratio, depth float64) float64 {
	return math.Sin(2*math.Pi*carrier*t + depth*math.Sin(2*math.Pi*carrier*ratio*t))
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundEat:
		return genEat()
	case SoundGrow:
		return genGrow()
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genEat: snappy FM pop with rising pitch.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	buf := newFrameBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := envelope(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fmTone(t, freq, 2.0, 3.5*env) * env * 0.5
		// Thin third harmonic for clarity.
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		writeFrame(buf, i, clip(s))
	}
	return buf
}

// genGrow: short two-note chime when the new tail segment lands.
func genGrow() []byte {
	freqs := []float64{659.25, 987.77} // E5 B5
	noteLen := SampleRate * 70 / 1000
	tail := int(0.14 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := envelope(np, 0.004, 0.55, 0.05, 0.35)
			s := fmTone(t, freq, 2.756, 4.5*env) * env * 0.34
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := newFrameBuf(total)
	for i, s := range mix {
		writeFrame(buf, i, clip(s))
	}
	return buf
}

// genGameOver: three descending notes, each drooping slightly in pitch.
func genGameOver() []byte {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := envelope(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fmTone(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub octave
			mix[i] += s
		}
	}
	buf := newFrameBuf(n)
	for i, s := range mix {
		writeFrame(buf, i, clip(s))
	}
	return buf
}

func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := newFrameBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := envelope(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fmTone(t, freq, 1.0, 0.6) * env * 0.38
		writeFrame(buf, i, clip(s))
	}
	return buf
}
