package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	chimeSampleRate = 44100
	chimeFreqHz     = 880
	chimeDurationMs = 350
)

var (
	ctx      *oto.Context
	ctxOnce  sync.Once
	ctxReady bool
)

// wavFormat describes the PCM layout of a decoded WAV file.
type wavFormat struct {
	SampleRate int
	Channels   int
}

func initContext(sampleRate, channels int) {
	ctxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}
		c, ready, err := oto.NewContext(op)
		if err != nil {
			log.Printf("audio unavailable: %v", err)
			return
		}
		<-ready
		ctx = c
		ctxReady = true
	})
}

// Chime plays the reminder sound once. A configured WAV file is used
// when present; otherwise a short synthesized tone plays. Playback is
// fire-and-forget; failures are logged, never fatal.
type Chime struct {
	format wavFormat
	pcm    []byte
}

// NewChime loads soundPath when non-empty, falling back to the built-in
// tone on any problem.
func NewChime(soundPath string) *Chime {
	if soundPath != "" {
		data, err := os.ReadFile(soundPath)
		if err == nil {
			format, pcm, werr := decodeWAV(data)
			if werr == nil {
				return &Chime{format: format, pcm: pcm}
			}
			err = werr
		}
		log.Printf("alert sound %q unusable, using built-in tone: %v", soundPath, err)
	}
	return &Chime{
		format: wavFormat{SampleRate: chimeSampleRate, Channels: 1},
		pcm:    synthesizeTone(),
	}
}

// Play starts playback and returns immediately.
func (c *Chime) Play() {
	initContext(c.format.SampleRate, c.format.Channels)
	if !ctxReady {
		return
	}
	player := ctx.NewPlayer(bytes.NewReader(c.pcm))
	player.Play()
	go func() {
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("closing audio player: %v", err)
		}
	}()
}

// synthesizeTone renders the fallback beep as 16-bit mono PCM with a
// linear fade-out so it does not click.
func synthesizeTone() []byte {
	samples := chimeSampleRate * chimeDurationMs / 1000
	buf := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		fade := 1.0 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*chimeFreqHz*float64(i)/chimeSampleRate) * fade * 0.4
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	return buf
}

// decodeWAV extracts the format and raw PCM from a 16-bit WAV file.
func decodeWAV(data []byte) (wavFormat, []byte, error) {
	r := bytes.NewReader(data)

	header := make([]byte, 12)
	if _, err := io.ReadFull(r, header); err != nil {
		return wavFormat{}, nil, err
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return wavFormat{}, nil, errors.New("not a RIFF/WAVE file")
	}

	var format wavFormat
	for {
		chunk := make([]byte, 4)
		if _, err := io.ReadFull(r, chunk); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return wavFormat{}, nil, errors.New("no data chunk found")
			}
			return wavFormat{}, nil, err
		}
		var size uint32
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return wavFormat{}, nil, err
		}

		switch string(chunk) {
		case "fmt ":
			var audioFormat, channels uint16
			var sampleRate uint32
			binary.Read(r, binary.LittleEndian, &audioFormat)
			binary.Read(r, binary.LittleEndian, &channels)
			binary.Read(r, binary.LittleEndian, &sampleRate)
			var bitsPerSample uint16
			r.Seek(6, io.SeekCurrent)
			binary.Read(r, binary.LittleEndian, &bitsPerSample)
			if bitsPerSample != 16 {
				return wavFormat{}, nil, errors.New("only 16-bit WAV is supported")
			}
			format.SampleRate = int(sampleRate)
			format.Channels = int(channels)
			if rest := int64(size) - 16; rest > 0 {
				r.Seek(rest, io.SeekCurrent)
			}
		case "data":
			if format.SampleRate == 0 {
				return wavFormat{}, nil, errors.New("data chunk before fmt chunk")
			}
			pcm := make([]byte, size)
			if _, err := io.ReadFull(r, pcm); err != nil {
				return wavFormat{}, nil, err
			}
			return format, pcm, nil
		default:
			r.Seek(int64(size), io.SeekCurrent)
		}
	}
}
