// Package capture records audio from the default input device.
package capture

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/whisperlist/whisperlist/internal/common"
)

const (
	sampleRate      = 16000
	channels        = 1
	framesPerBuffer = 512
	chunkBufferSize = 64
)

// Recorder captures int16 mono PCM from the microphone. Only one capture
// session may be active at a time.
type Recorder struct {
	stream    *portaudio.Stream
	chunks    chan []int16
	done      chan struct{}
	samples   []int16
	recording bool
}

// NewRecorder creates an idle recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Recording reports whether a capture session is active.
func (r *Recorder) Recording() bool {
	return r.recording
}

// Start opens the default input device and begins buffering audio
// chunks. Device or permission failures surface as ErrMicrophoneAccess
// and leave the recorder idle.
func (r *Recorder) Start() error {
	if r.recording {
		return common.ErrAlreadyRecording
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMicrophoneAccess, err)
	}

	device, err := portaudio.DefaultInputDevice()
	if err != nil {
		_ = portaudio.Terminate()
		return fmt.Errorf("%w: no default input device: %v", common.ErrMicrophoneAccess, err)
	}

	r.chunks = make(chan []int16, chunkBufferSize)
	r.done = make(chan struct{})
	r.samples = nil

	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: channels,
			Latency:  device.DefaultLowInputLatency,
		},
		SampleRate:      float64(sampleRate),
		FramesPerBuffer: framesPerBuffer,
	}

	stream, err := portaudio.OpenStream(params, func(in []int16) {
		if len(in) == 0 {
			return
		}
		buf := make([]int16, len(in))
		copy(buf, in)

		select {
		case r.chunks <- buf:
		default:
			// Buffer full; drop rather than block the real-time callback.
		}
	})
	if err != nil {
		_ = portaudio.Terminate()
		return fmt.Errorf("%w: failed to open stream: %v", common.ErrMicrophoneAccess, err)
	}

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return fmt.Errorf("%w: failed to start stream: %v", common.ErrMicrophoneAccess, err)
	}

	r.stream = stream
	r.recording = true

	go func() {
		defer close(r.done)
		for buf := range r.chunks {
			r.samples = append(r.samples, buf...)
		}
	}()

	return nil
}

// Stop finalizes the capture session, releases the device, and returns
// the buffered audio as a WAV blob.
func (r *Recorder) Stop() ([]byte, error) {
	if !r.recording {
		return nil, common.ErrNotRecording
	}

	stopErr := r.stream.Stop()
	closeErr := r.stream.Close()
	close(r.chunks)
	<-r.done
	_ = portaudio.Terminate()

	r.stream = nil
	r.recording = false

	if stopErr != nil {
		return nil, fmt.Errorf("failed to stop stream: %w", stopErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close stream: %w", closeErr)
	}

	return EncodeWAV(r.samples, sampleRate, channels), nil
}
