package audio

import (
	"context"
	"testing"

	"github.com/DRSN-tech/voice-backend/internal/cfg"
	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wavHeader() []byte {
	// минимальный валидный заголовок RIFF/WAVE без данных
	return []byte{
		'R', 'I', 'F', 'F', 0x24, 0x00, 0x00, 0x00,
		'W', 'A', 'V', 'E', 'f', 'm', 't', ' ',
	}
}

func TestIsWav(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "ValidWavHeader", data: wavHeader(), want: true},
		{name: "TooShort", data: []byte("RIFF"), want: false},
		{name: "Mp3Frame", data: []byte{0xFF, 0xFB, 0x90, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}, want: false},
		{name: "Empty", data: nil, want: false},
		{name: "RiffButNotWave", data: []byte("RIFF....AVI LIST"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isWav(tt.data))
		})
	}
}

func TestEnsureWav_PassthroughForWav(t *testing.T) {
	tr := NewTranscoder(&cfg.AudioCfg{FFmpegPath: "ffmpeg", SampleRate: 16000}, logger.NewSlogLogger())

	upload := usecase.NewAudioUpload(wavHeader(), "audio/wav", int64(len(wavHeader())), "sample.wav")

	got, err := tr.EnsureWav(context.Background(), upload)
	require.NoError(t, err)
	assert.Same(t, upload, got)
}

func TestEnsureWav_EmptyAudio(t *testing.T) {
	tr := NewTranscoder(&cfg.AudioCfg{FFmpegPath: "ffmpeg", SampleRate: 16000}, logger.NewSlogLogger())

	_, err := tr.EnsureWav(context.Background(), usecase.NewAudioUpload(nil, "audio/wav", 0, "empty.wav"))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNoAudio)
}
