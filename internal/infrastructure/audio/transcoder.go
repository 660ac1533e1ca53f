package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/DRSN-tech/voice-backend/internal/cfg"
	"github.com/DRSN-tech/voice-backend/internal/infrastructure"
	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
)

// Transcoder приводит загруженное аудио к каноническому формату:
// одноканальный WAV (pcm_s16le) с частотой дискретизации cfg.SampleRate.
// Конвертация выполняется внешним ffmpeg во временном каталоге,
// который удаляется по завершении запроса.
type Transcoder struct {
	cfg    *cfg.AudioCfg
	logger logger.Logger
}

func NewTranscoder(cfg *cfg.AudioCfg, logger logger.Logger) *Transcoder {
	return &Transcoder{
		cfg:    cfg,
		logger: logger,
	}
}

// EnsureWav возвращает аудио в каноническом WAV-формате.
// Если вход уже WAV, данные возвращаются как есть, без перекодирования.
func (t *Transcoder) EnsureWav(ctx context.Context, audio *usecase.AudioUpload) (*usecase.AudioUpload, error) {
	const op = "Transcoder.EnsureWav"

	if len(audio.Data) == 0 {
		return nil, e.Wrap(op, e.ErrNoAudio)
	}

	if isWav(audio.Data) {
		return audio, nil
	}

	converted, err := t.transcode(ctx, audio)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrTranscodeFailed, err))
	}

	return converted, nil
}

// transcode прогоняет данные через ffmpeg во временном каталоге.
func (t *Transcoder) transcode(ctx context.Context, audio *usecase.AudioUpload) (*usecase.AudioUpload, error) {
	ext, err := infrastructure.GetExtensionFromMIME(audio.MimeType)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "voice-transcode-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			t.logger.Warnf("failed to remove transcode dir %s: %v", dir, err)
		}
	}()

	inPath := filepath.Join(dir, "input."+ext)
	outPath := filepath.Join(dir, "output.wav")

	if err := os.WriteFile(inPath, audio.Data, 0o600); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, t.cfg.FFmpegPath,
		"-hide_banner",
		"-loglevel", "error",
		"-i", inPath,
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", t.cfg.SampleRate),
		"-acodec", "pcm_s16le",
		outPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %v: %s", err, stderr.String())
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, err
	}

	return usecase.NewAudioUpload(data, "audio/wav", int64(len(data)), audio.Name), nil
}

// isWav распознаёт WAV-контейнер по сигнатуре RIFF....WAVE.
func isWav(data []byte) bool {
	return len(data) >= 12 &&
		bytes.Equal(data[0:4], []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WAVE"))
}
