package media

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ExtractAudio uses ffmpeg to extract mono 16kHz WAV audio from a video file.
// Returns the path to the extracted audio file inside tmpDir.
func ExtractAudio(ctx context.Context, videoPath string, tmpDir string) (string, error) {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	out := filepath.Join(tmpDir, base+"_audio_16k.wav")

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y", "-i", videoPath,
		"-vn",
		"-ac", "1", "-ar", "16000",
		"-f", "wav",
		out,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", pkgerrors.Wrapf(err, "ffmpeg: %s", lastLine(output))
	}
	return out, nil
}

// lastLine extracts the final non-empty line of ffmpeg output, which is
// where ffmpeg reports the actual failure.
func lastLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
