package media

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// SniffAudio recognizes the container formats the runtime accepts
// directly. Anything else goes through ConvertToWAV first.
func SniffAudio(data []byte) (contentType string, ok bool) {
	switch {
	case isWAV(data):
		return "audio/wav", true
	case bytes.HasPrefix(data, []byte("fLaC")):
		return "audio/flac", true
	case bytes.HasPrefix(data, []byte("OggS")):
		return "audio/ogg", true
	case isMP3(data):
		return "audio/mpeg", true
	}
	return "", false
}

func isWAV(data []byte) bool {
	return len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE"))
}

func isMP3(data []byte) bool {
	if bytes.HasPrefix(data, []byte("ID3")) {
		return true
	}
	// bare MPEG frame sync
	return len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0
}

// ProbeWAV walks the RIFF chunks and returns the size of the PCM data
// chunk. A header-only file counts as empty audio.
func ProbeWAV(data []byte) (dataSize uint32, err error) {
	if !isWAV(data) {
		return 0, fmt.Errorf("not a wav file")
	}
	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		if chunkID == "data" {
			if chunkSize == 0 {
				return 0, fmt.Errorf("wav data chunk is empty")
			}
			return chunkSize, nil
		}
		offset += 8 + int(chunkSize)
		if chunkSize%2 == 1 {
			offset++
		}
	}
	return 0, fmt.Errorf("wav data chunk not found")
}

// ConvertToWAV reencodes an unrecognized clip to 16 kHz mono wav, the
// shape speech-recognition endpoints digest best. Requires ffmpeg in PATH.
func ConvertToWAV(audioData []byte) ([]byte, error) {
	inputFile := fmt.Sprintf("%s/inferhub_in_%d", os.TempDir(), time.Now().UnixNano())
	outputFile := fmt.Sprintf("%s/inferhub_out_%d.wav", os.TempDir(), time.Now().UnixNano())

	defer os.Remove(inputFile)
	defer os.Remove(outputFile)

	if err := os.WriteFile(inputFile, audioData, 0o644); err != nil {
		return nil, err
	}

	cmd := exec.Command("ffmpeg",
		"-i", inputFile,
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		outputFile,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg error: %v\n%s", err, stderr.String())
	}

	return os.ReadFile(outputFile)
}
