package model

import (
	"context"
	"encoding/binary"
	"encoding/json"
)

type fakePipeline struct {
	raw     json.RawMessage
	err     error
	calls   int
	lastReq PipelineRequest
}

func (p *fakePipeline) Invoke(_ context.Context, req PipelineRequest) (json.RawMessage, error) {
	p.calls++
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	return p.raw, nil
}

type fakeFactory struct {
	pipeline *fakePipeline
	err      error
	calls    int
	built    []ModelDescriptor
}

func (f *fakeFactory) make(d ModelDescriptor) (Pipeline, error) {
	f.calls++
	f.built = append(f.built, d)
	if f.err != nil {
		return nil, f.err
	}
	return f.pipeline, nil
}

// makeWAV builds a minimal RIFF/WAVE file with a data chunk of the given
// payload size.
func makeWAV(dataLen int) []byte {
	fmtChunk := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtChunk[0:2], 1)      // PCM
	binary.LittleEndian.PutUint16(fmtChunk[2:4], 1)      // mono
	binary.LittleEndian.PutUint32(fmtChunk[4:8], 16000)  // sample rate
	binary.LittleEndian.PutUint32(fmtChunk[8:12], 32000) // byte rate
	binary.LittleEndian.PutUint16(fmtChunk[12:14], 2)
	binary.LittleEndian.PutUint16(fmtChunk[14:16], 16)

	body := []byte("WAVE")
	body = append(body, []byte("fmt ")...)
	body = binary.LittleEndian.AppendUint32(body, 16)
	body = append(body, fmtChunk...)
	body = append(body, []byte("data")...)
	body = binary.LittleEndian.AppendUint32(body, uint32(dataLen))
	body = append(body, make([]byte, dataLen)...)

	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}
