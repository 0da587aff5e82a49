// Package stream recovers frame boundaries from an unstructured TCP byte
// stream. A single read may carry zero, one, or several frames, or a frame
// split across reads; the reassembler is the only place boundaries are
// reconstructed, keeping framing separate from decoding.
package stream

import "github.com/CABMadeira/bodet-scoreboard/pkg/protocol"

// Reassembler buffers bytes for one connection and drains complete frames.
// It is owned by a single session and is not safe for concurrent use.
type Reassembler struct {
	buf []byte
}

// NewReassembler creates a reassembler with an empty buffer.
func NewReassembler() *Reassembler {
	return &Reassembler{
		buf: make([]byte, 0, 4*protocol.FrameSize),
	}
}

// Feed appends p to the buffer and returns every complete frame now
// available, in arrival order. Leftover bytes shorter than one frame stay
// buffered for the next call. Frames are emitted without any content
// validation; even a frame with a bad discriminator is handed to the codec
// so its failure can be reported per frame.
func (r *Reassembler) Feed(p []byte) [][]byte {
	r.buf = append(r.buf, p...)

	var frames [][]byte
	for len(r.buf) >= protocol.FrameSize {
		frame := make([]byte, protocol.FrameSize)
		copy(frame, r.buf[:protocol.FrameSize])
		frames = append(frames, frame)
		r.buf = r.buf[protocol.FrameSize:]
	}

	// Reclaim the drained prefix so the buffer does not grow without bound
	// on a long-lived connection.
	if len(frames) > 0 {
		remainder := make([]byte, len(r.buf), 4*protocol.FrameSize)
		copy(remainder, r.buf)
		r.buf = remainder
	}

	return frames
}

// Pending returns the number of buffered bytes not yet forming a frame.
func (r *Reassembler) Pending() int {
	return len(r.buf)
}
