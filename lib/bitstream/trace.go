package bitstream

import "fmt"

// enableTrace gates debug tracing of cursor state. Compile-time constant,
// off by default — flip to true locally when chasing an off-by-one in the
// bit arithmetic. Mirrors the teacher's bitbuffer.Codec.Trace/ENABLE_TRACE.
const enableTrace = false

// traceWriter prints the writer's cursor state around an operation.
// Only prints if enableTrace is true.
func traceWriter(w *Writer, event, function, arguments string) {
	if !enableTrace {
		return
	}
	state := fmt.Sprintf("[%s %s] len=%d byteOffset=%d bitOffset=%d",
		event, function, len(w.Buf), w.ByteOffset, w.BitOffset)
	if arguments != "" {
		state = state + " --> " + arguments
	}
	println(state)
}

// traceReader prints the reader's cursor state around an operation.
// Only prints if enableTrace is true.
func traceReader(r *Reader, event, function, arguments string) {
	if !enableTrace {
		return
	}
	state := fmt.Sprintf("[%s %s] len=%d byteOffset=%d bitOffset=%d",
		event, function, len(r.Buf), r.ByteOffset, r.BitOffset)
	if arguments != "" {
		state = state + " --> " + arguments
	}
	println(state)
}
