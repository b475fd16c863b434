package kcon

import "io"

type writerSink struct {
	w io.Writer
	// shared one-byte pass-through buffer: all mutex-respecting writers are
	// serialized by the console lock, the panic path may race it and
	// interleave bytes, which is the accepted fatal-path trade-off
	buf [1]byte
}

// WriterSink adapts an io.Writer (os.Stdout, a test buffer) to the one-byte
// console device contract. Write errors are swallowed: the device never
// fails as far as this subsystem is concerned.
func WriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) PutByte(b byte) {
	s.buf[0] = b
	s.w.Write(s.buf[:])
}

func putString(s Sink, str string) {
	// byte at a time, no []byte(str) conversion on the render path
	for i := 0; i < len(str); i++ {
		s.PutByte(str[i])
	}
}

func putBytes(s Sink, p []byte) {
	for i := 0; i < len(p); i++ {
		s.PutByte(p[i])
	}
}
