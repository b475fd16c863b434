package kcon

import "io"

/*********************************************************************************
io.Writer interface implementations

Two adapters glue the console to the io ecosystem:
 - SinkWriter wraps a Sink so stdlib helpers can stream into the device.
   It bypasses the console lock and the leveled decoration: callers that
   need atomic lines must go through Console/Client instead.
 - Client implements io.Writer itself, so it can be used with fmt.Fprintf:
     fmt.Fprintf(client.Lvl(LVL_WARN), "disk low: %d%%", percent)
   Bytes written this way are emitted verbatim as one decorated line at the
   client's current level; they are NOT scanned for directives, so payloads
   containing '%' are safe.
*/

type sinkWriter struct {
	sink Sink
}

// SinkWriter adapts a Sink back to io.Writer. It never fails.
func SinkWriter(s Sink) io.Writer {
	return &sinkWriter{sink: s}
}

func (sw *sinkWriter) Write(p []byte) (n int, err error) {
	putBytes(sw.sink, p)
	return len(p), nil
}

// Lvl sets the client's current level (used by Write/fmt.Fprintf) and returns
// the same client for convenient chaining.
func (lc *Client) Lvl(level LogLevel) *Client {
	lc.curLevel = normLevel(level)
	return lc
}

// Write implements io.Writer. It emits the provided bytes as one decorated
// log line at the client's curLevel and returns n=len(p). A nil payload is
// treated as a zero-length write.
func (lc *Client) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	lc.console.logRaw(lc.curLevel, lc.scope, p)
	return len(p), nil
}
