// Package qlog serializes packet construction events to the qlog format.
// Every event is written as a single JSON array on its own line, so the
// output can be consumed as NDJSON.
package qlog

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/quicpack/quicpack/logging"
)

// A Tracer records packet events to an io.Writer.
// Events carry timestamps relative to the creation of the tracer.
type Tracer struct {
	mutex sync.Mutex

	w             io.Writer
	referenceTime time.Time
	runErr        error
}

var _ logging.Tracer = &Tracer{}

// NewTracer creates a new tracer that writes events to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w, referenceTime: time.Now()}
}

func (t *Tracer) BuiltPacket(p *logging.BuiltPacket) {
	t.recordEvent(time.Now(), eventPacketSent{
		Header: packetHeader{
			PacketType:       packetType(p.Type),
			PacketNumber:     p.PacketNumber,
			PacketSize:       p.Size,
			DestConnectionID: p.DestConnectionID,
		},
	})
}

func (t *Tracer) recordEvent(eventTime time.Time, details eventDetails) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.runErr != nil {
		return
	}
	buf := &bytes.Buffer{}
	enc := gojay.NewEncoder(buf)
	if err := enc.EncodeArray(event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}); err != nil {
		t.runErr = err
		return
	}
	buf.WriteRune('\n')
	if _, err := t.w.Write(buf.Bytes()); err != nil {
		t.runErr = err
	}
}

// Err returns the first error encountered while encoding or writing events.
// Once an error occurred, all subsequent events are dropped.
func (t *Tracer) Err() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.runErr
}
