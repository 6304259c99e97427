// Package portal speaks the Evennia portal session protocol on top of the
// raw socket layer.
//
// The portal sends one JSON command triple [name, args, kwargs] per
// logical line, terminating each line with the "<EOF>" marker, and may
// prefix a line with an "ACK[<guid>]" session header. The client
// identifies its session by prefixing its first payload with
// "GUID[<guid>]". The raw TCP stream imposes no framing of its own, so
// this package also reassembles fragmented and concatenated reads into
// complete lines.
package portal

import (
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("evennia.portal")

// Terminator ends every portal-to-client logical line.
const Terminator = "<EOF>"

const (
	guidPrefix = "GUID["
	ackPrefix  = "ACK["
)

// Line is one complete portal line with its session header, if any,
// split off.
type Line struct {
	Ack  string // guid echoed by the portal, "" when absent
	Text string
}

// LineBuffer reassembles the inbound byte stream into complete lines.
// Feed it every received chunk; incomplete trailing data is carried over
// to the next call.
type LineBuffer struct {
	pending string
}

// Feed appends chunk to the buffered stream and returns every line
// completed by it, in arrival order.
func (b *LineBuffer) Feed(chunk string) []Line {
	b.pending += chunk
	var lines []Line
	for {
		idx := strings.Index(b.pending, Terminator)
		if idx < 0 {
			return lines
		}
		raw := b.pending[:idx]
		b.pending = b.pending[idx+len(Terminator):]
		ack, text := StripAck(raw)
		lines = append(lines, Line{Ack: ack, Text: text})
	}
}

// Pending returns the incomplete tail still waiting for its terminator.
func (b *LineBuffer) Pending() string {
	return b.pending
}

// StripAck splits an "ACK[<guid>]" session header off the front of a
// line. Lines without a header pass through unchanged.
func StripAck(line string) (guid, rest string) {
	if !strings.HasPrefix(line, ackPrefix) {
		return "", line
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return "", line
	}
	return line[len(ackPrefix):end], line[end+1:]
}

// WithSessionHeader prefixes payload with the "GUID[<guid>]" header the
// portal uses to restore or create the client's server-side session.
func WithSessionHeader(guid, payload string) string {
	if guid == "" {
		log.Warning("WithSessionHeader: empty session guid")
		return payload
	}
	return guidPrefix + guid + "]" + payload
}
