// Package socket manages a single outbound blocking TCP connection and
// line-oriented byte transfer for the bridge.
//
// Every operation is safe against a closed or never-connected handle: it
// logs a diagnostic and returns its failure indicator instead of faulting.
// The connection lifecycle is Unconnected -> Connected -> Closed with no
// automatic reconnect; callers re-invoke Connect after a fatal error.
//
// Connections are not safe for concurrent use from multiple goroutines
// without external synchronization. Callers that need cancellation of a
// blocked Send or Receive run the connection on a dedicated goroutine and
// close it from another.
package socket

import (
	"bufio"
	"errors"
	"net"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("evennia.socket")

// recvCap bounds a single read while draining pending data. Matches the
// datagram-sized ceiling the original transfer loop used.
const recvCap = 65507

// Dialer creates the underlying transport connection. The default is
// blocking TCP; tests and future non-blocking transports substitute their
// own without touching the rest of the bridge.
type Dialer interface {
	Dial(address string, port int) (net.Conn, error)
}

type tcpDialer struct{}

func (tcpDialer) Dial(address string, port int) (net.Conn, error) {
	return net.Dial("tcp", net.JoinHostPort(address, strconv.Itoa(port)))
}

// Conn owns one transport connection in blocking mode. The zero Conn, and
// a Conn whose Close has run, are invalid for every operation except a
// no-op Close.
type Conn struct {
	c   net.Conn
	br  *bufio.Reader
	cap int
}

// Valid reports whether the connection holds a live descriptor.
func (c *Conn) Valid() bool {
	return c != nil && c.c != nil
}

// Connect opens a blocking TCP connection to an IPv4 literal address.
// It fails when the address does not parse as IPv4, the port is out of
// range, or the connect handshake does not complete; no connection is
// returned on failure.
func Connect(address string, port int) (*Conn, bool) {
	return ConnectWith(tcpDialer{}, address, port)
}

// ConnectWith is Connect with an explicit transport dialer.
func ConnectWith(d Dialer, address string, port int) (*Conn, bool) {
	ip := net.ParseIP(address)
	if ip == nil || ip.To4() == nil {
		log.Warningf("Connect: %q is not an IPv4 literal", address)
		return nil, false
	}
	if port <= 0 || port > 65535 {
		log.Warningf("Connect: port %d out of range", port)
		return nil, false
	}
	nc, err := d.Dial(ip.String(), port)
	if err != nil {
		log.Errorf("Connect: %s", err.Error())
		return nil, false
	}
	return Wrap(nc), true
}

// Wrap adopts an already-established transport connection.
func Wrap(nc net.Conn) *Conn {
	return &Conn{c: nc, br: bufio.NewReaderSize(nc, recvCap), cap: recvCap}
}

// SetReceiveCap overrides the per-read byte cap used by Receive.
// Non-positive values are ignored.
func (c *Conn) SetReceiveCap(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.cap = n
}

// Send encodes message as UTF-8 bytes and writes them in one blocking
// call. A short or failed write is total failure; there is no retry loop.
func (c *Conn) Send(message string) bool {
	if !c.Valid() {
		log.Warning("Send: connection is not valid")
		return false
	}
	data := []byte(message)
	n, err := c.c.Write(data)
	if err != nil {
		log.Errorf("Send: %s", err.Error())
		return false
	}
	if n != len(data) {
		log.Errorf("Send: short write (%d of %d bytes)", n, len(data))
		return false
	}
	return true
}

// Poll reports whether unread bytes are currently available. It returns
// false, not an error, when nothing is pending or the connection is
// invalid.
func (c *Conn) Poll() bool {
	if !c.Valid() {
		log.Warning("Poll: connection is not valid")
		return false
	}
	if c.br.Buffered() > 0 {
		return true
	}
	// A near-immediate deadline turns the buffered peek into a readiness
	// probe. The deadline must sit in the future: reads against an
	// already-expired deadline time out before touching the descriptor,
	// so pending bytes would never be seen.
	if err := c.c.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return false
	}
	_, err := c.br.Peek(1)
	_ = c.c.SetReadDeadline(time.Time{})
	if err == nil {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return false
	}
	// EOF or a transport fault: nothing further will arrive.
	return c.br.Buffered() > 0
}

// Receive drains pending data, reading up to recvCap bytes per pass and
// accumulating every chunk, then decodes the result as UTF-8 text. It
// fails when no bytes were available at all. Receive never blocks waiting
// for a peer that has sent nothing.
func (c *Conn) Receive() (string, bool) {
	if !c.Valid() {
		log.Warning("Receive: connection is not valid")
		return "", false
	}
	var acc []byte
	buf := make([]byte, c.cap)
	for c.Poll() {
		n, err := c.br.Read(buf)
		if n > 0 {
			acc = append(acc, buf[:n]...)
		}
		if err != nil {
			break
		}
	}
	if len(acc) == 0 {
		log.Warning("Receive: no data to read")
		return "", false
	}
	if !utf8.Valid(acc) {
		log.Warningf("Receive: %d bytes are not valid UTF-8, passing through", len(acc))
	}
	return string(acc), true
}

// Close closes the descriptor and invalidates the handle. Closing an
// already-closed or never-connected connection returns false without
// raising a fault.
func (c *Conn) Close() bool {
	if !c.Valid() {
		log.Warning("Close: connection is not valid")
		return false
	}
	err := c.c.Close()
	c.c = nil
	c.br = nil
	if err != nil {
		log.Errorf("Close: %s", err.Error())
		return false
	}
	return true
}
