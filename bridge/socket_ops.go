package bridge

import (
	"github.com/tliron/commonlog"

	"github.com/castlelorestudios/EvenniaPluginSampleProject/socket"
)

var log = commonlog.GetLogger("evennia.bridge")

// Connect opens a blocking TCP connection to an IPv4 literal and port.
// On failure no connection is returned.
func Connect(address string, port int) (*socket.Conn, bool) {
	return socket.Connect(address, port)
}

// SendMessage writes message to the connection in one blocking call.
func SendMessage(conn *socket.Conn, message string) bool {
	if !conn.Valid() {
		log.Warning("SendMessage: connection is not valid")
		return false
	}
	return conn.Send(message)
}

// GetMessage drains whatever the server has sent and returns it as text.
// ok is false when the connection is invalid or nothing was pending.
func GetMessage(conn *socket.Conn) (string, bool) {
	if !conn.Valid() {
		log.Warning("GetMessage: connection is not valid")
		return "", false
	}
	return conn.Receive()
}

// HasPendingData reports whether unread bytes are available.
func HasPendingData(conn *socket.Conn) bool {
	if !conn.Valid() {
		log.Warning("HasPendingData: connection is not valid")
		return false
	}
	return conn.Poll()
}

// CloseConnection closes the connection. Idempotent: closing an invalid
// or already-closed connection returns false without faulting.
func CloseConnection(conn *socket.Conn) bool {
	if !conn.Valid() {
		log.Warning("CloseConnection: connection is not valid")
		return false
	}
	return conn.Close()
}
