package qlog

import (
	"fmt"

	"github.com/quicpack/quicpack/internal/protocol"
)

type category uint8

const categoryTransport category = iota

func (c category) String() string {
	switch c {
	case categoryTransport:
		return "transport"
	default:
		return "unknown category"
	}
}

type packetType protocol.PacketType

func (t packetType) String() string {
	switch protocol.PacketType(t) {
	case protocol.PacketTypeInitial:
		return "initial"
	case protocol.PacketTypeHandshake:
		return "handshake"
	case protocol.PacketType0RTT:
		return "0RTT"
	case protocol.PacketTypeShort:
		return "1RTT"
	case protocol.PacketTypeRetry:
		return "retry"
	case protocol.PacketTypeVersionNegotiation:
		return "version_negotiation"
	default:
		return "unknown packet type"
	}
}

type connectionID protocol.ConnectionID

func (c connectionID) String() string {
	return fmt.Sprintf("%x", protocol.ConnectionID(c).Bytes())
}
