// Package logging defines a logging interface for packet construction events.
package logging

import "github.com/quicpack/quicpack/internal/protocol"

type (
	// A ByteCount is used to count bytes.
	ByteCount = protocol.ByteCount
	// A ConnectionID is a QUIC Connection ID.
	ConnectionID = protocol.ConnectionID
	// The KeyPhaseBit is the key phase bit.
	KeyPhaseBit = protocol.KeyPhaseBit
	// A PacketNumber is a QUIC packet number.
	PacketNumber = protocol.PacketNumber
	// The PacketType is the type of a QUIC packet.
	PacketType = protocol.PacketType
	// The Version is the QUIC version.
	Version = protocol.Version
)

// A BuiltPacket describes a packet that was finalized by the packet builder.
type BuiltPacket struct {
	Type             PacketType
	PacketNumber     PacketNumber
	Size             ByteCount
	DestConnectionID ConnectionID
}

// A Tracer is notified about packets produced by the packet builder.
type Tracer interface {
	// BuiltPacket is called when a packet was encrypted, header protected
	// and appended to the output buffer.
	BuiltPacket(*BuiltPacket)
}
