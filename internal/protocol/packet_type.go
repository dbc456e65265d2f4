package protocol

// The PacketType is the type of the QUIC packet
type PacketType uint8

const (
	// PacketTypeVersionNegotiation is a Version Negotiation packet
	PacketTypeVersionNegotiation PacketType = 1 + iota
	// PacketTypeInitial is the packet type of an Initial packet
	PacketTypeInitial
	// PacketTypeHandshake is the packet type of a Handshake packet
	PacketTypeHandshake
	// PacketType0RTT is the packet type of a 0-RTT packet
	PacketType0RTT
	// PacketTypeRetry is the packet type of a Retry packet
	PacketTypeRetry
	// PacketTypeShort is a short header (1-RTT) packet
	PacketTypeShort
)

// Code returns the 2-bit type code carried in bits 4 and 5 of a long header's
// first byte. Version Negotiation and short header packets don't have such a
// field, so calling Code on them is a programming error.
func (t PacketType) Code() uint8 {
	switch t {
	case PacketTypeInitial:
		return 0x0
	case PacketType0RTT:
		return 0x1
	case PacketTypeHandshake:
		return 0x2
	case PacketTypeRetry:
		return 0x3
	default:
		panic("packet type has no long header type code")
	}
}

func (t PacketType) String() string {
	switch t {
	case PacketTypeVersionNegotiation:
		return "Version Negotiation"
	case PacketTypeInitial:
		return "Initial"
	case PacketTypeHandshake:
		return "Handshake"
	case PacketType0RTT:
		return "0-RTT Protected"
	case PacketTypeRetry:
		return "Retry"
	case PacketTypeShort:
		return "1-RTT"
	default:
		return "unknown packet type"
	}
}
