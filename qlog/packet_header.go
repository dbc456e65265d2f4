package qlog

import (
	"github.com/francoispqt/gojay"

	"github.com/quicpack/quicpack/internal/protocol"
	"github.com/quicpack/quicpack/logging"
)

type packetHeader struct {
	PacketType       packetType
	PacketNumber     logging.PacketNumber
	PacketSize       logging.ByteCount
	DestConnectionID logging.ConnectionID
}

var _ gojay.MarshalerJSONObject = packetHeader{}

func (h packetHeader) IsNil() bool { return false }

func (h packetHeader) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("packet_type", h.PacketType.String())
	if t := protocol.PacketType(h.PacketType); t != protocol.PacketTypeRetry && t != protocol.PacketTypeVersionNegotiation {
		enc.Int64Key("packet_number", int64(h.PacketNumber))
	}
	enc.Int64Key("packet_size", int64(h.PacketSize))
	enc.IntKey("dcil", h.DestConnectionID.Len())
	if h.DestConnectionID.Len() > 0 {
		enc.StringKey("dcid", connectionID(h.DestConnectionID).String())
	}
}
