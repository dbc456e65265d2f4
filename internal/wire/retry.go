package wire

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/quicpack/quicpack/internal/handshake"
	"github.com/quicpack/quicpack/internal/protocol"
)

// ComposeRetry composes a Retry packet.
// Retry is odd: the integrity tag covers a pseudo packet that starts with
// the length-prefixed original destination connection ID, which is never
// transmitted. The low nibble of the first byte is randomized.
func ComposeRetry(destConnID, srcConnID protocol.ConnectionID, token []byte, origDestConnID protocol.ConnectionID) ([]byte, error) {
	var r [1]byte
	rand.Read(r[:])

	buf := make([]byte, 0, 1+origDestConnID.Len()+1+4+1+destConnID.Len()+1+srcConnID.Len()+len(token)+16)
	buf = appendConnectionID(buf, origDestConnID)
	start := len(buf)
	buf = append(buf, packetBitLong|packetBitFixed|protocol.PacketTypeRetry.Code()<<4|r[0]&0xf)
	buf = binary.BigEndian.AppendUint32(buf, uint32(protocol.Version1))
	buf = appendConnectionID(buf, destConnID)
	buf = appendConnectionID(buf, srcConnID)
	// The token is written raw: it runs up to the integrity tag.
	buf = append(buf, token...)
	tag, err := handshake.RetryIntegrityTag(buf)
	if err != nil {
		return nil, err
	}
	buf = append(buf, tag[:]...)
	return buf[start:], nil
}
