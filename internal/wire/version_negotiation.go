package wire

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/quicpack/quicpack/internal/protocol"
)

// ComposeVersionNegotiation composes a Version Negotiation packet.
// It advertises the supported version plus one greased version, and leaves
// the fixed bit unforced so that middleboxes can't rely on it being set.
func ComposeVersionNegotiation(destConnID, srcConnID protocol.ConnectionID) []byte {
	var greased [5]byte
	rand.Read(greased[:])

	buf := make([]byte, 0, 1+4+1+destConnID.Len()+1+srcConnID.Len()+8)
	buf = append(buf, packetBitLong|greased[4]&0x7f)
	buf = append(buf, 0, 0, 0, 0) // a zero version field signals Version Negotiation
	buf = appendConnectionID(buf, destConnID)
	buf = appendConnectionID(buf, srcConnID)
	buf = binary.BigEndian.AppendUint32(buf, uint32(protocol.Version1))
	// One greased version, its low nibble patched to the reserved 0x?a
	// pattern, see RFC 9000, section 15.
	for _, g := range greased[:4] {
		buf = append(buf, g&0xf0|0x0a)
	}
	return buf
}
