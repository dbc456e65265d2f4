package handshake

import (
	"crypto/tls"
	"fmt"
	"sync"
)

// The Retry protection key is derived from a fixed, publicly known secret:
// Retry packets are integrity stamped, not confidential.
var retrySecret = [32]byte{
	0x65, 0x6e, 0x61, 0xe3, 0x36, 0xae, 0x94, 0x17,
	0xf7, 0xf0, 0xed, 0xd8, 0xd7, 0x8d, 0x46, 0x1e,
	0x2a, 0xa7, 0x08, 0x4a, 0xba, 0x7a, 0x14, 0xc1,
	0xe9, 0xf7, 0x26, 0xd5, 0x57, 0x09, 0x16, 0x9a,
}

var retrySealer = sync.OnceValues(func() (*AEADSealer, error) {
	return NewSealer(tls.TLS_AES_128_GCM_SHA256, retrySecret[:])
})

// RetryIntegrityTag calculates the integrity tag on a Retry pseudo packet:
// the Retry packet prefixed with the length-prefixed original destination
// connection ID. The whole pseudo packet is authenticated, nothing is
// encrypted.
func RetryIntegrityTag(pseudoPacket []byte) ([16]byte, error) {
	var tag [16]byte
	sealer, err := retrySealer()
	if err != nil {
		return tag, fmt.Errorf("internal error: Retry key unavailable: %w", err)
	}
	sealed, err := sealer.Seal(0, pseudoPacket, nil)
	if err != nil {
		return tag, err
	}
	if len(sealed) != len(tag) {
		panic(fmt.Sprintf("unexpected Retry integrity tag length: %d", len(sealed)))
	}
	copy(tag[:], sealed)
	return tag, nil
}
