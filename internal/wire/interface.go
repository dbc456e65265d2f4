// Package wire assembles the on-the-wire representation of QUIC packets.
package wire

import "github.com/quicpack/quicpack/internal/protocol"

// A Sealer protects a packet. It encrypts the payload and computes the
// header protection mask from a ciphertext sample.
// A sealer belongs to one send direction of one connection. The builder
// borrows it for the duration of a single Build call and doesn't retain it.
type Sealer interface {
	// Seal encrypts the plaintext, authenticating the associated data.
	// It returns the ciphertext including the authentication tag.
	Seal(pn protocol.PacketNumber, associatedData, plaintext []byte) ([]byte, error)
	// HeaderProtectionMask computes the 5-byte header protection mask
	// for a 16-byte ciphertext sample.
	HeaderProtectionMask(sample []byte) ([]byte, error)
	// Overhead is the number of bytes Seal adds: the authentication tag length.
	Overhead() int
}
