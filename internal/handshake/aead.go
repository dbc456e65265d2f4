package handshake

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/tls"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/quicpack/quicpack/internal/protocol"
)

// An AEADSealer protects outgoing packets.
// It encrypts the payload and computes the header protection mask.
// A sealer belongs to one send direction of one connection and must not be
// shared between goroutines.
type AEADSealer struct {
	aead cipher.AEAD
	hp   headerProtector

	// use a single slice to avoid allocations
	nonceBuf []byte
	iv       []byte
}

func newAEADSealer(aead cipher.AEAD, iv []byte, hp headerProtector) *AEADSealer {
	if len(iv) != aead.NonceSize() {
		panic("invalid IV length")
	}
	return &AEADSealer{
		aead:     aead,
		hp:       hp,
		nonceBuf: make([]byte, aead.NonceSize()),
		iv:       iv,
	}
}

// NewSealer creates a sealer for the given TLS 1.3 cipher suite.
// Key, IV and header protection key are derived from the traffic secret,
// see RFC 9001, section 5.1.
func NewSealer(suite uint16, trafficSecret []byte) (*AEADSealer, error) {
	switch suite {
	case tls.TLS_AES_128_GCM_SHA256:
		key := hkdfExpandLabel(crypto.SHA256, trafficSecret, nil, "quic key", 16)
		iv := hkdfExpandLabel(crypto.SHA256, trafficSecret, nil, "quic iv", 12)
		hpKey := hkdfExpandLabel(crypto.SHA256, trafficSecret, nil, "quic hp", 16)
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, err
		}
		hp, err := newAESHeaderProtector(hpKey)
		if err != nil {
			return nil, err
		}
		return newAEADSealer(aead, iv, hp), nil
	case tls.TLS_CHACHA20_POLY1305_SHA256:
		key := hkdfExpandLabel(crypto.SHA256, trafficSecret, nil, "quic key", 32)
		iv := hkdfExpandLabel(crypto.SHA256, trafficSecret, nil, "quic iv", 12)
		hpKey := hkdfExpandLabel(crypto.SHA256, trafficSecret, nil, "quic hp", 32)
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, err
		}
		return newAEADSealer(aead, iv, newChaChaHeaderProtector(hpKey)), nil
	default:
		return nil, fmt.Errorf("unsupported cipher suite: %d", suite)
	}
}

// Seal encrypts the plaintext, authenticating the associated data,
// and returns ciphertext plus authentication tag.
// The nonce is the write IV with the packet number XORed into its
// trailing 8 bytes.
func (s *AEADSealer) Seal(pn protocol.PacketNumber, associatedData, plaintext []byte) ([]byte, error) {
	copy(s.nonceBuf, s.iv)
	n := len(s.nonceBuf)
	pnBytes := binary.BigEndian.AppendUint64(nil, uint64(pn))
	for i := 0; i < 8; i++ {
		s.nonceBuf[n-8+i] ^= pnBytes[i]
	}
	return s.aead.Seal(nil, s.nonceBuf, plaintext, associatedData), nil
}

// HeaderProtectionMask computes the 5-byte header protection mask for a
// 16-byte ciphertext sample.
func (s *AEADSealer) HeaderProtectionMask(sample []byte) ([]byte, error) {
	return s.hp.HeaderProtectionMask(sample)
}

// Overhead returns the number of bytes the AEAD adds: the tag length.
func (s *AEADSealer) Overhead() int {
	return s.aead.Overhead()
}
