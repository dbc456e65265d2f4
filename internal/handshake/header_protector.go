package handshake

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// sampleSize is the number of ciphertext bytes sampled to derive the
// header protection mask, see RFC 9001, section 5.4.2.
const sampleSize = 16

// maskSize is the number of mask bytes a header protector produces:
// one for the first header byte, up to four for the packet number.
const maskSize = 5

type headerProtector interface {
	HeaderProtectionMask(sample []byte) ([]byte, error)
}

type aesHeaderProtector struct {
	block cipher.Block
	mask  [16]byte // AES block size
}

var _ headerProtector = &aesHeaderProtector{}

func newAESHeaderProtector(hpKey []byte) (*aesHeaderProtector, error) {
	block, err := aes.NewCipher(hpKey)
	if err != nil {
		return nil, fmt.Errorf("error creating new AES cipher: %w", err)
	}
	return &aesHeaderProtector{block: block}, nil
}

func (p *aesHeaderProtector) HeaderProtectionMask(sample []byte) ([]byte, error) {
	if len(sample) != p.block.BlockSize() {
		return nil, fmt.Errorf("invalid sample size: %d", len(sample))
	}
	p.block.Encrypt(p.mask[:], sample)
	return p.mask[:maskSize], nil
}

type chachaHeaderProtector struct {
	key  [32]byte
	mask [maskSize]byte
}

var _ headerProtector = &chachaHeaderProtector{}

func newChaChaHeaderProtector(hpKey []byte) *chachaHeaderProtector {
	p := &chachaHeaderProtector{}
	copy(p.key[:], hpKey)
	return p
}

func (p *chachaHeaderProtector) HeaderProtectionMask(sample []byte) ([]byte, error) {
	if len(sample) != sampleSize {
		return nil, fmt.Errorf("invalid sample size: %d", len(sample))
	}
	// The first 4 bytes of the sample are the block counter,
	// the remaining 12 bytes the nonce, see RFC 9001, section 5.4.4.
	c, err := chacha20.NewUnauthenticatedCipher(p.key[:], sample[4:])
	if err != nil {
		return nil, err
	}
	c.SetCounter(binary.LittleEndian.Uint32(sample[:4]))
	for i := range p.mask {
		p.mask[i] = 0
	}
	c.XORKeyStream(p.mask[:], p.mask[:])
	return p.mask[:], nil
}
