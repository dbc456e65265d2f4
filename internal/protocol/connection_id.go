package protocol

import (
	"crypto/rand"
	"fmt"
)

// MaxConnIDLen is the maximum length of the connection ID
const MaxConnIDLen = 20

// GenerateConnectionID generates a connection ID using cryptographic random
func GenerateConnectionID(l int) (ConnectionID, error) {
	b := make([]byte, l)
	if _, err := rand.Read(b); err != nil {
		return ConnectionID{}, err
	}
	return ParseConnectionID(b), nil
}

// A ConnectionID in QUIC.
// It is an opaque byte sequence of up to 20 bytes, compared by value.
type ConnectionID struct {
	b [20]byte
	l uint8
}

// ParseConnectionID interprets b as a Connection ID.
// It panics if b is longer than 20 bytes.
func ParseConnectionID(b []byte) ConnectionID {
	if len(b) > MaxConnIDLen {
		panic("invalid conn id length")
	}
	var c ConnectionID
	c.l = uint8(len(b))
	copy(c.b[:], b)
	return c
}

// Len returns the length of the connection ID in bytes
func (c ConnectionID) Len() int {
	return int(c.l)
}

// Bytes returns the byte representation
func (c ConnectionID) Bytes() []byte {
	return c.b[:c.l]
}

func (c ConnectionID) String() string {
	if c.Len() == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("%x", c.Bytes())
}
