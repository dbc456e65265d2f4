package handshake

import (
	"crypto"
	"crypto/sha256"
	"crypto/tls"

	"golang.org/x/crypto/hkdf"

	"github.com/quicpack/quicpack/internal/protocol"
)

var quicSaltV1 = []byte{0x38, 0x76, 0x2c, 0xf7, 0xf5, 0x59, 0x34, 0xb3, 0x4d, 0x17, 0x9a, 0xe6, 0xa4, 0xc8, 0x0c, 0xad, 0xcc, 0xbb, 0x7f, 0x0a}

// NewInitialSealer creates the sealer for Initial packet protection.
// Initial keys are derived from the client's first destination connection ID,
// see RFC 9001, section 5.2.
func NewInitialSealer(connID protocol.ConnectionID, pers protocol.Perspective) (*AEADSealer, error) {
	clientSecret, serverSecret := computeSecrets(connID)
	secret := clientSecret
	if pers == protocol.PerspectiveServer {
		secret = serverSecret
	}
	return NewSealer(tls.TLS_AES_128_GCM_SHA256, secret)
}

func computeSecrets(connID protocol.ConnectionID) (clientSecret, serverSecret []byte) {
	initialSecret := hkdf.Extract(sha256.New, connID.Bytes(), quicSaltV1)
	clientSecret = hkdfExpandLabel(crypto.SHA256, initialSecret, nil, "client in", crypto.SHA256.Size())
	serverSecret = hkdfExpandLabel(crypto.SHA256, initialSecret, nil, "server in", crypto.SHA256.Size())
	return
}
