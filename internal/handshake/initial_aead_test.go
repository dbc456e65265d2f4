package handshake

import (
	"crypto"

	"github.com/quicpack/quicpack/internal/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Initial AEAD using AES-GCM", func() {
	// values taken from RFC 9001, Appendix A
	connID := protocol.ParseConnectionID(splitHexString("0x8394c8f03e515708"))

	It("computes the client's and the server's Initial secret", func() {
		clientSecret, serverSecret := computeSecrets(connID)
		Expect(clientSecret).To(Equal(splitHexString("c00cf151ca5be075ed0ebfb5c80323c4 2d6b7db67881289af4008f1f6c357aea")))
		Expect(serverSecret).To(Equal(splitHexString("3c199828fd139efd216c155ad844cc81 fb82fa8d7446fa7d78be803acdda951b")))
	})

	It("computes the client's Initial key, IV and header protection key", func() {
		clientSecret, _ := computeSecrets(connID)
		Expect(hkdfExpandLabel(crypto.SHA256, clientSecret, nil, "quic key", 16)).To(Equal(splitHexString("1f369613dd76d5467730efcbe3b1a22d")))
		Expect(hkdfExpandLabel(crypto.SHA256, clientSecret, nil, "quic iv", 12)).To(Equal(splitHexString("fa044b2f42a3fd3b46fb255c")))
		Expect(hkdfExpandLabel(crypto.SHA256, clientSecret, nil, "quic hp", 16)).To(Equal(splitHexString("9f50449e04a0e810283a1e9933adedd2")))
	})

	It("computes the server's Initial key, IV and header protection key", func() {
		_, serverSecret := computeSecrets(connID)
		Expect(hkdfExpandLabel(crypto.SHA256, serverSecret, nil, "quic key", 16)).To(Equal(splitHexString("cf3a5331653c364c88f0f379b6067e37")))
		Expect(hkdfExpandLabel(crypto.SHA256, serverSecret, nil, "quic iv", 12)).To(Equal(splitHexString("0ac1493ca1905853b0bba03e")))
		Expect(hkdfExpandLabel(crypto.SHA256, serverSecret, nil, "quic hp", 16)).To(Equal(splitHexString("c206b8d9b9f0f37644430b490eeaa314")))
	})

	It("creates a sealer with a 16 byte overhead", func() {
		sealer, err := NewInitialSealer(connID, protocol.PerspectiveClient)
		Expect(err).ToNot(HaveOccurred())
		Expect(sealer.Overhead()).To(Equal(16))
	})

	It("seals deterministically for a fixed packet number", func() {
		s1, err := NewInitialSealer(connID, protocol.PerspectiveServer)
		Expect(err).ToNot(HaveOccurred())
		s2, err := NewInitialSealer(connID, protocol.PerspectiveServer)
		Expect(err).ToNot(HaveOccurred())
		c1, err := s1.Seal(42, []byte("ad"), []byte("foobar"))
		Expect(err).ToNot(HaveOccurred())
		c2, err := s2.Seal(42, []byte("ad"), []byte("foobar"))
		Expect(err).ToNot(HaveOccurred())
		Expect(c1).To(Equal(c2))
	})

	It("uses the packet number to derive the nonce", func() {
		sealer, err := NewInitialSealer(connID, protocol.PerspectiveServer)
		Expect(err).ToNot(HaveOccurred())
		c1, err := sealer.Seal(1, []byte("ad"), []byte("foobar"))
		Expect(err).ToNot(HaveOccurred())
		c2, err := sealer.Seal(2, []byte("ad"), []byte("foobar"))
		Expect(err).ToNot(HaveOccurred())
		Expect(c1).ToNot(Equal(c2))
	})
})
