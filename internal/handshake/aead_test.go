package handshake

import (
	"crypto"
	"crypto/tls"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sealers", func() {
	It("rejects unsupported cipher suites", func() {
		_, err := NewSealer(tls.TLS_AES_256_GCM_SHA384, make([]byte, 48))
		Expect(err).To(MatchError(ContainSubstring("unsupported cipher suite")))
	})

	Context("using ChaCha20-Poly1305", func() {
		// values taken from RFC 9001, Appendix A.5
		secret := splitHexString("9ac312a7f877468ebe69422748ad00a1 5443f18203a07d6060f688f30f21632b")

		It("derives the header protection key and computes the mask", func() {
			Expect(hkdfExpandLabel(crypto.SHA256, secret, nil, "quic hp", 32)).To(Equal(splitHexString("25a282b9e82f06f21f488917a4fc8f1b 73573685608597d0efcb076b0ab7a7a4")))
			sealer, err := NewSealer(tls.TLS_CHACHA20_POLY1305_SHA256, secret)
			Expect(err).ToNot(HaveOccurred())
			mask, err := sealer.HeaderProtectionMask(splitHexString("5e5cd55c41f69080575d7999c25a5bfb"))
			Expect(err).ToNot(HaveOccurred())
			Expect(mask).To(Equal(splitHexString("aefefe7d03")))
		})

		It("has a 16 byte overhead", func() {
			sealer, err := NewSealer(tls.TLS_CHACHA20_POLY1305_SHA256, secret)
			Expect(err).ToNot(HaveOccurred())
			Expect(sealer.Overhead()).To(Equal(16))
		})
	})

	Context("header protection", func() {
		It("rejects samples that are not 16 bytes long", func() {
			sealer, err := NewSealer(tls.TLS_AES_128_GCM_SHA256, make([]byte, 32))
			Expect(err).ToNot(HaveOccurred())
			_, err = sealer.HeaderProtectionMask(make([]byte, 15))
			Expect(err).To(MatchError(ContainSubstring("invalid sample size")))

			sealer, err = NewSealer(tls.TLS_CHACHA20_POLY1305_SHA256, make([]byte, 32))
			Expect(err).ToNot(HaveOccurred())
			_, err = sealer.HeaderProtectionMask(make([]byte, 17))
			Expect(err).To(MatchError(ContainSubstring("invalid sample size")))
		})

		It("returns a 5 byte mask", func() {
			sealer, err := NewSealer(tls.TLS_AES_128_GCM_SHA256, make([]byte, 32))
			Expect(err).ToNot(HaveOccurred())
			mask, err := sealer.HeaderProtectionMask(make([]byte, 16))
			Expect(err).ToNot(HaveOccurred())
			Expect(mask).To(HaveLen(5))
		})
	})
})
