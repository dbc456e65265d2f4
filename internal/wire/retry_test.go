package wire

import (
	"github.com/quicpack/quicpack/internal/handshake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Retry", func() {
	It("composes a Retry packet", func() {
		retry, err := ComposeRetry(emptyCID, serverCID, []byte("token"), clientCID)
		Expect(err).ToNot(HaveOccurred())
		Expect(retry).To(HaveLen(1 + 4 + 1 + 1 + 8 + 5 + 16))
		// long header, fixed bit, Retry type; the low nibble is random
		Expect(retry[0] & 0xf0).To(Equal(byte(0xf0)))
		Expect(retry[1:5]).To(Equal([]byte{0, 0, 0, 1}))
		Expect(retry[5]).To(BeZero()) // empty destination connection ID
		Expect(retry[6]).To(Equal(byte(8)))
		Expect(retry[7:15]).To(Equal(serverCID.Bytes()))
		Expect(string(retry[15:20])).To(Equal("token"))
	})

	It("stamps an integrity tag covering the original destination connection ID", func() {
		retry, err := ComposeRetry(emptyCID, serverCID, []byte("token"), clientCID)
		Expect(err).ToNot(HaveOccurred())
		pseudo := append([]byte{uint8(clientCID.Len())}, clientCID.Bytes()...)
		pseudo = append(pseudo, retry[:len(retry)-16]...)
		tag, err := handshake.RetryIntegrityTag(pseudo)
		Expect(err).ToNot(HaveOccurred())
		Expect(retry[len(retry)-16:]).To(Equal(tag[:]))
	})

	It("randomizes the low nibble of the first byte", func() {
		nibbles := make(map[byte]struct{})
		for i := 0; i < 32; i++ {
			retry, err := ComposeRetry(serverCID, clientCID, []byte("t"), clientCID)
			Expect(err).ToNot(HaveOccurred())
			nibbles[retry[0]&0xf] = struct{}{}
		}
		Expect(len(nibbles)).To(BeNumerically(">", 1))
	})
})
