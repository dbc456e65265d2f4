package protocol

import (
	"crypto/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Connection ID generation", func() {
	It("generates random connection IDs", func() {
		c1, err := GenerateConnectionID(8)
		Expect(err).ToNot(HaveOccurred())
		Expect(c1.Bytes()).ToNot(Equal([]byte{0, 0, 0, 0, 0, 0, 0, 0}))
		c2, err := GenerateConnectionID(8)
		Expect(err).ToNot(HaveOccurred())
		Expect(c1).ToNot(Equal(c2))
	})

	It("generates connection IDs with the requested length", func() {
		for l := 0; l <= MaxConnIDLen; l++ {
			c, err := GenerateConnectionID(l)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Len()).To(Equal(l))
		}
	})

	It("compares by value", func() {
		c1 := ParseConnectionID([]byte{1, 2, 3, 4})
		c2 := ParseConnectionID([]byte{1, 2, 3, 4})
		c3 := ParseConnectionID([]byte{1, 2, 3, 4, 5})
		Expect(c1 == c2).To(BeTrue())
		Expect(c1 == c3).To(BeFalse())
	})

	It("returns the byte representation", func() {
		b := make([]byte, 12)
		_, err := rand.Read(b)
		Expect(err).ToNot(HaveOccurred())
		c := ParseConnectionID(b)
		Expect(c.Bytes()).To(Equal(b))
	})

	It("panics when parsing a connection ID longer than 20 bytes", func() {
		Expect(func() { ParseConnectionID(make([]byte, 21)) }).To(Panic())
	})

	It("has a string representation", func() {
		c := ParseConnectionID([]byte{0xde, 0xad, 0xbe, 0xef, 0x42})
		Expect(c.String()).To(Equal("deadbeef42"))
	})

	It("has a special string representation for the empty connection ID", func() {
		c := ParseConnectionID([]byte{})
		Expect(c.String()).To(Equal("(empty)"))
	})
})
