package handshake

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Retry Integrity Check", func() {
	It("calculates retry integrity tags", func() {
		fooTag, err := RetryIntegrityTag([]byte("foo"))
		Expect(err).ToNot(HaveOccurred())
		barTag, err := RetryIntegrityTag([]byte("bar"))
		Expect(err).ToNot(HaveOccurred())
		Expect(fooTag).ToNot(Equal(barTag))
	})

	It("calculates the same tag for the same pseudo packet", func() {
		t1, err := RetryIntegrityTag([]byte("foobar"))
		Expect(err).ToNot(HaveOccurred())
		t2, err := RetryIntegrityTag([]byte("foobar"))
		Expect(err).ToNot(HaveOccurred())
		Expect(t1).To(Equal(t2))
	})

	It("includes every byte of the pseudo packet in the tag calculation", func() {
		pseudo := splitHexString("04c0ffee00 f0ff000000010008f067a5502a4262b5 746f6b656e")
		t1, err := RetryIntegrityTag(pseudo)
		Expect(err).ToNot(HaveOccurred())
		pseudo[1] ^= 0x01
		t2, err := RetryIntegrityTag(pseudo)
		Expect(err).ToNot(HaveOccurred())
		Expect(t1).ToNot(Equal(t2))
	})
})
