package protocol

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Packet Type", func() {
	It("maps long header packet types to their type code", func() {
		Expect(PacketTypeInitial.Code()).To(Equal(uint8(0x0)))
		Expect(PacketType0RTT.Code()).To(Equal(uint8(0x1)))
		Expect(PacketTypeHandshake.Code()).To(Equal(uint8(0x2)))
		Expect(PacketTypeRetry.Code()).To(Equal(uint8(0x3)))
	})

	It("panics for packet types without a type code", func() {
		Expect(func() { PacketTypeVersionNegotiation.Code() }).To(Panic())
		Expect(func() { PacketTypeShort.Code() }).To(Panic())
	})

	It("has a string representation", func() {
		Expect(PacketTypeVersionNegotiation.String()).To(Equal("Version Negotiation"))
		Expect(PacketTypeInitial.String()).To(Equal("Initial"))
		Expect(PacketTypeHandshake.String()).To(Equal("Handshake"))
		Expect(PacketType0RTT.String()).To(Equal("0-RTT Protected"))
		Expect(PacketTypeRetry.String()).To(Equal("Retry"))
		Expect(PacketTypeShort.String()).To(Equal("1-RTT"))
		Expect(PacketType(0).String()).To(Equal("unknown packet type"))
	})
})
