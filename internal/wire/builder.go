package wire

import (
	"encoding/binary"
	"io"

	"github.com/quicpack/quicpack/internal/protocol"
	"github.com/quicpack/quicpack/internal/utils"
	"github.com/quicpack/quicpack/logging"
	"github.com/quicpack/quicpack/quicvarint"
)

const (
	packetBitLong  = 0x80
	packetBitShort = 0x00
	packetBitFixed = 0x40

	keyPhaseBit = 0x04
)

// sampleSize is the number of ciphertext bytes sampled for header protection.
const sampleSize = 16

// builderOffsets records where the protected parts of the packet live.
type builderOffsets struct {
	// firstByteMask are the bits of the first octet that need masking:
	// 0x1f for short headers (3 reserved low bits), 0x0f for long headers.
	firstByteMask byte
	// len is the offset of the reserved 2-byte length field.
	// It is zero for short headers and before WritePacketNumber was called.
	len int
	// pnStart and pnEnd delimit the packet number field.
	pnStart, pnEnd int
}

// A PacketBuilder incrementally assembles a short or long header packet
// into a byte buffer. It does not produce Retry or Version Negotiation
// packets, see ComposeRetry and ComposeVersionNegotiation for those.
//
// The builder owns the buffer until Build or Abort returns it, so multiple
// packets can be coalesced into the same datagram by passing the returned
// buffer to the next builder. A builder is single use: any call after
// Build or Abort panics.
type PacketBuilder struct {
	buf        []byte
	typ        protocol.PacketType
	destConnID protocol.ConnectionID
	pn         protocol.PacketNumber

	// headerStart and headerEnd delimit the header: everything in
	// [headerStart, headerEnd) is authenticated as associated data,
	// everything after it is encrypted.
	headerStart, headerEnd int

	offsets   builderOffsets
	tracer    logging.Tracer
	finalized bool
}

var _ io.Writer = &PacketBuilder{}

// NewShortHeaderBuilder starts building a 1-RTT packet, appending to buf.
// The destination connection ID is written raw: its length is implied by
// connection context and not part of the wire image.
func NewShortHeaderBuilder(buf []byte, keyPhase protocol.KeyPhaseBit, destConnID protocol.ConnectionID) *PacketBuilder {
	headerStart := len(buf)
	firstByte := byte(packetBitShort | packetBitFixed)
	if keyPhase == protocol.KeyPhaseOne {
		firstByte |= keyPhaseBit
	}
	buf = append(buf, firstByte)
	buf = append(buf, destConnID.Bytes()...)
	return &PacketBuilder{
		buf:         buf,
		typ:         protocol.PacketTypeShort,
		destConnID:  destConnID,
		pn:          protocol.InvalidPacketNumber,
		headerStart: headerStart,
		headerEnd:   headerStart,
		offsets:     builderOffsets{firstByteMask: 0x1f},
	}
}

// NewLongHeaderBuilder starts building a long header packet, appending to buf.
// For an Initial packet the caller must call WriteInitialToken, even if the
// token is empty.
func NewLongHeaderBuilder(buf []byte, t protocol.PacketType, destConnID, srcConnID protocol.ConnectionID) *PacketBuilder {
	headerStart := len(buf)
	buf = append(buf, packetBitLong|packetBitFixed|t.Code()<<4)
	buf = binary.BigEndian.AppendUint32(buf, uint32(protocol.Version1))
	buf = appendConnectionID(buf, destConnID)
	buf = appendConnectionID(buf, srcConnID)
	return &PacketBuilder{
		buf:         buf,
		typ:         t,
		destConnID:  destConnID,
		pn:          protocol.InvalidPacketNumber,
		headerStart: headerStart,
		headerEnd:   headerStart,
		offsets:     builderOffsets{firstByteMask: 0x0f},
	}
}

func appendConnectionID(buf []byte, connID protocol.ConnectionID) []byte {
	buf = append(buf, uint8(connID.Len()))
	return append(buf, connID.Bytes()...)
}

// SetTracer sets a tracer that is notified when the packet is built.
func (b *PacketBuilder) SetTracer(tracer logging.Tracer) {
	b.tracer = tracer
}

// WriteInitialToken encodes the token of an Initial packet,
// prefixed with its varint-encoded length.
// Skipping this step does not produce a valid Initial packet.
func (b *PacketBuilder) WriteInitialToken(token []byte) {
	b.checkNotFinalized()
	if b.typ != protocol.PacketTypeInitial {
		panic("Initial token written into a packet that is not an Initial")
	}
	b.buf = quicvarint.Append(b.buf, uint64(len(token)))
	b.buf = append(b.buf, token...)
}

// WritePacketNumber adds a packet number of the given length and closes the
// header. For a long header packet, it also reserves the 2-byte length field
// that Build fills in.
func (b *PacketBuilder) WritePacketNumber(pn protocol.PacketNumber, pnLen protocol.PacketNumberLen) {
	b.checkNotFinalized()
	if pnLen < 1 || pnLen > 4 {
		panic("invalid packet number length")
	}
	if b.typ != protocol.PacketTypeShort {
		b.offsets.len = len(b.buf)
		b.buf = append(b.buf, 0, 0)
	}
	b.offsets.pnStart = len(b.buf)
	switch pnLen {
	case protocol.PacketNumberLen1:
		b.buf = append(b.buf, uint8(pn))
	case protocol.PacketNumberLen2:
		b.buf = binary.BigEndian.AppendUint16(b.buf, uint16(pn))
	case protocol.PacketNumberLen3:
		b.buf = append(b.buf, uint8(pn>>16), uint8(pn>>8), uint8(pn))
	case protocol.PacketNumberLen4:
		b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(pn))
	}
	b.offsets.pnEnd = len(b.buf)
	b.buf[b.headerStart] |= uint8(pnLen - 1)
	b.headerEnd = len(b.buf)
	b.pn = pn
}

// Write appends payload bytes. It implements io.Writer and never fails.
func (b *PacketBuilder) Write(p []byte) (int, error) {
	b.checkNotFinalized()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Len returns the current length of the buffer, including any previously
// built packets it already contains.
func (b *PacketBuilder) Len() int {
	return len(b.buf)
}

// IsEmpty says if nothing was added after the header.
// Callers use it to decide whether the packet is worth sending.
func (b *PacketBuilder) IsEmpty() bool {
	return len(b.buf) == b.headerEnd
}

// writeLen fills in the reserved length field: the number of bytes following
// it, plus the AEAD expansion, as a 2-byte varint. This caps the length of
// body plus tag at 16383 bytes.
func (b *PacketBuilder) writeLen(expansion int) {
	l := len(b.buf) - (b.offsets.len + 2) + expansion
	b.buf[b.offsets.len] = 0x40 | uint8(l>>8)&0x3f
	b.buf[b.offsets.len+1] = uint8(l)
}

func (b *PacketBuilder) pnLen() int {
	return b.offsets.pnEnd - b.offsets.pnStart
}

func (b *PacketBuilder) checkNotFinalized() {
	if b.finalized {
		panic("PacketBuilder used after Build or Abort")
	}
}

// Build encrypts the packet, applies header protection and returns the
// buffer, now ending in the complete protected packet. The buffer can be
// handed to the next builder to coalesce another packet, or transmitted.
//
// The caller must have written enough payload for the header protection
// sample to exist: (4 - packet number length) + 16 bytes of ciphertext.
// Violating that is a programming error and panics.
func (b *PacketBuilder) Build(sealer Sealer) ([]byte, error) {
	b.checkNotFinalized()
	b.finalized = true
	if b.offsets.len > 0 {
		b.writeLen(sealer.Overhead())
	}
	hdr := b.buf[b.headerStart:b.headerEnd]
	body := b.buf[b.headerEnd:]
	if utils.Debug() {
		utils.Debugf("Build pn=%d hdr=%x body=%x", b.pn, hdr, body)
	}
	ciphertext, err := sealer.Seal(b.pn, hdr, body)
	if err != nil {
		return nil, err
	}

	// Calculate and apply the mask.
	offset := 4 - b.pnLen()
	if offset+sampleSize > len(ciphertext) {
		panic("packet too short to sample for header protection")
	}
	mask, err := sealer.HeaderProtectionMask(ciphertext[offset : offset+sampleSize])
	if err != nil {
		return nil, err
	}
	b.buf[b.headerStart] ^= mask[0] & b.offsets.firstByteMask
	for i := 0; i < b.pnLen(); i++ {
		b.buf[b.offsets.pnStart+i] ^= mask[1+i]
	}

	// Cut off the plaintext and add back the ciphertext.
	b.buf = append(b.buf[:b.headerEnd], ciphertext...)
	if utils.Debug() {
		utils.Debugf("Built %x", b.buf[b.headerStart:])
	}
	if b.tracer != nil {
		b.tracer.BuiltPacket(&logging.BuiltPacket{
			Type:             b.typ,
			PacketNumber:     b.pn,
			Size:             protocol.ByteCount(len(b.buf) - b.headerStart),
			DestConnectionID: b.destConnID,
		})
	}
	return b.buf, nil
}

// Abort discards the packet under construction and returns the buffer,
// rewound to the state it had when the builder was created.
func (b *PacketBuilder) Abort() []byte {
	b.checkNotFinalized()
	b.finalized = true
	b.buf = b.buf[:b.headerStart]
	return b.buf
}
