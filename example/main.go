// Command example builds a coalesced client datagram, a Retry packet and a
// Version Negotiation packet, and prints them as hex dumps. Packet events are
// traced to qlog on stderr and counted in Prometheus metrics.
package main

import (
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/quicpack/quicpack/internal/handshake"
	"github.com/quicpack/quicpack/internal/protocol"
	"github.com/quicpack/quicpack/internal/utils"
	"github.com/quicpack/quicpack/internal/wire"
	"github.com/quicpack/quicpack/logging"
	"github.com/quicpack/quicpack/metrics"
	"github.com/quicpack/quicpack/qlog"
)

type multiTracer []logging.Tracer

func (m multiTracer) BuiltPacket(p *logging.BuiltPacket) {
	for _, t := range m {
		t.BuiltPacket(p)
	}
}

func main() {
	verbose := flag.Bool("v", false, "verbose")
	flag.Parse()
	if *verbose {
		utils.SetLogLevel(utils.LogLevelDebug)
	}

	qlogTracer := qlog.NewTracer(os.Stderr)
	tracer := multiTracer{qlogTracer, metrics.NewTracer()}

	clientCID := mustGenerateConnectionID()
	serverCID := mustGenerateConnectionID()

	sealer, err := handshake.NewInitialSealer(serverCID, protocol.PerspectiveClient)
	if err != nil {
		fatal(err)
	}

	// Coalesce an Initial and a Handshake packet into one datagram.
	buf := make([]byte, 0, 1452)
	builder := wire.NewLongHeaderBuilder(buf, protocol.PacketTypeInitial, serverCID, clientCID)
	builder.SetTracer(tracer)
	builder.WriteInitialToken(nil)
	builder.WritePacketNumber(0, protocol.PacketNumberLen2)
	fmt.Fprintf(builder, "%s", cryptoPayload())
	buf, err = builder.Build(sealer)
	if err != nil {
		fatal(err)
	}

	handshakeSecret := make([]byte, 32)
	rand.Read(handshakeSecret)
	handshakeSealer, err := handshake.NewSealer(tls.TLS_CHACHA20_POLY1305_SHA256, handshakeSecret)
	if err != nil {
		fatal(err)
	}
	builder = wire.NewLongHeaderBuilder(buf, protocol.PacketTypeHandshake, serverCID, clientCID)
	builder.SetTracer(tracer)
	builder.WritePacketNumber(0, protocol.PacketNumberLen1)
	builder.Write(make([]byte, 32))
	buf, err = builder.Build(handshakeSealer)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("coalesced datagram (%d bytes):\n%s\n", len(buf), hex.Dump(buf))

	// The packets a server could answer with.
	retry, err := wire.ComposeRetry(clientCID, mustGenerateConnectionID(), []byte("please try again"), serverCID)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Retry (%d bytes):\n%s\n", len(retry), hex.Dump(retry))

	vn := wire.ComposeVersionNegotiation(clientCID, serverCID)
	fmt.Printf("Version Negotiation (%d bytes):\n%s\n", len(vn), hex.Dump(vn))

	if err := qlogTracer.Err(); err != nil {
		fatal(err)
	}
	dumpMetrics()
}

func mustGenerateConnectionID() protocol.ConnectionID {
	connID, err := protocol.GenerateConnectionID(8)
	if err != nil {
		fatal(err)
	}
	return connID
}

// cryptoPayload is a stand-in for a CRYPTO frame carrying a ClientHello.
// It needs to be long enough for the header protection sample.
func cryptoPayload() []byte {
	payload := []byte{0x06, 0x00, 0x40, 0x20}
	return append(payload, make([]byte, 32)...)
}

func dumpMetrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		fatal(err)
	}
	for _, f := range families {
		if f.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range f.GetMetric() {
			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			fmt.Printf("%s{%s}: %v\n", f.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
