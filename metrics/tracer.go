// Package metrics collects Prometheus metrics about packet construction.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/quicpack/quicpack/internal/protocol"
	"github.com/quicpack/quicpack/logging"
)

const metricNamespace = "quicpack"

var (
	packetsBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_built_total",
			Help:      "Packets Built",
		},
		[]string{"packet_type"},
	)
	packetBytesBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packet_bytes_built_total",
			Help:      "Packet Bytes Built",
		},
		[]string{"packet_type"},
	)
)

type tracer struct{}

var _ logging.Tracer = &tracer{}

// NewTracer creates a new tracer using the default Prometheus registerer.
func NewTracer() logging.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a custom Prometheus registerer.
func NewTracerWithRegisterer(registerer prometheus.Registerer) logging.Tracer {
	for _, c := range [...]prometheus.Collector{packetsBuilt, packetBytesBuilt} {
		if err := registerer.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}
	return &tracer{}
}

func (t *tracer) BuiltPacket(p *logging.BuiltPacket) {
	typ := packetTypeLabel(p.Type)
	packetsBuilt.WithLabelValues(typ).Inc()
	packetBytesBuilt.WithLabelValues(typ).Add(float64(p.Size))
}

func packetTypeLabel(t logging.PacketType) string {
	switch t {
	case protocol.PacketTypeInitial:
		return "initial"
	case protocol.PacketTypeHandshake:
		return "handshake"
	case protocol.PacketType0RTT:
		return "0rtt"
	case protocol.PacketTypeShort:
		return "1rtt"
	case protocol.PacketTypeRetry:
		return "retry"
	case protocol.PacketTypeVersionNegotiation:
		return "version_negotiation"
	default:
		return "unknown"
	}
}
