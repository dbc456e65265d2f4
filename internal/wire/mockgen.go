//go:build gomock || generate

package wire

//go:generate sh -c "go run go.uber.org/mock/mockgen -package mocks -destination ../mocks/sealer.go github.com/quicpack/quicpack/internal/wire Sealer"
