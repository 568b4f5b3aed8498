package service

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

var ErrQRCodeDesabilitado = errors.New("geração de QR code desabilitada")

type QRGenerator interface {
	Generate(pedidoID int64) ([]byte, error)
}

// DefaultQRGenerator encodes the link to the order page printed on the
// pickup ticket.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(pedidoID int64) ([]byte, error) {
	return qrcode.Encode(g.Link(pedidoID), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) Link(pedidoID int64) string {
	return fmt.Sprintf("%s/pedidos/%d", g.BaseURL, pedidoID)
}
