package service

import "github.com/skip2/go-qrcode"

type QRGenerator interface {
	Generate(url string) ([]byte, error)
}

type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(url string) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, 256)
}
