// Package svg renders a finished qrcodegen.QRCode as an SVG document. It is
// an external collaborator per spec.md §1: it reads only Size and Module
// and has no influence on encoding.
package svg

import (
	"fmt"
	"strings"

	"github.com/kalenmd/qrgen"
)

// Code is the minimal surface svg.Render needs from a symbol.
type Code interface {
	Size() int
	Module(x, y int) bool
}

var _ Code = (*qrcodegen.QRCode)(nil)

// Render returns a scalable vector graphics document for qr, with the
// given quiet-zone border width in modules.
func Render(qr Code, border int) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("svg: border must be non-negative, got %d", border)
	}

	size := qr.Size()
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", size+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !qr.Module(x, y) {
				continue
			}
			if x != 0 || y != 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
