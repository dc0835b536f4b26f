// Package term prints a finished qrcodegen.QRCode to a terminal using
// Unicode half-block characters, packing two module rows into one terminal
// row. Grounded on the half-block approach dfbb-im2code's whatsapp channel
// uses for its own fallback renderer, adapted here to read an already-built
// module matrix instead of doing its own encoding.
package term

import (
	"fmt"
	"io"
)

// Code is the minimal surface Write needs from a symbol.
type Code interface {
	Size() int
	Module(x, y int) bool
}

// Write prints code to w with the given quiet-zone border, in modules, on
// all four sides.
func Write(w io.Writer, code Code, border int) error {
	if border < 0 {
		return fmt.Errorf("term: border must be non-negative, got %d", border)
	}

	size := code.Size()
	at := func(x, y int) bool {
		if x < -border || x >= size+border || y < -border || y >= size+border {
			return false
		}
		if x < 0 || x >= size || y < 0 || y >= size {
			return false // Quiet zone is always light.
		}
		return code.Module(x, y)
	}

	for y := -border; y < size+border; y += 2 {
		for x := -border; x < size+border; x++ {
			top := at(x, y)
			bot := at(x, y+1)
			switch {
			case top && bot:
				fmt.Fprint(w, "█")
			case top && !bot:
				fmt.Fprint(w, "▀")
			case !top && bot:
				fmt.Fprint(w, "▄")
			default:
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}
