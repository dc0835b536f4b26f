package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mdp/qrterminal/v3"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/kalenmd/qrgen"
	"github.com/kalenmd/qrgen/internal/config"
	"github.com/kalenmd/qrgen/internal/render/svg"
	"github.com/kalenmd/qrgen/internal/render/term"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text into a QR Code symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var (
	flagECC      string
	flagMinVer   int
	flagMaxVer   int
	flagMask     int
	flagBoostECL bool
	flagBorder   int
	flagBinary   bool
	flagFormat   string
	flagOut      string
	flagOpen     bool
	flagLogLevel string
)

func init() {
	cfg := config.Defaults()

	encodeCmd.Flags().StringVar(&flagECC, "ecc", cfg.ECC, "error correction level: low, medium, quartile, high")
	encodeCmd.Flags().IntVar(&flagMinVer, "min-version", cfg.MinVersion, "minimum symbol version (1-40)")
	encodeCmd.Flags().IntVar(&flagMaxVer, "max-version", cfg.MaxVersion, "maximum symbol version (1-40)")
	encodeCmd.Flags().IntVar(&flagMask, "mask", -1, "force mask pattern 0-7 (-1 selects automatically)")
	encodeCmd.Flags().BoolVar(&flagBoostECL, "boost-ecl", cfg.BoostECL, "raise the error correction level when it costs no extra capacity")
	encodeCmd.Flags().IntVar(&flagBorder, "border", cfg.Border, "quiet zone width in modules")
	encodeCmd.Flags().BoolVar(&flagBinary, "binary", false, "treat the argument as raw byte-mode data instead of auto-selected segments")
	encodeCmd.Flags().StringVar(&flagFormat, "format", "svg", "output format: svg, term, term-lib")
	encodeCmd.Flags().StringVar(&flagOut, "out", cfg.OutputPath, "output file path (svg format only)")
	encodeCmd.Flags().BoolVar(&flagOpen, "open", cfg.OpenBrowser, "open the rendered SVG in a browser after writing it")
	encodeCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "log level: debug, info, warn, error")
}

func parseECC(s string) (qrcodegen.ECC, error) {
	switch strings.ToLower(s) {
	case "low", "l":
		return qrcodegen.Low, nil
	case "medium", "m":
		return qrcodegen.Medium, nil
	case "quartile", "q":
		return qrcodegen.Quartile, nil
	case "high", "h":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unrecognized error correction level %q", s)
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	setupLogging(flagLogLevel)

	// Flags win over the config file; the config file wins over the
	// built-in defaults the flags were registered with.
	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	flags := cmd.Flags()
	if !flags.Changed("ecc") {
		flagECC = cfg.ECC
	}
	if !flags.Changed("min-version") {
		flagMinVer = cfg.MinVersion
	}
	if !flags.Changed("max-version") {
		flagMaxVer = cfg.MaxVersion
	}
	if !flags.Changed("boost-ecl") {
		flagBoostECL = cfg.BoostECL
	}
	if !flags.Changed("border") {
		flagBorder = cfg.Border
	}
	if !flags.Changed("out") {
		flagOut = cfg.OutputPath
	}
	if !flags.Changed("open") {
		flagOpen = cfg.OpenBrowser
	}

	ecc, err := parseECC(flagECC)
	if err != nil {
		return err
	}

	opts := []qrcodegen.Option{
		qrcodegen.WithMinVersion(qrcodegen.Version(flagMinVer)),
		qrcodegen.WithMaxVersion(qrcodegen.Version(flagMaxVer)),
		qrcodegen.WithBoostECL(flagBoostECL),
	}
	if flagMask >= 0 {
		opts = append(opts, qrcodegen.WithMask(qrcodegen.Mask(flagMask)))
	}

	text := args[0]
	start := time.Now()

	var qr *qrcodegen.QRCode
	if flagBinary {
		qr, err = qrcodegen.EncodeBinary([]byte(text), ecc, opts...)
	} else {
		qr, err = qrcodegen.EncodeText(text, ecc, opts...)
	}
	if err != nil {
		slog.Error("encoding failed", "error", err)
		return err
	}

	slog.Info("encoded QR Code",
		"version", qr.Version(),
		"ecc", qr.ECC(),
		"mask", qr.Mask(),
		"size", qr.Size(),
		"elapsed", time.Since(start))

	switch flagFormat {
	case "svg":
		doc, err := svg.Render(qr, flagBorder)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagOut, []byte(doc), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", flagOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagOut)
		if flagOpen {
			if err := browser.OpenFile(flagOut); err != nil {
				slog.Warn("could not open browser", "error", err)
			}
		}
	case "term":
		return term.Write(cmd.OutOrStdout(), qr, flagBorder)
	case "term-lib":
		qrterminal.GenerateHalfBlock(text, eccToQRTerminalLevel(ecc), cmd.OutOrStdout())
	default:
		return fmt.Errorf("unrecognized format %q (want svg, term, or term-lib)", flagFormat)
	}

	return nil
}

func eccToQRTerminalLevel(ecc qrcodegen.ECC) qrterminal.Level {
	switch ecc {
	case qrcodegen.Low:
		return qrterminal.L
	case qrcodegen.Medium:
		return qrterminal.M
	case qrcodegen.Quartile:
		return qrterminal.Q
	case qrcodegen.High:
		return qrterminal.H
	default:
		return qrterminal.M
	}
}
