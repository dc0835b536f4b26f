package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kalenmd/qrgen"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Verify the static capacity and codeword tables are internally consistent",
	RunE:  runSelftest,
}

func runSelftest(cmd *cobra.Command, args []string) error {
	if err := qrcodegen.SelfCheck(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "table self-check failed: %v\n", err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok: all 40 versions x 4 error correction levels are consistent")
	return nil
}
