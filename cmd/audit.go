package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/spectra/internal/periodic"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check epoch membership against the element registry",
	Long: `Compare each epoch's declared member list with the elements tagged
with that epoch, and report symbols missing from the registry, elements
declared by the wrong epoch and signatures without an element.

Findings are informational; pass --strict to exit non-zero when any exist.`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().Bool("strict", false, "exit non-zero when findings exist")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd, viper.GetBool("verbose"))

	cat := periodic.Default()
	printer.Verbose("auditing %d elements, %d epochs, %d signatures",
		len(cat.Elements()), len(cat.Epochs()), len(cat.Signatures()))

	findings := cat.Audit()
	printer.Audit(findings)

	if strict, _ := cmd.Flags().GetBool("strict"); strict && len(findings) > 0 {
		return fmt.Errorf("audit: %d finding(s)", len(findings))
	}
	return nil
}
