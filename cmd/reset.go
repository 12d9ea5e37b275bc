package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		if !yes {
			fmt.Fprint(out, "Delete all saved reports? [y/N] ")
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(line)); a != "y" && a != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		n, err := s.ReportRepo().DeleteAll(cmd.Context())
		if err != nil {
			return err
		}
		logger.Info("reports deleted", "count", n)
		fmt.Fprintf(out, "Deleted %d report(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
