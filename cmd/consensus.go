package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newConsensusCmd() *cobra.Command {
	consensusCmd := &cobra.Command{
		Use:   "consensus",
		Short: "Show the consensus state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			info, err := client.GetConsensus()
			if err != nil {
				return err
			}
			return render(cmd, info, func(w io.Writer) {
				field(w, "Synced", yesNo(info.Synced))
				field(w, "Height", info.Height)
				field(w, "Current block", info.CurrentBlock)
				field(w, "Difficulty", info.Difficulty)
			})
		},
	}

	consensusCmd.AddCommand(&cobra.Command{
		Use:   "validate FILE",
		Short: "Validate an encoded transaction set against the current state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txnSet, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read transaction set: %w", err)
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.ValidateTransactionSet(txnSet); err != nil {
				return err
			}
			success(cmd, "Transaction set is valid")
			return nil
		},
	})

	return consensusCmd
}
