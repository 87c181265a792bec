package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newMinerCmd() *cobra.Command {
	minerCmd := &cobra.Command{
		Use:   "miner",
		Short: "Show the miner status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			info, err := client.GetMiner()
			if err != nil {
				return err
			}
			return render(cmd, info, func(w io.Writer) {
				field(w, "Mining", yesNo(info.CPUMining))
				field(w, "Hashrate", fmt.Sprintf("%d H/s", info.CPUHashrate))
				field(w, "Blocks mined", info.BlocksMined)
				field(w, "Stale blocks mined", info.StaleBlocksMined)
			})
		},
	}

	minerCmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start CPU mining",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.StartMiner(); err != nil {
				return err
			}
			success(cmd, "Miner started")
			return nil
		},
	})

	minerCmd.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop CPU mining",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.StopMiner(); err != nil {
				return err
			}
			success(cmd, "Miner stopped")
			return nil
		},
	})

	minerCmd.AddCommand(newMinerHeaderCmd())
	return minerCmd
}

func newMinerHeaderCmd() *cobra.Command {
	headerCmd := &cobra.Command{
		Use:   "header",
		Short: "Fetch or submit block headers for external mining",
	}

	var out string
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a header to mine on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			header, err := client.GetBlockHeader()
			if err != nil {
				return err
			}
			if out == "" {
				_, err := cmd.OutOrStdout().Write(header)
				return err
			}
			if err := os.WriteFile(out, header, 0600); err != nil {
				return fmt.Errorf("failed to write header: %w", err)
			}
			success(cmd, "Wrote %d byte header to %s", len(header), out)
			return nil
		},
	}
	getCmd.Flags().StringVarP(&out, "out", "o", "", "write the header to a file instead of stdout")
	headerCmd.AddCommand(getCmd)

	headerCmd.AddCommand(&cobra.Command{
		Use:   "post FILE",
		Short: "Submit a solved header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read header: %w", err)
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.PostBlockHeader(header); err != nil {
				return err
			}
			success(cmd, "Header submitted")
			return nil
		},
	})

	return headerCmd
}
