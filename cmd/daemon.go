package cmd

import (
	"io"

	"github.com/chinmay1088/siago/chains/sia"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDaemonCmd() *cobra.Command {
	daemonCmd := &cobra.Command{
		Use:   "daemon",
		Short: "Inspect or stop the daemon",
	}

	daemonCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the daemon version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			v, err := client.GetVersion()
			if err != nil {
				return err
			}
			return render(cmd, map[string]string{"version": v}, func(w io.Writer) {
				field(w, "Daemon version", color.CyanString(v))
			})
		},
	})

	daemonCmd.AddCommand(&cobra.Command{
		Use:   "constants",
		Short: "Print the consensus constants of the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			constants, err := client.GetConstants()
			if err != nil {
				return err
			}
			return render(cmd, constants, func(w io.Writer) {
				field(w, "Block frequency", constants.BlockFrequency)
				field(w, "Block size limit", constants.BlockSizeLimit)
				field(w, "Maturity delay", constants.MaturityDelay)
				field(w, "Siafund count", constants.SiafundCount)
				field(w, "Siacoin precision", sia.FormatCurrency(constants.SiacoinPrecision))
			})
		},
	})

	daemonCmd.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Shut the daemon down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.StopDaemon(); err != nil {
				return err
			}
			success(cmd, "Daemon is shutting down")
			return nil
		},
	})

	return daemonCmd
}
