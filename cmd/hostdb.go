package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chinmay1088/siago/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newHostDBCmd() *cobra.Command {
	hostdbCmd := &cobra.Command{
		Use:   "hostdb",
		Short: "List all hosts known to the renter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			hosts, err := client.GetHostDB()
			if err != nil {
				return err
			}
			return render(cmd, hosts, func(w io.Writer) { printHosts(w, hosts) })
		},
	}

	hostdbCmd.AddCommand(&cobra.Command{
		Use:   "active [N]",
		Short: "List active hosts, at most N when given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numHosts := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return fmt.Errorf("invalid host count %q", args[0])
				}
				numHosts = n
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			hosts, err := client.GetHostDBActive(numHosts)
			if err != nil {
				return err
			}
			return render(cmd, hosts, func(w io.Writer) { printHosts(w, hosts) })
		},
	})

	hostdbCmd.AddCommand(&cobra.Command{
		Use:   "view PUBKEY",
		Short: "Show a host and its score breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			info, err := client.GetHostDBHost(args[0])
			if err != nil {
				return err
			}
			return render(cmd, info, func(w io.Writer) {
				field(w, "Net address", color.CyanString(info.Entry.NetAddress))
				field(w, "Public key", info.Entry.PublicKeyString)
				field(w, "Accepting contracts", yesNo(info.Entry.AcceptingContracts))
				field(w, "Storage price", currency(info.Entry.StoragePrice))
				field(w, "Score", info.ScoreBreakdown.Score)
				field(w, "Conversion rate", fmt.Sprintf("%.2f%%", info.ScoreBreakdown.ConversionRate))
			})
		},
	})

	return hostdbCmd
}

func printHosts(w io.Writer, hosts []api.HostDBEntry) {
	if len(hosts) == 0 {
		fmt.Fprintln(w, "No hosts")
		return
	}
	for _, h := range hosts {
		field(w, h.NetAddress, currency(h.StoragePrice)+" per byte-block")
	}
}
