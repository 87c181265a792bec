package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newGatewayCmd() *cobra.Command {
	gatewayCmd := &cobra.Command{
		Use:   "gateway",
		Short: "Show the gateway address and peers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			info, err := client.GetGateway()
			if err != nil {
				return err
			}
			return render(cmd, info, func(w io.Writer) {
				field(w, "Address", color.CyanString(info.NetAddress))
				field(w, "Peers", len(info.Peers))
				for _, peer := range info.Peers {
					direction := "outbound"
					if peer.Inbound {
						direction = "inbound"
					}
					field(w, "  "+peer.NetAddress, peer.Version+" "+direction)
				}
			})
		},
	}

	gatewayCmd.AddCommand(&cobra.Command{
		Use:   "connect ADDRESS",
		Short: "Connect to a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.GatewayConnect(args[0]); err != nil {
				return err
			}
			success(cmd, "Connected to %s", args[0])
			return nil
		},
	})

	gatewayCmd.AddCommand(&cobra.Command{
		Use:   "disconnect ADDRESS",
		Short: "Disconnect from a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.GatewayDisconnect(args[0]); err != nil {
				return err
			}
			success(cmd, "Disconnected from %s", args[0])
			return nil
		},
	})

	return gatewayCmd
}
