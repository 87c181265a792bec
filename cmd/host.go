package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/chinmay1088/siago/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newHostCmd() *cobra.Command {
	hostCmd := &cobra.Command{
		Use:   "host",
		Short: "Show the host settings and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			info, err := client.GetHost()
			if err != nil {
				return err
			}
			return render(cmd, info, func(w io.Writer) {
				ext := info.ExternalSettings
				field(w, "Net address", color.CyanString(ext.NetAddress))
				field(w, "Accepting contracts", yesNo(ext.AcceptingContracts))
				field(w, "Connectability", info.ConnectabilityStatus)
				field(w, "Working", info.WorkingStatus)
				field(w, "Storage", fmt.Sprintf("%d / %d bytes free", ext.RemainingStorage, ext.TotalStorage))
				field(w, "Storage price", currency(ext.StoragePrice))
				field(w, "Collateral", currency(ext.Collateral))
			})
		},
	}

	hostCmd.AddCommand(&cobra.Command{
		Use:   "announce [NETADDRESS]",
		Short: "Announce the host to the network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			netAddress := ""
			if len(args) == 1 {
				netAddress = args[0]
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.HostAnnounce(netAddress); err != nil {
				return err
			}
			success(cmd, "Host announced")
			return nil
		},
	})

	hostCmd.AddCommand(&cobra.Command{
		Use:   "set KEY=VALUE...",
		Short: "Change host settings",
		Long: `Change one or more host settings. Keys are the daemon's setting names.

Example:
  siago host set acceptingcontracts=true mincontractprice=1000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := parseSettings(args)
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.SetHost(settings); err != nil {
				return err
			}
			success(cmd, "Host settings updated")
			return nil
		},
	})

	hostCmd.AddCommand(&cobra.Command{
		Use:   "estimatescore [KEY=VALUE...]",
		Short: "Estimate the host score for the given settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := parseSettings(args)
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			estimate, err := client.HostEstimateScore(settings)
			if err != nil {
				return err
			}
			return render(cmd, estimate, func(w io.Writer) {
				field(w, "Estimated score", estimate.EstimatedScore)
				field(w, "Conversion rate", fmt.Sprintf("%.2f%%", estimate.ConversionRate))
			})
		},
	})

	hostCmd.AddCommand(newHostStorageCmd())
	return hostCmd
}

func newHostStorageCmd() *cobra.Command {
	storageCmd := &cobra.Command{
		Use:   "storage",
		Short: "List the host's storage folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			folders, err := client.HostStorage()
			if err != nil {
				return err
			}
			return render(cmd, folders, func(w io.Writer) {
				if len(folders) == 0 {
					fmt.Fprintln(w, "No storage folders")
					return
				}
				for _, f := range folders {
					field(w, f.Path, fmt.Sprintf("%s / %s free",
						datasize.ByteSize(f.CapacityRemaining).HumanReadable(), datasize.ByteSize(f.Capacity).HumanReadable()))
				}
			})
		},
	}

	storageCmd.AddCommand(&cobra.Command{
		Use:   "add PATH SIZE",
		Short: "Add a storage folder of SIZE, e.g. 500GB",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[1])
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.HostStorageAdd(args[0], size); err != nil {
				return err
			}
			success(cmd, "Added storage folder %s", args[0])
			return nil
		},
	})

	var force bool
	removeCmd := &cobra.Command{
		Use:   "remove PATH",
		Short: "Remove a storage folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.HostStorageRemove(args[0], force); err != nil {
				return err
			}
			success(cmd, "Removed storage folder %s", args[0])
			return nil
		},
	}
	removeCmd.Flags().BoolVar(&force, "force", false, "remove even if data would be lost")
	storageCmd.AddCommand(removeCmd)

	storageCmd.AddCommand(&cobra.Command{
		Use:   "resize PATH SIZE",
		Short: "Resize a storage folder to SIZE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[1])
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.HostStorageResize(args[0], size); err != nil {
				return err
			}
			success(cmd, "Resized storage folder %s", args[0])
			return nil
		},
	})

	storageCmd.AddCommand(&cobra.Command{
		Use:   "sector MERKLEROOT",
		Short: "Delete a sector from the host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.HostStorageSectorDelete(args[0]); err != nil {
				return err
			}
			success(cmd, "Deleted sector %s", args[0])
			return nil
		},
	})

	return storageCmd
}

// parseSettings turns KEY=VALUE arguments into a form payload
func parseSettings(args []string) (api.Payload, error) {
	payload := make(api.Payload, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid setting %q: expected KEY=VALUE", arg)
		}
		payload = append(payload, api.FormField(key, value))
	}
	return payload, nil
}

// parseSize accepts a byte count with an optional binary unit, e.g. "500GB"
func parseSize(s string) (uint64, error) {
	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return size.Bytes(), nil
}
