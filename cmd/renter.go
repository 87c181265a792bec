package cmd

import (
	"fmt"
	"io"

	"github.com/chinmay1088/siago/api"
	"github.com/chinmay1088/siago/chains/sia"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newRenterCmd() *cobra.Command {
	renterCmd := &cobra.Command{
		Use:   "renter",
		Short: "Show the renter allowance and spending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			info, err := client.GetRenter()
			if err != nil {
				return err
			}
			return render(cmd, info, func(w io.Writer) {
				allowance := info.Settings.Allowance
				field(w, "Allowance", currency(allowance.Funds))
				field(w, "Hosts", allowance.Hosts)
				field(w, "Period", fmt.Sprintf("%d blocks", allowance.Period))
				field(w, "Renew window", fmt.Sprintf("%d blocks", allowance.RenewWindow))
				field(w, "Contract spending", currency(info.FinancialMetrics.ContractSpending))
				field(w, "Unspent", currency(info.FinancialMetrics.Unspent))
			})
		},
	}

	renterCmd.AddCommand(newRenterSetCmd())

	renterCmd.AddCommand(&cobra.Command{
		Use:   "prices",
		Short: "Show estimated storage prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			prices, err := client.GetRenterPrices()
			if err != nil {
				return err
			}
			return render(cmd, prices, func(w io.Writer) {
				field(w, "Form contracts", currency(prices.FormContracts))
				field(w, "Storage (TB/month)", currency(prices.StorageTerabyteMonth))
				field(w, "Upload (TB)", currency(prices.UploadTerabyte))
				field(w, "Download (TB)", currency(prices.DownloadTerabyte))
			})
		},
	})

	renterCmd.AddCommand(&cobra.Command{
		Use:   "contracts",
		Short: "List active file contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			contracts, err := client.GetRenterContracts()
			if err != nil {
				return err
			}
			return render(cmd, contracts, func(w io.Writer) {
				if len(contracts) == 0 {
					fmt.Fprintln(w, "No contracts")
					return
				}
				for _, c := range contracts {
					field(w, c.NetAddress, fmt.Sprintf("%s remaining, ends at %d", sia.FormatCurrency(c.RenterFunds), c.EndHeight))
				}
			})
		},
	})

	renterCmd.AddCommand(&cobra.Command{
		Use:   "downloads",
		Short: "Show the download queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			downloads, err := client.GetDownloads()
			if err != nil {
				return err
			}
			return render(cmd, downloads, func(w io.Writer) { printDownloads(w, downloads) })
		},
	})

	renterCmd.AddCommand(newFilesCmd())
	return renterCmd
}

func newRenterSetCmd() *cobra.Command {
	var (
		funds       string
		hosts       uint64
		period      uint64
		renewWindow uint64
	)

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Set the renter allowance",
		Long: `Set the renter allowance. Funds accept unit suffixes.

Example:
  siago renter set --funds 500SC --hosts 50 --period 4320 --renewwindow 1440`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := sia.ParseCurrency(funds)
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			allowance := api.Allowance{
				Funds:       amount,
				Hosts:       hosts,
				Period:      period,
				RenewWindow: renewWindow,
			}
			if err := client.SetRenter(allowance); err != nil {
				return err
			}
			success(cmd, "Allowance set to %s", sia.FormatCurrency(amount))
			return nil
		},
	}

	setCmd.Flags().StringVar(&funds, "funds", "", "allowance funds, e.g. 500SC")
	setCmd.Flags().Uint64Var(&hosts, "hosts", 50, "number of hosts to form contracts with")
	setCmd.Flags().Uint64Var(&period, "period", 4320, "allowance period in blocks")
	setCmd.Flags().Uint64Var(&renewWindow, "renewwindow", 1440, "renew window in blocks")
	setCmd.MarkFlagRequired("funds")

	return setCmd
}

func printDownloads(w io.Writer, downloads []api.DownloadInfo) {
	if len(downloads) == 0 {
		fmt.Fprintln(w, "No downloads")
		return
	}

	for _, d := range downloads {
		field(w, d.SiaPath, d.Destination)
		if d.Error != "" {
			fmt.Fprintf(w, "   %s\n", color.RedString("error: %s", d.Error))
			continue
		}
		if d.Filesize == 0 {
			continue
		}

		bar := progressbar.NewOptions64(int64(d.Filesize),
			progressbar.OptionSetWriter(w),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		bar.Set64(int64(d.Received))
		fmt.Fprintln(w)
	}
}
