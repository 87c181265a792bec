package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chinmay1088/siago/api"
	"github.com/chinmay1088/siago/chains/sia"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newWalletCmd() *cobra.Command {
	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Show wallet status and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			info, err := client.GetWallet()
			if err != nil {
				return err
			}
			return render(cmd, info, func(w io.Writer) {
				status := color.GreenString("Unlocked")
				if !info.Encrypted {
					status = color.YellowString("No wallet")
				} else if !info.Unlocked {
					status = color.RedString("Locked")
				}
				fmt.Fprintln(w, "💰 Wallet")
				field(w, "Status", status)
				field(w, "Confirmed balance", color.CyanString(sia.FormatBalance(info.ConfirmedSiacoinBalance)))
				field(w, "Unconfirmed incoming", currency(info.UnconfirmedIncomingSiacoins))
				field(w, "Unconfirmed outgoing", currency(info.UnconfirmedOutgoingSiacoins))
				field(w, "Siafunds", info.SiafundBalance)
				field(w, "Siacoin claim", currency(info.SiacoinClaimBalance))
			})
		},
	}

	walletCmd.AddCommand(&cobra.Command{
		Use:   "address",
		Short: "Generate a new receiving address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			address, err := client.GetAddress()
			if err != nil {
				return err
			}
			return render(cmd, map[string]string{"address": address}, func(w io.Writer) {
				fmt.Fprintf(w, "📍 %s\n", address)
			})
		},
	})

	walletCmd.AddCommand(&cobra.Command{
		Use:   "addresses",
		Short: "List all wallet addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			addresses, err := client.GetAddresses()
			if err != nil {
				return err
			}
			return render(cmd, addresses, func(w io.Writer) {
				for _, address := range addresses {
					fmt.Fprintln(w, address)
				}
			})
		},
	})

	walletCmd.AddCommand(&cobra.Command{
		Use:   "backup DESTINATION",
		Short: "Back up the wallet to a path on the daemon's machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.BackupWallet(args[0]); err != nil {
				return err
			}
			success(cmd, "Wallet backed up to %s", args[0])
			return nil
		},
	})

	walletCmd.AddCommand(newWalletInitCmd())
	walletCmd.AddCommand(newWalletLoadCmd())
	walletCmd.AddCommand(newWalletSeedsCmd())
	walletCmd.AddCommand(newWalletSendCmd())
	walletCmd.AddCommand(newWalletUnlockCmd())
	walletCmd.AddCommand(newWalletTransactionsCmd())
	walletCmd.AddCommand(newWalletChangePasswordCmd())

	walletCmd.AddCommand(&cobra.Command{
		Use:   "lock",
		Short: "Lock the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.LockWallet(); err != nil {
				return err
			}
			success(cmd, "Wallet locked")
			return nil
		},
	})

	walletCmd.AddCommand(&cobra.Command{
		Use:   "transaction ID",
		Short: "Show a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			txn, err := client.GetTransaction(args[0])
			if err != nil {
				return err
			}
			return render(cmd, txn, func(w io.Writer) { printTransaction(w, *txn) })
		},
	})

	walletCmd.AddCommand(&cobra.Command{
		Use:   "verify ADDRESS",
		Short: "Check that an address is valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sia.ValidateAddress(args[0]); err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			valid, err := client.VerifyAddress(args[0])
			if err != nil {
				return err
			}
			if !valid {
				return fmt.Errorf("daemon rejected address %s", args[0])
			}
			success(cmd, "Address is valid")
			return nil
		},
	})

	return walletCmd
}

func newWalletInitCmd() *cobra.Command {
	var password string
	var noPassword bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new wallet and print its seed",
		Long: `Create a new wallet on the daemon. The wallet is encrypted with the given
password, or with the seed itself when --no-password is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !noPassword && password == "" {
				passwords, err := promptPasswords(cmd, "Enter a password for your wallet: ", "Confirm password: ")
				if err != nil {
					return err
				}
				if passwords[0] != passwords[1] {
					return fmt.Errorf("passwords do not match")
				}
				password = passwords[0]
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			seed, err := client.InitWallet(password)
			if err != nil {
				return err
			}

			return render(cmd, map[string]string{"primaryseed": seed}, func(w io.Writer) {
				fmt.Fprintln(w, "✅ Wallet initialized successfully!")
				fmt.Fprintln(w)
				fmt.Fprintln(w, "🔐 Primary seed:")
				fmt.Fprintf(w, "   %s\n", color.YellowString(seed))
				fmt.Fprintln(w)
				fmt.Fprintln(w, "⚠️  Write this seed down and keep it offline. It is the only way to recover your wallet.")
			})
		},
	}

	initCmd.Flags().StringVar(&password, "password", "", "wallet encryption password")
	initCmd.Flags().BoolVar(&noPassword, "no-password", false, "encrypt the wallet with its seed")
	return initCmd
}

func newWalletLoadCmd() *cobra.Command {
	var password, dictionary string

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load seeds, v0.3.3.x wallets or siag keys into the wallet",
	}
	loadCmd.PersistentFlags().StringVar(&password, "password", "", "wallet encryption password")

	seedCmd := &cobra.Command{
		Use:   "seed WORDS...",
		Short: "Track an additional seed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password, "Wallet password: ")
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			dict, err := seedDictionary(cmd, dictionary)
			if err != nil {
				return err
			}
			if err := client.LoadSeed(pw, strings.Join(args, " "), dict); err != nil {
				return err
			}
			success(cmd, "Seed loaded")
			return nil
		},
	}
	seedCmd.Flags().StringVar(&dictionary, "dictionary", "", "seed dictionary (default from config, else english)")
	loadCmd.AddCommand(seedCmd)

	loadCmd.AddCommand(&cobra.Command{
		Use:   "033x SOURCE",
		Short: "Load a v0.3.3.x wallet file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password, "Wallet password: ")
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.Load033x(args[0], pw); err != nil {
				return err
			}
			success(cmd, "Loaded %s", args[0])
			return nil
		},
	})

	loadCmd.AddCommand(&cobra.Command{
		Use:   "siag KEYFILE...",
		Short: "Load siag key files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password, "Wallet password: ")
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.LoadSiagKey(pw, args); err != nil {
				return err
			}
			success(cmd, "Loaded %d key files", len(args))
			return nil
		},
	})

	return loadCmd
}

func newWalletSeedsCmd() *cobra.Command {
	var dictionary string

	seedsCmd := &cobra.Command{
		Use:   "seeds",
		Short: "Show the wallet seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			dict, err := seedDictionary(cmd, dictionary)
			if err != nil {
				return err
			}
			seeds, err := client.GetSeeds(dict)
			if err != nil {
				return err
			}
			return render(cmd, seeds, func(w io.Writer) {
				field(w, "Primary seed", color.YellowString(seeds.PrimarySeed))
				field(w, "Addresses remaining", seeds.AddressesRemaining)
				for _, seed := range seeds.AllSeeds {
					if seed != seeds.PrimarySeed {
						field(w, "Seed", seed)
					}
				}
			})
		},
	}
	seedsCmd.Flags().StringVar(&dictionary, "dictionary", "", "seed dictionary (default from config, else english)")
	return seedsCmd
}

func newWalletSendCmd() *cobra.Command {
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send siacoins or siafunds",
	}

	sendCmd.AddCommand(&cobra.Command{
		Use:   "siacoins AMOUNT ADDRESS",
		Short: "Send siacoins",
		Long: `Send siacoins to an address. AMOUNT accepts unit suffixes (H, pS, nS, uS,
mS, SC, KS, MS, GS, TS). A bare number is a hasting amount.

Example:
  siago wallet send siacoins 10SC <address>`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := sia.ParseCurrency(args[0])
			if err != nil {
				return err
			}
			if err := sia.ValidateAddress(args[1]); err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			txids, err := client.SendSiacoins(amount, args[1])
			if err != nil {
				return err
			}
			return render(cmd, txids, func(w io.Writer) {
				fmt.Fprintf(w, "✅ Sent %s to %s\n", currency(amount), args[1])
				printTransactionIDs(w, txids)
			})
		},
	})

	sendCmd.AddCommand(&cobra.Command{
		Use:   "siafunds AMOUNT ADDRESS",
		Short: "Send siafunds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid siafund amount %q: %w", args[0], err)
			}
			if err := sia.ValidateAddress(args[1]); err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			txids, err := client.SendSiafunds(amount, args[1])
			if err != nil {
				return err
			}
			return render(cmd, txids, func(w io.Writer) {
				fmt.Fprintf(w, "✅ Sent %d SF to %s\n", amount, args[1])
				printTransactionIDs(w, txids)
			})
		},
	})

	return sendCmd
}

func newWalletUnlockCmd() *cobra.Command {
	var password string

	unlockCmd := &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password, "Enter your wallet password: ")
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.UnlockWallet(pw); err != nil {
				return err
			}
			success(cmd, "Wallet unlocked successfully!")
			return nil
		},
	}
	unlockCmd.Flags().StringVar(&password, "password", "", "wallet encryption password")
	return unlockCmd
}

func newWalletChangePasswordCmd() *cobra.Command {
	var password, newPassword string

	changeCmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the wallet encryption password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var prompts []string
			if password == "" {
				prompts = append(prompts, "Current password: ")
			}
			if newPassword == "" {
				prompts = append(prompts, "New password: ")
			}
			if len(prompts) > 0 {
				passwords, err := promptPasswords(cmd, prompts...)
				if err != nil {
					return err
				}
				if password == "" {
					password, passwords = passwords[0], passwords[1:]
				}
				if newPassword == "" {
					newPassword = passwords[0]
				}
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.ChangePassword(password, newPassword); err != nil {
				return err
			}
			success(cmd, "Password changed")
			return nil
		},
	}
	changeCmd.Flags().StringVar(&password, "password", "", "current encryption password")
	changeCmd.Flags().StringVar(&newPassword, "new-password", "", "new encryption password")
	return changeCmd
}

func newWalletTransactionsCmd() *cobra.Command {
	var start, end uint64
	var address string

	txnsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "List wallet transactions",
		Long: `List wallet transactions confirmed between --start and --end plus the
unconfirmed ones, or every transaction related to --address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			if address != "" {
				txns, err := client.GetTransactionsRelated(address)
				if err != nil {
					return err
				}
				return render(cmd, txns, func(w io.Writer) { printTransactions(w, "Related", txns) })
			}

			if !cmd.Flags().Changed("end") {
				info, err := client.GetConsensus()
				if err != nil {
					return err
				}
				end = info.Height
			}
			txns, err := client.GetTransactions(start, end)
			if err != nil {
				return err
			}
			return render(cmd, txns, func(w io.Writer) {
				printTransactions(w, "Confirmed", txns.ConfirmedTransactions)
				printTransactions(w, "Unconfirmed", txns.UnconfirmedTransactions)
			})
		},
	}

	txnsCmd.Flags().Uint64Var(&start, "start", 0, "first block height")
	txnsCmd.Flags().Uint64Var(&end, "end", 0, "last block height (default current height)")
	txnsCmd.Flags().StringVar(&address, "address", "", "only show transactions related to this address")
	return txnsCmd
}

// seedDictionary returns the --dictionary flag, falling back to the
// configured dictionary
func seedDictionary(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", err
	}
	return cfg.Dictionary, nil
}

func printTransactionIDs(w io.Writer, txids []string) {
	for _, id := range txids {
		field(w, "Transaction", id)
	}
}

func printTransactions(w io.Writer, title string, txns []api.ProcessedTransaction) {
	fmt.Fprintf(w, "%s (%d)\n", title, len(txns))
	for _, txn := range txns {
		printTransaction(w, txn)
	}
}

func printTransaction(w io.Writer, txn api.ProcessedTransaction) {
	field(w, "ID", txn.TransactionID)
	field(w, "Height", txn.ConfirmationHeight)
	for _, in := range txn.Inputs {
		if in.WalletAddress {
			field(w, "  "+in.FundType, color.RedString("-%s", fundAmount(in.FundType, in.Value)))
		}
	}
	for _, out := range txn.Outputs {
		if out.WalletAddress {
			field(w, "  "+out.FundType, color.GreenString("+%s", fundAmount(out.FundType, out.Value)))
		}
	}
}

// fundAmount renders a transaction value: siafunds are plain counts, every
// other fund type is a hasting amount
func fundAmount(fundType string, value decimal.Decimal) string {
	if strings.HasPrefix(fundType, "siafund") {
		return value.String() + " SF"
	}
	return sia.FormatCurrency(value)
}
