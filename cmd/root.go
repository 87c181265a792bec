package cmd

import (
	"fmt"
	"net/http"

	"github.com/chinmay1088/siago/api"
	"github.com/chinmay1088/siago/cmd/internal/config"
	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

// globalOptions holds the values of the persistent flags
type globalOptions struct {
	addr       string
	port       int
	configPath string
	verbose    bool
	json       bool
}

var opts globalOptions

// NewRootCmd builds the siago command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "siago",
		Short: "A command-line client for the Sia daemon",
		Long: `siago talks to a running siad over its HTTP API. It covers the daemon,
consensus, gateway, host, hostdb, miner, renter and wallet modules.

The daemon location is read from a TOML config file (--config, $SIAGO_CONFIG,
./siago.toml or ~/.siago/config.toml) and can be overridden with --addr and --port.

Examples:
  siago daemon version              # Show the daemon version
  siago wallet                      # Show wallet balances
  siago wallet unlock               # Unlock the wallet
  siago wallet send siacoins 10SC <address>
  siago renter files list           # List uploaded files`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.addr, "addr", "", "daemon address (default "+api.DefaultAddress+")")
	rootCmd.PersistentFlags().IntVar(&opts.port, "port", 0, fmt.Sprintf("daemon port (default %d)", api.DefaultPort))
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every daemon request")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print responses as JSON")

	rootCmd.AddCommand(newDaemonCmd())
	rootCmd.AddCommand(newConsensusCmd())
	rootCmd.AddCommand(newGatewayCmd())
	rootCmd.AddCommand(newHostCmd())
	rootCmd.AddCommand(newHostDBCmd())
	rootCmd.AddCommand(newMinerCmd())
	rootCmd.AddCommand(newRenterCmd())
	rootCmd.AddCommand(newWalletCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command with the process arguments
func Execute() error {
	return NewRootCmd().Execute()
}

// newClient builds an API client from the config file and the persistent
// flags. Flags win over file values.
func newClient(cmd *cobra.Command) (*api.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cfg.Verbose {
		if err := logging.SetLogLevel("siago/api", "debug"); err != nil {
			return nil, fmt.Errorf("failed to set log level: %w", err)
		}
	}

	client := api.NewClientWithAddress(cfg.Address, cfg.Port)
	client.SetHTTPClient(&http.Client{Timeout: cfg.Timeout})
	return client, nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Address = opts.addr
	}
	if flags.Changed("port") {
		cfg.Port = opts.port
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "siago v%s\n", version)
		},
	}
}
