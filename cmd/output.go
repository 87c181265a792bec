package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chinmay1088/siago/chains/sia"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// render prints v as JSON when --json is set, otherwise it calls human
func render(cmd *cobra.Command, v interface{}, human func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if opts.json {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	human(w)
	return nil
}

// field prints an aligned "label: value" line
func field(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "   %-24s %v\n", label+":", value)
}

func success(cmd *cobra.Command, format string, a ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), "✅ %s\n", fmt.Sprintf(format, a...))
}

func currency(hastings decimal.Decimal) string {
	return color.CyanString(sia.FormatCurrency(hastings))
}

func yesNo(b bool) string {
	if b {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

// readPassword returns the flag value when set, otherwise it prompts for
// the password.
func readPassword(cmd *cobra.Command, flagValue, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	passwords, err := promptPasswords(cmd, prompt)
	if err != nil {
		return "", err
	}
	return passwords[0], nil
}

// promptPasswords asks for one password per prompt. A terminal is read
// without echo; any other input is read one line per password.
func promptPasswords(cmd *cobra.Command, prompts ...string) ([]string, error) {
	in := cmd.InOrStdin()
	passwords := make([]string, 0, len(prompts))

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		for _, prompt := range prompts {
			fmt.Fprint(cmd.ErrOrStderr(), prompt)
			password, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return nil, fmt.Errorf("failed to read password: %w", err)
			}
			passwords = append(passwords, string(password))
		}
		return passwords, nil
	}

	reader := bufio.NewReader(in)
	for range prompts {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		passwords = append(passwords, strings.TrimRight(line, "\r\n"))
	}
	return passwords, nil
}
