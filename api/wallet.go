package api

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// GetWallet returns the wallet's lock state and balances
func (c *Client) GetWallet() (*WalletInfo, error) {
	var info WalletInfo
	if err := c.getJSON(RouteWallet, nil, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch wallet: %w", err)
	}
	return &info, nil
}

// Load033x loads a v0.3.3.x wallet file into the current wallet
func (c *Client) Load033x(source, password string) error {
	payload := Payload{
		FormField("source", source),
		FormField("encryptionpassword", password),
	}
	if _, err := c.Post(RouteWallet033x, payload); err != nil {
		return fmt.Errorf("failed to load 033x wallet: %w", err)
	}
	return nil
}

// GetAddress returns a new receiving address from the wallet
func (c *Client) GetAddress() (string, error) {
	var result struct {
		Address string `json:"address"`
	}
	if err := c.getJSON(RouteWalletAddress, nil, &result); err != nil {
		return "", fmt.Errorf("failed to fetch address: %w", err)
	}
	return result.Address, nil
}

// GetAddresses returns all addresses generated by the wallet
func (c *Client) GetAddresses() ([]string, error) {
	var result struct {
		Addresses []string `json:"addresses"`
	}
	if err := c.getJSON(RouteWalletAddresses, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch addresses: %w", err)
	}
	return result.Addresses, nil
}

// BackupWallet writes a backup of the wallet settings to destination on the
// daemon's machine
func (c *Client) BackupWallet(destination string) error {
	payload := Payload{FileField("destination", destination)}
	if _, err := c.Get(RouteWalletBackup, payload); err != nil {
		return fmt.Errorf("failed to back up wallet: %w", err)
	}
	return nil
}

// InitWallet initializes a new wallet and returns its primary seed. When
// password is empty the daemon encrypts the wallet with the seed itself.
func (c *Client) InitWallet(password string) (string, error) {
	var payload Payload
	if password != "" {
		payload = Payload{FormField("encryptionpassword", password)}
	}

	var result struct {
		PrimarySeed string `json:"primaryseed"`
	}
	if err := c.postJSON(RouteWalletInit, payload, &result); err != nil {
		return "", fmt.Errorf("failed to initialize wallet: %w", err)
	}
	return result.PrimarySeed, nil
}

// LoadSeed gives the wallet a seed to track when looking for incoming
// transactions. An empty dictionary means english.
func (c *Client) LoadSeed(password, seed, dictionary string) error {
	payload := Payload{
		FormField("encryptionpassword", password),
		FormField("dictionary", dictionaryOrDefault(dictionary)),
		FormField("seed", seed),
	}
	if _, err := c.Post(RouteWalletSeed, payload); err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}
	return nil
}

// GetSeeds returns the seeds in use by the wallet, rendered with the given
// dictionary. An empty dictionary means english.
func (c *Client) GetSeeds(dictionary string) (*WalletSeeds, error) {
	payload := Payload{FileField("dictionary", dictionaryOrDefault(dictionary))}

	var seeds WalletSeeds
	if err := c.getJSON(RouteWalletSeeds, payload, &seeds); err != nil {
		return nil, fmt.Errorf("failed to fetch seeds: %w", err)
	}
	return &seeds, nil
}

// SendSiacoins sends amount hastings to destination and returns the ids of
// the transactions that were created
func (c *Client) SendSiacoins(amount decimal.Decimal, destination string) ([]string, error) {
	payload := Payload{
		FormField("amount", amount),
		FormField("destination", destination),
	}

	var result struct {
		TransactionIDs []string `json:"transactionids"`
	}
	if err := c.postJSON(RouteWalletSiacoins, payload, &result); err != nil {
		return nil, fmt.Errorf("failed to send siacoins: %w", err)
	}
	return result.TransactionIDs, nil
}

// SendSiafunds sends amount siafunds to destination and returns the ids of
// the transactions that were created
func (c *Client) SendSiafunds(amount uint64, destination string) ([]string, error) {
	payload := Payload{
		FormField("amount", amount),
		FormField("destination", destination),
	}

	var result struct {
		TransactionIDs []string `json:"transactionids"`
	}
	if err := c.postJSON(RouteWalletSiafunds, payload, &result); err != nil {
		return nil, fmt.Errorf("failed to send siafunds: %w", err)
	}
	return result.TransactionIDs, nil
}

// LoadSiagKey loads siag generated key files into the wallet
func (c *Client) LoadSiagKey(password string, keyFiles []string) error {
	payload := Payload{
		FormField("encryptionpassword", password),
		FormField("keyfiles", strings.Join(keyFiles, ",")),
	}
	if _, err := c.Post(RouteWalletSiagKey, payload); err != nil {
		return fmt.Errorf("failed to load siag keys: %w", err)
	}
	return nil
}

// LockWallet locks the wallet
func (c *Client) LockWallet() error {
	if _, err := c.Post(RouteWalletLock, nil); err != nil {
		return fmt.Errorf("failed to lock wallet: %w", err)
	}
	return nil
}

// UnlockWallet unlocks the wallet with its encryption password
func (c *Client) UnlockWallet(password string) error {
	payload := Payload{FormField("encryptionpassword", password)}
	if _, err := c.Post(RouteWalletUnlock, payload); err != nil {
		return fmt.Errorf("failed to unlock wallet: %w", err)
	}
	return nil
}

// GetTransaction returns the transaction with the given id
func (c *Client) GetTransaction(id string) (*ProcessedTransaction, error) {
	var result struct {
		Transaction ProcessedTransaction `json:"transaction"`
	}
	if err := c.getJSON(RouteWalletTransaction+id, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", id, err)
	}
	return &result.Transaction, nil
}

// GetTransactions returns the wallet's transactions confirmed between
// startHeight and endHeight, plus the unconfirmed ones
func (c *Client) GetTransactions(startHeight, endHeight uint64) (*WalletTransactions, error) {
	path := fmt.Sprintf("%s?startheight=%d&endheight=%d", RouteWalletTransactions, startHeight, endHeight)

	var txns WalletTransactions
	if err := c.getJSON(path, nil, &txns); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return &txns, nil
}

// GetTransactionsRelated returns the transactions related to address
func (c *Client) GetTransactionsRelated(address string) ([]ProcessedTransaction, error) {
	var result struct {
		Transactions []ProcessedTransaction `json:"transactions"`
	}
	if err := c.getJSON(RouteWalletTransactions+"/"+address, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for %s: %w", address, err)
	}
	return result.Transactions, nil
}

// VerifyAddress reports whether the daemon considers address valid
func (c *Client) VerifyAddress(address string) (bool, error) {
	var result struct {
		Valid bool `json:"valid"`
	}
	if err := c.getJSON(RouteWalletVerifyAddress+address, nil, &result); err != nil {
		return false, fmt.Errorf("failed to verify address: %w", err)
	}
	return result.Valid, nil
}

// ChangePassword changes the wallet's encryption password
func (c *Client) ChangePassword(password, newPassword string) error {
	payload := Payload{
		FormField("encryptionpassword", password),
		FormField("newpassword", newPassword),
	}
	if _, err := c.Post(RouteWalletChangePassword, payload); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

func dictionaryOrDefault(dictionary string) string {
	if dictionary == "" {
		return DefaultDictionary
	}
	return dictionary
}
