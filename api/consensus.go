package api

import "fmt"

// GetConsensus returns information about the consensus set
func (c *Client) GetConsensus() (*ConsensusInfo, error) {
	var info ConsensusInfo
	if err := c.getJSON(RouteConsensus, nil, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch consensus: %w", err)
	}
	return &info, nil
}

// ValidateTransactionSet asks the daemon to validate a JSON-encoded
// transaction set against the current utxo set. The set is sent as-is.
func (c *Client) ValidateTransactionSet(txnSet []byte) error {
	if _, err := c.PostBytes(RouteConsensusValidate, txnSet); err != nil {
		return fmt.Errorf("failed to validate transaction set: %w", err)
	}
	return nil
}
