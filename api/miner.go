package api

import "fmt"

// GetMiner returns the status of the miner
func (c *Client) GetMiner() (*MinerInfo, error) {
	var info MinerInfo
	if err := c.getJSON(RouteMiner, nil, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch miner: %w", err)
	}
	return &info, nil
}

// StartMiner starts a single threaded CPU miner
func (c *Client) StartMiner() error {
	if _, err := c.Get(RouteMinerStart, nil); err != nil {
		return fmt.Errorf("failed to start miner: %w", err)
	}
	return nil
}

// StopMiner stops the CPU miner
func (c *Client) StopMiner() error {
	if _, err := c.Get(RouteMinerStop, nil); err != nil {
		return fmt.Errorf("failed to stop miner: %w", err)
	}
	return nil
}

// GetBlockHeader returns a block header to mine on, exactly as sent by the
// daemon (target, header).
func (c *Client) GetBlockHeader() ([]byte, error) {
	res, err := c.GetBytes(RouteMinerHeader, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block header: %w", err)
	}
	return res.Raw, nil
}

// PostBlockHeader submits a header that has passed the proof of work. The
// header bytes are sent unmodified.
func (c *Client) PostBlockHeader(header []byte) error {
	if _, err := c.PostBytes(RouteMinerHeader, header); err != nil {
		return fmt.Errorf("failed to submit block header: %w", err)
	}
	return nil
}
