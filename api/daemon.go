package api

import "fmt"

// GetConstants returns the set of constants in use by the daemon
func (c *Client) GetConstants() (*DaemonConstants, error) {
	var constants DaemonConstants
	if err := c.getJSON(RouteDaemonConstants, nil, &constants); err != nil {
		return nil, fmt.Errorf("failed to fetch constants: %w", err)
	}
	return &constants, nil
}

// StopDaemon cleanly shuts down the daemon
func (c *Client) StopDaemon() error {
	if _, err := c.Get(RouteDaemonStop, nil); err != nil {
		return fmt.Errorf("failed to stop daemon: %w", err)
	}
	return nil
}

// GetVersion returns the version of the running siad
func (c *Client) GetVersion() (string, error) {
	var result struct {
		Version string `json:"version"`
	}
	if err := c.getJSON(RouteDaemonVersion, nil, &result); err != nil {
		return "", fmt.Errorf("failed to fetch version: %w", err)
	}
	return result.Version, nil
}
