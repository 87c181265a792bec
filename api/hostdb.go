package api

import "fmt"

// GetHostDB returns all hosts known to the host database
func (c *Client) GetHostDB() ([]HostDBEntry, error) {
	var result struct {
		Hosts []HostDBEntry `json:"hosts"`
	}
	if err := c.getJSON(RouteHostDBAll, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch hosts: %w", err)
	}
	return result.Hosts, nil
}

// GetHostDBActive returns the active hosts. A positive numHosts caps the
// number of hosts returned.
func (c *Client) GetHostDBActive(numHosts int) ([]HostDBEntry, error) {
	var payload Payload
	if numHosts > 0 {
		payload = Payload{FormField("numhosts", numHosts)}
	}

	var result struct {
		Hosts []HostDBEntry `json:"hosts"`
	}
	if err := c.getJSON(RouteHostDBActive, payload, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch active hosts: %w", err)
	}
	return result.Hosts, nil
}

// GetHostDBHost returns a host's entry together with its score breakdown
func (c *Client) GetHostDBHost(pubKey string) (*HostDBHostInfo, error) {
	var info HostDBHostInfo
	if err := c.getJSON(RouteHostDBHosts+pubKey, nil, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch host %s: %w", pubKey, err)
	}
	return &info, nil
}
