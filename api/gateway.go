package api

import "fmt"

// GetGateway returns the gateway's address and its peers
func (c *Client) GetGateway() (*GatewayInfo, error) {
	var info GatewayInfo
	if err := c.getJSON(RouteGateway, nil, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch gateway: %w", err)
	}
	return &info, nil
}

// GatewayConnect connects the gateway to a peer
func (c *Client) GatewayConnect(netAddress string) error {
	if _, err := c.Post(RouteGatewayConnect+netAddress, nil); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", netAddress, err)
	}
	return nil
}

// GatewayDisconnect disconnects the gateway from a peer
func (c *Client) GatewayDisconnect(netAddress string) error {
	if _, err := c.Post(RouteGatewayDisconnect+netAddress, nil); err != nil {
		return fmt.Errorf("failed to disconnect from %s: %w", netAddress, err)
	}
	return nil
}
