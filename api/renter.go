package api

import "fmt"

// GetRenter returns the renter's settings and spending
func (c *Client) GetRenter() (*RenterInfo, error) {
	var info RenterInfo
	if err := c.getJSON(RouteRenter, nil, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch renter: %w", err)
	}
	return &info, nil
}

// SetRenter sets the renter's allowance
func (c *Client) SetRenter(allowance Allowance) error {
	payload := Payload{
		FormField("funds", allowance.Funds),
		FormField("hosts", allowance.Hosts),
		FormField("period", allowance.Period),
		FormField("renewwindow", allowance.RenewWindow),
	}
	if _, err := c.Post(RouteRenter, payload); err != nil {
		return fmt.Errorf("failed to set allowance: %w", err)
	}
	return nil
}

// GetRenterPrices returns the estimated cost of storage operations
func (c *Client) GetRenterPrices() (*RenterPrices, error) {
	var prices RenterPrices
	if err := c.getJSON(RouteRenterPrices, nil, &prices); err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	return &prices, nil
}

// GetRenterContracts returns the renter's active contracts
func (c *Client) GetRenterContracts() ([]RenterContract, error) {
	var result struct {
		Contracts []RenterContract `json:"contracts"`
	}
	if err := c.getJSON(RouteRenterContracts, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch contracts: %w", err)
	}
	return result.Contracts, nil
}

// GetDownloads returns the renter's download queue
func (c *Client) GetDownloads() ([]DownloadInfo, error) {
	var result struct {
		Downloads []DownloadInfo `json:"downloads"`
	}
	if err := c.getJSON(RouteRenterDownloads, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch downloads: %w", err)
	}
	return result.Downloads, nil
}
