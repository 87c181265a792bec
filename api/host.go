package api

import "fmt"

// GetHost returns the host's settings, metrics and status
func (c *Client) GetHost() (*HostInfo, error) {
	var info HostInfo
	if err := c.getJSON(RouteHost, nil, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch host: %w", err)
	}
	return &info, nil
}

// SetHost updates hosting parameters. Settings are the internal settings
// fields to change, e.g. FormField("minstorageprice", price).
func (c *Client) SetHost(settings Payload) error {
	if _, err := c.Post(RouteHost, settings); err != nil {
		return fmt.Errorf("failed to update host settings: %w", err)
	}
	return nil
}

// HostAnnounce announces the host to the network. An empty netAddress lets
// the daemon announce its own address.
func (c *Client) HostAnnounce(netAddress string) error {
	var payload Payload
	if netAddress != "" {
		payload = Payload{FormField("netaddress", netAddress)}
	}
	if _, err := c.Post(RouteHostAnnounce, payload); err != nil {
		return fmt.Errorf("failed to announce host: %w", err)
	}
	return nil
}

// HostStorage returns the folders tracked by the storage manager
func (c *Client) HostStorage() ([]StorageFolder, error) {
	var result struct {
		Folders []StorageFolder `json:"folders"`
	}
	if err := c.getJSON(RouteHostStorage, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch storage folders: %w", err)
	}
	return result.Folders, nil
}

// HostStorageAdd adds a storage folder of the given size in bytes
func (c *Client) HostStorageAdd(path string, size uint64) error {
	payload := Payload{
		FormField("path", path),
		FormField("size", size),
	}
	if _, err := c.Post(RouteHostStorageAdd, payload); err != nil {
		return fmt.Errorf("failed to add storage folder: %w", err)
	}
	return nil
}

// HostStorageRemove removes a storage folder. With force set the daemon
// removes the folder even if sectors cannot be relocated.
func (c *Client) HostStorageRemove(path string, force bool) error {
	payload := Payload{
		FormField("path", path),
		FormField("force", force),
	}
	if _, err := c.Post(RouteHostStorageRemove, payload); err != nil {
		return fmt.Errorf("failed to remove storage folder: %w", err)
	}
	return nil
}

// HostStorageResize grows or shrinks a storage folder to size bytes
func (c *Client) HostStorageResize(path string, size uint64) error {
	payload := Payload{
		FormField("path", path),
		FormField("size", size),
	}
	if _, err := c.Post(RouteHostStorageResize, payload); err != nil {
		return fmt.Errorf("failed to resize storage folder: %w", err)
	}
	return nil
}

// HostStorageSectorDelete deletes the sector with the given merkle root
func (c *Client) HostStorageSectorDelete(merkleRoot string) error {
	if _, err := c.Post(RouteHostStorageSector+merkleRoot, nil); err != nil {
		return fmt.Errorf("failed to delete sector: %w", err)
	}
	return nil
}

// HostEstimateScore returns the hostdb score the host would get with its
// current settings combined with the provided ones. Settings may be nil.
func (c *Client) HostEstimateScore(settings Payload) (*HostScoreEstimate, error) {
	var estimate HostScoreEstimate
	if err := c.getJSON(RouteHostEstimateScore, settings, &estimate); err != nil {
		return nil, fmt.Errorf("failed to estimate score: %w", err)
	}
	return &estimate, nil
}
