package api

import "fmt"

// ListFiles returns all files tracked by the renter
func (c *Client) ListFiles() ([]FileInfo, error) {
	var result struct {
		Files []FileInfo `json:"files"`
	}
	if err := c.getJSON(RouteRenterFiles, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return result.Files, nil
}

// DeleteFile deletes a renter file
func (c *Client) DeleteFile(siaPath string) error {
	if _, err := c.Post(RouteRenterDelete+siaPath, nil); err != nil {
		return fmt.Errorf("failed to delete %s: %w", siaPath, err)
	}
	return nil
}

// DownloadFile downloads siaPath to localPath on the daemon's machine
func (c *Client) DownloadFile(localPath, siaPath string) error {
	payload := Payload{FormField("destination", localPath)}
	if _, err := c.Get(RouteRenterDownload+siaPath, payload); err != nil {
		return fmt.Errorf("failed to download %s: %w", siaPath, err)
	}
	return nil
}

// RenameFile renames a renter file
func (c *Client) RenameFile(siaPath, newSiaPath string) error {
	payload := Payload{FormField("newsiapath", newSiaPath)}
	if _, err := c.Post(RouteRenterRename+siaPath, payload); err != nil {
		return fmt.Errorf("failed to rename %s: %w", siaPath, err)
	}
	return nil
}

// UploadFile uploads localPath, a path on the daemon's machine, as siaPath
func (c *Client) UploadFile(localPath, siaPath string) error {
	payload := Payload{FormField("source", localPath)}
	if _, err := c.Post(RouteRenterUpload+siaPath, payload); err != nil {
		return fmt.Errorf("failed to upload %s: %w", siaPath, err)
	}
	return nil
}
