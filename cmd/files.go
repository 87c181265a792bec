package cmd

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

func newFilesCmd() *cobra.Command {
	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "Manage files stored by the renter",
	}

	filesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List uploaded files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			files, err := client.ListFiles()
			if err != nil {
				return err
			}
			return render(cmd, files, func(w io.Writer) {
				if len(files) == 0 {
					fmt.Fprintln(w, "No files")
					return
				}
				for _, f := range files {
					field(w, f.SiaPath, fmt.Sprintf("%d bytes, %.0f%% uploaded, available: %s",
						f.Filesize, f.UploadProgress, yesNo(f.Available)))
				}
			})
		},
	})

	filesCmd.AddCommand(&cobra.Command{
		Use:   "delete SIAPATH...",
		Short: "Delete one or more files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			var result *multierror.Error
			for _, siaPath := range args {
				if err := client.DeleteFile(siaPath); err != nil {
					result = multierror.Append(result, err)
					continue
				}
				success(cmd, "Deleted %s", siaPath)
			}
			return result.ErrorOrNil()
		},
	})

	filesCmd.AddCommand(&cobra.Command{
		Use:   "download SIAPATH DESTINATION",
		Short: "Download a file to a path on the daemon's machine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.DownloadFile(args[1], args[0]); err != nil {
				return err
			}
			success(cmd, "Downloaded %s to %s", args[0], args[1])
			return nil
		},
	})

	filesCmd.AddCommand(&cobra.Command{
		Use:   "rename SIAPATH NEWSIAPATH",
		Short: "Rename a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.RenameFile(args[0], args[1]); err != nil {
				return err
			}
			success(cmd, "Renamed %s to %s", args[0], args[1])
			return nil
		},
	})

	filesCmd.AddCommand(&cobra.Command{
		Use:   "upload SOURCE SIAPATH",
		Short: "Upload a file from a path on the daemon's machine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.UploadFile(args[0], args[1]); err != nil {
				return err
			}
			success(cmd, "Uploading %s as %s", args[0], args[1])
			return nil
		},
	})

	return filesCmd
}
