package cli

import (
	"context"
	"fmt"
)

// Upload sends a local file to the media endpoint and prints its URL.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: upload <file>")
		return errUsage
	}
	res, err := a.api.Files.UploadFile(ctx, args[0])
	if err != nil {
		a.log.Error(ctx, "upload failed", "file", args[0], "error", err)
		a.reportLocal(err)
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %s (%d bytes): %s\n", res.Name, res.Size, res.URL)
	return nil
}
