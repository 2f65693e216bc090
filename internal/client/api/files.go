package api

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/blogcli/internal/client/transport"
)

const uploadField = "file"

type FilesAPI struct {
	c *transport.Client
}

func (a *FilesAPI) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error) {
	res, err := transport.Upload[UploadResult](ctx, a.c, "/files/upload", uploadField, filename, r)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UploadFile uploads the file at path under its base name.
func (a *FilesAPI) UploadFile(ctx context.Context, path string) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return a.Upload(ctx, filepath.Base(path), f)
}
