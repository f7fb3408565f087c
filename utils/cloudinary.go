package utils

import (
	"context"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/musaada/musaada/config"
)

// Uploader wraps the Cloudinary client for avatar and document uploads.
type Uploader struct {
	client *cloudinary.Cloudinary
	preset string
}

func NewUploader(cfg config.Cloudinary) (*Uploader, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &Uploader{client: client, preset: cfg.UploadPreset}, nil
}

// Upload pushes a file to Cloudinary and returns the secure URL.
// Images get a thumbnail transformation; documents are stored as-is.
func (u *Uploader) Upload(ctx context.Context, file interface{}, publicID, folder string) (string, error) {
	params := uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		UploadPreset: u.preset,
	}

	if name, ok := file.(string); ok {
		ext := filepath.Ext(name)
		if ext != ".pdf" && ext != ".PDF" {
			params.Transformation = "c_thumb,w_200,h_200"
		}
	}

	resp, err := u.client.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
