package helper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"ticket_master/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

var ErrUploadsDisabled = errors.New("cloudinary is not configured")

type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error)
	Destroy(ctx context.Context, imageUrl string) error
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewImageUploader returns a Cloudinary uploader, or ErrUploadsDisabled when no credentials are set.
func NewImageUploader(settings config.Cloudinary) (ImageUploader, error) {
	if settings.CloudName == "" || settings.APIKey == "" || settings.APISecret == "" {
		return nil, ErrUploadsDisabled
	}
	cld, err := cloudinary.NewFromParams(settings.CloudName, settings.APIKey, settings.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &cloudinaryUploader{cld: cld}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", errors.New(result.Error.Message)
	}
	return result.SecureURL, nil
}

func (u *cloudinaryUploader) Destroy(ctx context.Context, imageUrl string) error {
	publicID := ExtractPublicID(imageUrl)
	if publicID == "" {
		return nil
	}
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		log.Warn().Err(err).Str("publicId", publicID).Msg("could not remove old image")
	}
	return err
}

// ExtractPublicID turns a Cloudinary delivery URL into the asset's public id:
// .../upload/v1712/teams/logo_abc.png -> teams/logo_abc
func ExtractPublicID(imageUrl string) string {
	parsed, err := url.Parse(imageUrl)
	if err != nil {
		return ""
	}
	_, after, found := strings.Cut(parsed.Path, "/upload/")
	if !found {
		return ""
	}
	parts := strings.Split(after, "/")
	if len(parts) > 1 && strings.HasPrefix(parts[0], "v") {
		parts = parts[1:]
	}
	id := strings.Join(parts, "/")
	return strings.TrimSuffix(id, path.Ext(id))
}
