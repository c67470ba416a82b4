package utils

import (
	"context"
	"fmt"
	"time"

	"dc3/config"

	"github.com/go-resty/resty/v2"
)

// DriveClient downloads signature images through the Google Drive proxy.
// It satisfies generator.ImageFetcher.
type DriveClient struct {
	client *resty.Client
}

func NewDriveClient() *DriveClient {
	return &DriveClient{
		client: resty.New().
			SetBaseURL(config.AppConfig.DriveProxyURL).
			SetTimeout(10 * time.Second),
	}
}

// FetchImage retrieves the binary image for a Drive file id.
func (d *DriveClient) FetchImage(ctx context.Context, id string) ([]byte, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetQueryParam("id", id).
		Get("")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("drive proxy returned status %d for id %s", resp.StatusCode(), id)
	}
	if len(resp.Body()) == 0 {
		return nil, fmt.Errorf("drive proxy returned empty body for id %s", id)
	}
	return resp.Body(), nil
}
