package client

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/Piyush-Dabare/vikas/customerrors"
	"github.com/Piyush-Dabare/vikas/middleware"

	"github.com/go-resty/resty/v2"
)

// DatasetClient fetches the raw CSV document. http and https locations go
// over the network; file:// URLs and bare paths are read from disk.
type DatasetClient struct {
	client *resty.Client
}

func NewDatasetClient(timeout time.Duration) *DatasetClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":          "text/csv, text/plain, */*",
			"Accept-Encoding": "gzip, br",
		})

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &DatasetClient{client: client}
}

func (d *DatasetClient) Fetch(ctx context.Context, location string) ([]byte, error) {
	if path, ok := localPath(location); ok {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", customerrors.ErrSourceUnavailable, err)
		}
		return raw, nil
	}

	resp, err := d.client.R().
		SetContext(ctx).
		Get(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", customerrors.ErrSourceUnavailable, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %s answered with status %d",
			customerrors.ErrSourceUnavailable, location, resp.StatusCode())
	}

	return resp.Body(), nil
}

func localPath(location string) (string, bool) {
	u, err := url.Parse(location)
	if err != nil {
		return location, true
	}
	switch u.Scheme {
	case "http", "https":
		return "", false
	case "file":
		return u.Path, true
	case "":
		return location, true
	default:
		return "", false
	}
}
