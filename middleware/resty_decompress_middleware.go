package middleware

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

var gzipMagic = []byte{0x1f, 0x8b}

// DecompressMiddleware decodes brotli and gzip response bodies in place.
// Resty already inflates gzip on its own, so a gzip body is only decoded
// when it still starts with the gzip magic bytes.
func DecompressMiddleware(c *resty.Client, resp *resty.Response) error {
	encoding := resp.Header().Get("Content-Encoding")
	if encoding == "" || len(resp.Body()) == 0 {
		return nil
	}

	var reader io.ReadCloser
	var err error

	switch encoding {
	case "br":
		reader = io.NopCloser(brotli.NewReader(bytes.NewReader(resp.Body())))
	case "gzip":
		if !bytes.HasPrefix(resp.Body(), gzipMagic) {
			return nil
		}
		reader, err = gzip.NewReader(bytes.NewReader(resp.Body()))
		if err != nil {
			return err
		}
	default:
		return nil
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	resp.SetBody(decompressed)
	return nil
}
