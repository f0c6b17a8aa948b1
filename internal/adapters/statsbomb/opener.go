package statsbomb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

// opener returns the raw JSON document stored at a slash-separated path of
// the open-data layout, e.g. "events/3942819.json".
type opener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type httpOpener struct {
	base   string
	client *http.Client
}

func (o *httpOpener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.base+"/"+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUpstream, path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUpstream, path, err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s: status %d", ErrUpstream, path, resp.StatusCode)
	}
	return resp.Body, nil
}

type dirOpener struct {
	root string
}

func (o *dirOpener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUpstream, path, err)
	}
	f, err := os.Open(filepath.Join(o.root, filepath.FromSlash(path)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrUpstream, path, err)
	}
	return f, nil
}
