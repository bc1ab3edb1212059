package remote

import (
	"context"
	"log/slog"

	"github.com/sce-tools/cardex/internal/save"
)

// FragmentClient resolves remote object-graph fragments. Fragments are
// memoized by URL so a fragment referenced from several places in the graph
// is fetched once.
type FragmentClient struct {
	client *Client
	cache  map[string]*save.Fragment
}

// NewFragmentClient creates a fragment resolver backed by the given HTTP
// client.
func NewFragmentClient(client *Client) *FragmentClient {
	return &FragmentClient{
		client: client,
		cache:  make(map[string]*save.Fragment),
	}
}

// Resolve fetches and parses the fragment at url, reusing a previously
// fetched copy when available.
func (f *FragmentClient) Resolve(ctx context.Context, url string) (*save.Fragment, error) {
	if frag, ok := f.cache[url]; ok {
		return frag, nil
	}

	slog.Debug("Fetching fragment", "url", url)

	var frag save.Fragment
	if err := f.client.FetchJSON(ctx, url, &frag); err != nil {
		return nil, err
	}

	f.cache[url] = &frag
	return &frag, nil
}
