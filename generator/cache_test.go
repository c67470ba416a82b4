package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingFetcher implements ImageFetcher for tests.
type countingFetcher struct {
	calls int
	data  []byte
	err   error
}

func (f *countingFetcher) FetchImage(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func TestSignatureCacheFetchesOnce(t *testing.T) {
	fetcher := &countingFetcher{data: []byte{0x89, 0x50}}
	cache := NewSignatureCache(fetcher)

	first := cache.GetOrFetch(context.Background(), "sig1")
	second := cache.GetOrFetch(context.Background(), "sig1")

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, first, second)
	assert.NotNil(t, first)
}

func TestSignatureCacheDistinctKeys(t *testing.T) {
	fetcher := &countingFetcher{data: []byte{1}}
	cache := NewSignatureCache(fetcher)

	cache.GetOrFetch(context.Background(), "sig1")
	cache.GetOrFetch(context.Background(), "sig2")

	assert.Equal(t, 2, fetcher.calls)
}

func TestSignatureCacheCachesFailure(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("proxy unreachable")}
	cache := NewSignatureCache(fetcher)

	assert.Nil(t, cache.GetOrFetch(context.Background(), "sig1"))
	assert.Nil(t, cache.GetOrFetch(context.Background(), "sig1"))
	assert.Equal(t, 1, fetcher.calls, "a failed fetch is cached as absent")
}

func TestSignatureCacheEmptyID(t *testing.T) {
	fetcher := &countingFetcher{data: []byte{1}}
	cache := NewSignatureCache(fetcher)

	assert.Nil(t, cache.GetOrFetch(context.Background(), ""))
	assert.Zero(t, fetcher.calls)
}

func TestSignatureCacheNilFetcher(t *testing.T) {
	cache := NewSignatureCache(nil)
	assert.Nil(t, cache.GetOrFetch(context.Background(), "sig1"))
}
