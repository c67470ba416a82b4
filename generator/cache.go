package generator

import (
	"context"
	"log"
)

// ImageFetcher retrieves a signature image by its external file id.
type ImageFetcher interface {
	FetchImage(ctx context.Context, id string) ([]byte, error)
}

// SignatureCache memoizes signature downloads for the lifetime of one
// batch. It is owned by a single GenerateBatch call, never shared, so two
// concurrent batches cannot see each other's state. Failed fetches are
// cached as absent: the batch renders a blank signature area instead of
// aborting, and the same id is never re-fetched.
type SignatureCache struct {
	fetcher ImageFetcher
	images  map[string][]byte
	done    map[string]bool
}

func NewSignatureCache(fetcher ImageFetcher) *SignatureCache {
	return &SignatureCache{
		fetcher: fetcher,
		images:  make(map[string][]byte),
		done:    make(map[string]bool),
	}
}

// GetOrFetch returns the image for id, fetching it at most once per batch.
// A nil result means no image could be resolved.
func (s *SignatureCache) GetOrFetch(ctx context.Context, id string) []byte {
	if id == "" {
		return nil
	}
	if s.done[id] {
		return s.images[id]
	}
	// Marked before the fetch resolves: a re-entrant lookup for the same
	// key can never issue a second request.
	s.done[id] = true

	if s.fetcher == nil {
		return nil
	}
	data, err := s.fetcher.FetchImage(ctx, id)
	if err != nil {
		log.Printf("Signature %s could not be fetched, rendering blank: %v", id, err)
		return nil
	}
	s.images[id] = data
	return data
}
