// Package redis caches the NGO directory listing. The directory changes
// rarely and is read on every donor-facing page, so a short-TTL read-through
// cache takes the repeated listing off the database. Cache failures degrade
// to the underlying store, never to an error.
package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sharebite/internal/core/application/usecases/queries"
	"sharebite/internal/core/domain/model/kernel"

	"github.com/go-redis/redis/v8"
)

const directoryKey = "sharebite:ngos:directory"

// NgoListHandler is the read-side contract being decorated.
type NgoListHandler interface {
	Handle(ctx context.Context, query queries.GetAllNgosQuery) ([]queries.NgoQueryResponse, error)
}

// CachedNgoListHandler decorates the directory listing with a read-through
// Redis cache.
type CachedNgoListHandler struct {
	inner  NgoListHandler
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedNgoListHandler wraps inner with a Redis cache holding the listing
// for ttl.
func NewCachedNgoListHandler(
	inner NgoListHandler,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedNgoListHandler {
	return &CachedNgoListHandler{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "ngo-cache"),
	}
}

// cachedNgo is the cache wire format. The read model carries value objects
// with unexported fields, so the cache keeps its own flat shape.
type cachedNgo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	HasCoordinates bool    `json:"hasCoordinates"`
	Address        string  `json:"address"`
	Verified       bool    `json:"verified"`
}

// Handle returns the cached listing when present, otherwise reads through to
// the inner handler and stores the result.
func (h *CachedNgoListHandler) Handle(
	ctx context.Context,
	query queries.GetAllNgosQuery,
) ([]queries.NgoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	raw, err := h.client.Get(ctx, directoryKey).Bytes()
	if err == nil {
		ngos, decodeErr := decodeDirectory(raw)
		if decodeErr == nil {
			return ngos, nil
		}
		h.logger.Warn("dropping undecodable directory cache entry", "error", decodeErr)
	} else if err != redis.Nil {
		h.logger.Warn("directory cache read failed", "error", err)
	}

	ngos, err := h.inner.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	if raw, err = encodeDirectory(ngos); err == nil {
		if setErr := h.client.Set(ctx, directoryKey, raw, h.ttl).Err(); setErr != nil {
			h.logger.Warn("directory cache write failed", "error", setErr)
		}
	}

	return ngos, nil
}

// Invalidate drops the cached listing. Called after a registration so the
// new NGO shows up on the next read.
func (h *CachedNgoListHandler) Invalidate(ctx context.Context) {
	if err := h.client.Del(ctx, directoryKey).Err(); err != nil {
		h.logger.Warn("directory cache invalidation failed", "error", err)
	}
}

func encodeDirectory(ngos []queries.NgoQueryResponse) ([]byte, error) {
	entries := make([]cachedNgo, 0, len(ngos))
	for _, n := range ngos {
		entries = append(entries, cachedNgo{
			ID:             n.ID.String(),
			Name:           n.Name,
			Email:          n.Email,
			Latitude:       n.Location.Latitude(),
			Longitude:      n.Location.Longitude(),
			HasCoordinates: n.Location.HasCoordinates(),
			Address:        n.Location.Address(),
			Verified:       n.Verified,
		})
	}
	return json.Marshal(entries)
}

func decodeDirectory(raw []byte) ([]queries.NgoQueryResponse, error) {
	var entries []cachedNgo
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	ngos := make([]queries.NgoQueryResponse, 0, len(entries))
	for _, entry := range entries {
		id, err := kernel.UUIDFromString(entry.ID)
		if err != nil {
			return nil, err
		}

		var location kernel.GeoPoint
		if entry.HasCoordinates {
			if location, err = kernel.NewGeoPoint(entry.Latitude, entry.Longitude, entry.Address); err != nil {
				return nil, err
			}
		} else {
			location = kernel.NewAddressGeoPoint(entry.Address)
		}

		ngos = append(ngos, queries.NgoQueryResponse{
			ID:       id,
			Name:     entry.Name,
			Email:    entry.Email,
			Location: location,
			Verified: entry.Verified,
		})
	}

	return ngos, nil
}
