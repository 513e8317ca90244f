package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/swarm-stamp-gateway/internal/adapter"
	"github.com/MKhiriev/swarm-stamp-gateway/internal/logger"
	"github.com/MKhiriev/swarm-stamp-gateway/models"
)

// stampService is the concrete implementation of StampService.
// It is stateless between calls: every lookup re-fetches the full batch
// listing from the node and re-scans it, so concurrent requests never share
// mutable state.
type stampService struct {
	// nodeAdapter is the outbound transport used to reach the Swarm node.
	nodeAdapter adapter.NodeAdapter

	// now supplies the current instant for expiration derivation.
	// Injected so tests can pin a fixed clock.
	now func() time.Time

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewStampService constructs a StampService backed by nodeAdapter.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewStampService(nodeAdapter adapter.NodeAdapter, logger *logger.Logger) StampService {
	return &stampService{
		nodeAdapter: nodeAdapter,
		now:         time.Now,
		logger:      logger,
	}
}

// GetStamp implements [StampService].
//
// The pipeline is fetch → resolve → compute → build: the node's full batch
// listing is fetched once, scanned for the first record whose batchID equals
// batchID, the expiration instant is derived from the record's TTL, and the
// validated [models.StampDetails] is assembled. Failures at any stage are
// wrapped and propagated; nothing is retried here.
func (s *stampService) GetStamp(ctx context.Context, batchID string) (models.StampDetails, error) {
	log := logger.FromContext(ctx)

	records, err := s.nodeAdapter.FetchAllStamps(ctx)
	if err != nil {
		return models.StampDetails{}, fmt.Errorf("fetch stamps: %w", err)
	}

	raw, err := resolveStamp(records, batchID)
	if err != nil {
		log.Debug().Str("batch_id", batchID).Int("records", len(records)).Msg("batch id not present in node listing")
		return models.StampDetails{}, err
	}

	ttl, ok := models.StampTTL(raw)
	expiresAt := computeExpiration(ttl, ok, s.now())

	details, err := models.BuildStampDetails(raw, expiresAt)
	if err != nil {
		log.Err(err).Str("batch_id", batchID).Msg("matched record failed validation")
		return models.StampDetails{}, fmt.Errorf("build stamp record: %w", err)
	}

	return details, nil
}

// resolveStamp scans records front to back for the first one whose batchID
// field equals batchID (exact, case-sensitive). The node API offers no
// server-side filter, so the scan is O(n) over the full listing; with no
// persistent store there is nothing to index. If duplicates occur upstream,
// the first match in upstream order wins. Records without a string batchID
// never match.
func resolveStamp(records []models.RawStamp, batchID string) (models.RawStamp, error) {
	for _, record := range records {
		id, ok := models.StampBatchID(record)
		if ok && id == batchID {
			return record, nil
		}
	}

	return nil, fmt.Errorf("%w: batch_id=%s", ErrStampNotFound, batchID)
}
