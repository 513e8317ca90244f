package models

import (
	"encoding/json"
	"time"
)

// StampDetails is the processed postage stamp information served by the
// gateway. All fields except BatchID mirror the node's batch record as-is;
// ExpiresAt is derived by the gateway and never trusted from upstream input.
type StampDetails struct {
	// BatchID is the unique identifier of the stamp batch on the node.
	// It is the sole key used for resolution and is required.
	BatchID string `json:"batchID"`

	// Utilization is the node's opaque usage counter for the batch.
	Utilization int `json:"utilization"`

	// Usable reports whether the node considers the batch usable for uploads.
	Usable bool `json:"usable"`

	// Label is the optional human-readable label assigned to the batch.
	Label string `json:"label,omitempty"`

	// Depth is the batch depth (log2 of the number of chunks it can pay for).
	Depth int `json:"depth"`

	// Amount is the per-chunk balance of the batch. Kept as a string because
	// the node reports it in wei-scale integers that overflow int64.
	Amount string `json:"amount,omitempty"`

	// BucketDepth is the collision bucket depth of the batch.
	BucketDepth int `json:"bucketDepth"`

	// BlockNumber is the block at which the batch was created.
	BlockNumber int `json:"blockNumber"`

	// ImmutableFlag reports whether the batch is immutable.
	ImmutableFlag bool `json:"immutableFlag"`

	// BatchTTL is the remaining lifetime in seconds as reported by the node
	// at fetch time. A negative or missing value means expired/unknown.
	BatchTTL int64 `json:"batchTTL"`

	// Exists reports whether the batch exists on the node.
	Exists bool `json:"exists"`

	// ExpiresAt is the absolute expiration instant computed by the gateway
	// from BatchTTL. Omitted when the TTL was absent or negative.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// BuildStampDetails assembles a StampDetails from a raw upstream record.
//
// Field handling is best-effort: a missing or wrong-typed optional field is
// coerced to its zero value rather than rejected, because the node's schema
// varies across versions and returning something useful beats strict
// rejection. The only hard requirement is batchID — if it is absent, empty,
// or not a string, BuildStampDetails returns [ErrMissingBatchID].
//
// expiresAt is the gateway-derived expiration instant; it is stored verbatim
// and may be nil.
func BuildStampDetails(raw RawStamp, expiresAt *time.Time) (StampDetails, error) {
	fields, err := stampFields(raw)
	if err != nil {
		return StampDetails{}, err
	}

	batchID, ok := stringField(fields, "batchID")
	if !ok || batchID == "" {
		return StampDetails{}, ErrMissingBatchID
	}

	details := StampDetails{
		BatchID:       batchID,
		Utilization:   intField(fields, "utilization"),
		Usable:        boolField(fields, "usable"),
		Depth:         intField(fields, "depth"),
		BucketDepth:   intField(fields, "bucketDepth"),
		BlockNumber:   intField(fields, "blockNumber"),
		ImmutableFlag: boolField(fields, "immutableFlag"),
		Exists:        boolField(fields, "exists"),
		ExpiresAt:     expiresAt,
	}
	details.Label, _ = stringField(fields, "label")
	details.Amount, _ = stringField(fields, "amount")
	details.BatchTTL, _ = StampTTL(raw)

	return details, nil
}

// StampTTL extracts the batchTTL field from a raw stamp record.
// The second return value is false when the field is absent or not an
// integer, so callers can tell a genuine zero TTL from a missing one.
func StampTTL(raw RawStamp) (int64, bool) {
	fields, err := stampFields(raw)
	if err != nil {
		return 0, false
	}

	value, present := fields["batchTTL"]
	if !present {
		return 0, false
	}

	var ttl int64
	if err := json.Unmarshal(value, &ttl); err != nil {
		return 0, false
	}
	return ttl, true
}

// StampBatchID extracts the batchID field from a raw stamp record.
// Returns false when the record is not a JSON object or the field is absent
// or not a string; such records can never match a lookup.
func StampBatchID(raw RawStamp) (string, bool) {
	fields, err := stampFields(raw)
	if err != nil {
		return "", false
	}
	return stringField(fields, "batchID")
}

func stampFields(raw RawStamp) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, ErrMissingBatchID
	}
	return fields, nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	value, present := fields[name]
	if !present {
		return "", false
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}

func intField(fields map[string]json.RawMessage, name string) int {
	value, present := fields[name]
	if !present {
		return 0
	}
	var n int
	if err := json.Unmarshal(value, &n); err != nil {
		return 0
	}
	return n
}

func boolField(fields map[string]json.RawMessage, name string) bool {
	value, present := fields[name]
	if !present {
		return false
	}
	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		return false
	}
	return b
}
