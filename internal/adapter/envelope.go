package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/swarm-stamp-gateway/models"
)

// batchWrapperKeys is the priority-ordered list of object keys under which
// node versions have been observed to wrap the batch array. The first key
// whose value is an array wins.
var batchWrapperKeys = []string{"stamps", "batches"}

// normalizeBatchEnvelope erases the node's envelope ambiguity and returns a
// uniform ordered slice of raw stamp records.
//
// The decode is a tagged-variant attempt: first the body is tried as a bare
// JSON array; failing that, as an object probed for each wrapper key in
// [batchWrapperKeys]. Anything else is a contract violation reported as
// [ErrMalformedResponse]. Upstream ordering is preserved and individual
// records are passed through untouched.
func normalizeBatchEnvelope(body []byte) ([]models.RawStamp, error) {
	var records []models.RawStamp
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: body is neither an array nor an object: %v", ErrMalformedResponse, err)
	}

	for _, key := range batchWrapperKeys {
		wrapped, present := envelope[key]
		if !present {
			continue
		}
		if err := json.Unmarshal(wrapped, &records); err != nil {
			return nil, fmt.Errorf("%w: %q field is not an array", ErrMalformedResponse, key)
		}
		return records, nil
	}

	return nil, fmt.Errorf("%w: no recognized batch list in response object", ErrMalformedResponse)
}
