package models

import "encoding/json"

// RawStamp is a single stamp batch record exactly as the Swarm node returned
// it, before any field interpretation. The adapter produces an ordered slice
// of RawStamp values; the service layer resolves and builds typed
// [StampDetails] from them.
type RawStamp = json.RawMessage
