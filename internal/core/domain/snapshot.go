package domain

import (
	"encoding/json"
	"fmt"
)

// EncodeSnapshot renders the durable storage record: a JSON array of plans.
func EncodeSnapshot(plans []ConcertPlan) ([]byte, error) {
	if plans == nil {
		plans = []ConcertPlan{}
	}
	return json.Marshal(plans)
}

// DecodeSnapshot parses a durable storage record. Anything other than a JSON
// array of plans is ErrPersistenceLoad.
func DecodeSnapshot(data []byte) ([]ConcertPlan, error) {
	var plans []ConcertPlan
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceLoad, err)
	}

	for i := range plans {
		plans[i].Normalize(nil)
	}

	return plans, nil
}
