package provenance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/origintrace/internal/pkg/types"
)

// ErrMalformedHistory is returned when a serialized history is not a JSON
// object of string transaction hashes to string addresses.
var ErrMalformedHistory = errors.New("malformed ownership history")

// OwnershipEvent records that the asset moved to Address in transaction TxHash.
type OwnershipEvent struct {
	TxHash  string `json:"tx_hash" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// History is the ordered mapping of transaction hash to owner address that
// seeds chain building. Insertion order must match ledger chronology; the
// chain builder never re-sorts it.
//
// The zero value is an empty history ready to use.
type History struct {
	events   []OwnershipEvent
	position map[string]int
}

// NewHistory creates a history from events, in order. Later events with a
// repeated transaction hash overwrite the address of the earlier one.
func NewHistory(events ...OwnershipEvent) History {
	var h History
	for _, e := range events {
		h.Put(e.TxHash, e.Address)
	}
	return h
}

// Put records address as the owner after txHash.
//
// A transaction hash that is already present keeps its position and has its
// address replaced; the ledger may report several outputs holding the asset in
// one transaction and the last one seen wins.
func (h *History) Put(txHash, address string) {
	if h.position == nil {
		h.position = make(map[string]int)
	}

	if i, ok := h.position[txHash]; ok {
		h.events[i].Address = address
		return
	}

	h.position[txHash] = len(h.events)
	h.events = append(h.events, OwnershipEvent{TxHash: txHash, Address: address})
}

// Get returns the owner recorded for txHash.
func (h History) Get(txHash string) (string, bool) {
	i, ok := h.position[txHash]
	if !ok {
		return "", false
	}
	return h.events[i].Address, true
}

// Has reports whether txHash is already part of the history.
func (h History) Has(txHash string) bool {
	_, ok := h.position[txHash]
	return ok
}

// Len returns the number of recorded transactions.
func (h History) Len() int {
	return len(h.events)
}

// Events returns a copy of the recorded events in chronological order.
func (h History) Events() []OwnershipEvent {
	events := make([]OwnershipEvent, len(h.events))
	copy(events, h.events)
	return events
}

// Addresses returns every distinct owner address in first-seen order.
func (h History) Addresses() []string {
	set := types.NewOrderedSet[string]()
	for _, e := range h.events {
		set.Add(e.Address)
	}
	return set.ToSlice()
}

// MarshalJSON encodes the history as a single JSON object keyed by transaction
// hash, preserving chronological key order.
func (h History) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range h.events {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.TxHash)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(e.Address)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of transaction hash to address, keeping
// the key order of the document as chronological order.
func (h *History) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedHistory, err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected object", ErrMalformedHistory)
	}

	var decoded History
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedHistory, err)
		}

		txHash, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%w: expected transaction hash key", ErrMalformedHistory)
		}

		var address string
		if err := dec.Decode(&address); err != nil {
			return fmt.Errorf("%w: address for %s: %w", ErrMalformedHistory, txHash, err)
		}

		decoded.Put(txHash, address)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedHistory, err)
	}

	*h = decoded
	return nil
}
