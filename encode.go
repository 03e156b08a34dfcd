package bondplan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// RecordType discriminates the JSONL record kinds of the store file.
type RecordType string

const (
	RecordProfile RecordType = "profile"
	RecordAsset   RecordType = "asset"
	RecordEvent   RecordType = "event"
)

// Store is the in-memory form of the planner's single data file: one user
// profile plus their asset and liquidity-event records.
type Store struct {
	Profile *User
	Assets  []FixedIncomeAsset
	Events  []LiquidityEvent
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// AddAsset validates and appends an asset record.
func (s *Store) AddAsset(a FixedIncomeAsset) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.Assets = append(s.Assets, a)
	return nil
}

// AddEvent validates and appends a liquidity-event record.
func (s *Store) AddEvent(e LiquidityEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.Events = append(s.Events, e)
	return nil
}

// RemoveAsset deletes the asset with the given id. It reports whether a
// record was actually removed.
func (s *Store) RemoveAsset(id string) bool {
	for i, a := range s.Assets {
		if a.ID == id {
			s.Assets = append(s.Assets[:i], s.Assets[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveEvent deletes the event with the given id. It reports whether a
// record was actually removed.
func (s *Store) RemoveEvent(id string) bool {
	for i, e := range s.Events {
		if e.ID == id {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			return true
		}
	}
	return false
}

// DecodeStore decodes a stream of JSONL records into a Store. Unknown record
// kinds are an error, empty lines are skipped.
func DecodeStore(r io.Reader) (*Store, error) {
	store := NewStore()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(raw, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record on line %d: %w", line, err)
		}

		switch identifier.Record {
		case RecordProfile:
			var u User
			if err := json.Unmarshal(raw, &u); err != nil {
				return nil, fmt.Errorf("invalid profile on line %d: %w", line, err)
			}
			store.Profile = &u
		case RecordAsset:
			var a FixedIncomeAsset
			if err := json.Unmarshal(raw, &a); err != nil {
				return nil, fmt.Errorf("invalid asset on line %d: %w", line, err)
			}
			store.Assets = append(store.Assets, a)
		case RecordEvent:
			var e LiquidityEvent
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("invalid event on line %d: %w", line, err)
			}
			store.Events = append(store.Events, e)
		default:
			return nil, fmt.Errorf("unknown record kind %q on line %d", identifier.Record, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return store, nil
}

// EncodeRecord writes one record as a single JSONL line with its "record"
// discriminator first. Used both by the canonical encoder and by append-mode
// additions.
func EncodeRecord(w io.Writer, kind RecordType, rec any) error {
	var jw jsonObjectWriter
	jw.Append("record", kind)
	jw.EmbedFrom(rec)
	b, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", kind, err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeStore writes the store in canonical form: profile first, assets
// sorted by maturity then name, events sorted by date then description.
func EncodeStore(w io.Writer, s *Store) error {
	if s.Profile != nil {
		if err := EncodeRecord(w, RecordProfile, s.Profile); err != nil {
			return err
		}
	}

	assets := make([]FixedIncomeAsset, len(s.Assets))
	copy(assets, s.Assets)
	sort.SliceStable(assets, func(i, j int) bool {
		if assets[i].Maturity != assets[j].Maturity {
			return assets[i].Maturity.Before(assets[j].Maturity)
		}
		return assets[i].Name < assets[j].Name
	})
	for _, a := range assets {
		if err := EncodeRecord(w, RecordAsset, a); err != nil {
			return err
		}
	}

	events := make([]LiquidityEvent, len(s.Events))
	copy(events, s.Events)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Description < events[j].Description
	})
	for _, e := range events {
		if err := EncodeRecord(w, RecordEvent, e); err != nil {
			return err
		}
	}
	return nil
}
