package bench

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/Juules32/sisyphus32-sub000/internal/util"
)

// Store is a small badger-backed key/value store for perft and NPS
// reports, keyed by FEN+depth (perft) or FEN alone (nps) so that
// repeated runs against the same position can be compared across
// invocations of the bench harness.
type Store struct {
	db *badger.DB
}

// OpenStore opens (creating if necessary) a badger store rooted at folder.
func OpenStore(folder string) (*Store, error) {
	dir, err := util.ResolveCreateFolder(folder)
	if err != nil {
		return nil, err
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying badger database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func perftKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("perft|%s|%d", fen, depth))
}

func npsKey(fen string) []byte {
	return []byte(fmt.Sprintf("nps|%s", fen))
}

// SavePerft persists a perft report under its fen+depth key.
func (s *Store) SavePerft(fen string, depth int, r *Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(fen, depth), data)
	})
}

// LoadPerft loads a previously stored perft report, if any.
func (s *Store) LoadPerft(fen string, depth int) (*Report, error) {
	var r Report
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(fen, depth))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveNps persists a nodes-per-second report under its fen key.
func (s *Store) SaveNps(fen string, r *Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(npsKey(fen), data)
	})
}

// LoadNps loads a previously stored nodes-per-second report, if any.
func (s *Store) LoadNps(fen string) (*Report, error) {
	var r Report
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(npsKey(fen))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}
