package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"randomcoffee/domain"

	"github.com/dgraph-io/badger/v4"
)

const roundKeyPrefix = "round:"

type IHistoryCache interface {
	Record(round domain.Round) error
	Rounds(since time.Time) ([]domain.Round, error)
}

// BadgerHistoryRepository keeps a local copy of announced rounds so the
// lookback query survives memory-channel truncation or transient API
// failures.
type BadgerHistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerHistoryRepository(db *badger.DB, log *slog.Logger) BadgerHistoryRepository {
	return BadgerHistoryRepository{db: db, log: log}
}

// Record persists one round.
// The key is formatted as "round:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding.
//  2. Prevent collisions if two rounds are announced at the same nanosecond.
func (r BadgerHistoryRepository) Record(round domain.Round) error {
	key := fmt.Sprintf("%s%019d:%s", roundKeyPrefix, round.At.UnixNano(), round.ID)
	value, err := json.Marshal(round)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Rounds lists cached rounds newer than since, newest first. Thanks to the
// padded timestamp in the key a reverse prefix scan walks rounds in
// reverse-chronological order, so the scan stops at the first round older
// than the window.
func (r BadgerHistoryRepository) Rounds(since time.Time) ([]domain.Round, error) {
	var rounds []domain.Round
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(roundKeyPrefix)
		// Seek past the newest possible key, then walk backwards.
		seekKey := append([]byte{}, prefix...)
		seekKey = append(seekKey, []byte("9999999999999999999:")...)

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			var round domain.Round
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &round)
			})
			if err != nil {
				return err
			}
			if round.At.Before(since) {
				break
			}
			rounds = append(rounds, round)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Debug("Rounds loaded from local cache", "rounds", len(rounds))
	return rounds, nil
}
