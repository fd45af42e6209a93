// Package repositories persists prediction results so a long-lived process
// can serve lookups and search without re-scoring. BadgerDB is the source of
// truth; a Bluge index over the normalized titles powers full-text search.
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/index"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"title-lab/classifier"
)

type IPredictionRepository interface {
	Store(record PredictionRecord) error
	Flush() error
	List(limit int) ([]PredictionRecord, error)
	Search(ctx context.Context, query, label string, limit int) ([]PredictionRecord, error)
}

// PredictionRecord is the persisted form of one prediction.
type PredictionRecord struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	NormalizedTitle string    `json:"normalized_title"`
	Probability     float64   `json:"probability"`
	Label           int       `json:"label"`
	At              time.Time `json:"at"`
}

// NewPredictionRecord stamps a prediction for storage.
func NewPredictionRecord(p classifier.Prediction, at time.Time) PredictionRecord {
	return PredictionRecord{
		ID:              uuid.New(),
		Title:           p.Title,
		NormalizedTitle: p.NormalizedTitle,
		Probability:     p.Probability,
		Label:           p.Label,
		At:              at,
	}
}

type PredictionRepository struct {
	db    *badger.DB
	index *bluge.Writer
	batch *index.Batch
	log   *slog.Logger
}

func NewPredictionRepository(db *badger.DB, index *bluge.Writer, log *slog.Logger) *PredictionRepository {
	return &PredictionRepository{db: db, index: index, log: log}
}

// Store persists a record in BadgerDB and queues it for indexing. The key
// is "pred:{timestamp_padded}:{uuid}": 19-digit zero padding keeps keys in
// chronological order lexicographically, and the UUID disambiguates two
// records stamped in the same nanosecond.
func (r *PredictionRepository) Store(record PredictionRecord) error {
	key := predictionKey(record)
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), payload)
	}); err != nil {
		return err
	}

	doc := bluge.NewDocument(key).
		AddField(bluge.NewTextField("title", record.Title).StoreValue()).
		AddField(bluge.NewTextField("normalized_title", record.NormalizedTitle).StoreValue()).
		AddField(bluge.NewKeywordField("label", strconv.Itoa(record.Label)).StoreValue()).
		AddField(bluge.NewNumericField("probability", record.Probability).StoreValue())

	if r.batch == nil {
		r.batch = bluge.NewBatch()
	}
	r.batch.Update(doc.ID(), doc)
	return nil
}

// Flush commits the queued index updates. Search only sees records stored
// before the last Flush.
func (r *PredictionRepository) Flush() error {
	if r.batch == nil {
		return nil
	}
	if err := r.index.Batch(r.batch); err != nil {
		return err
	}
	r.batch = nil
	return nil
}

// List returns up to limit records in chronological order.
func (r *PredictionRepository) List(limit int) ([]PredictionRecord, error) {
	var records []PredictionRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("pred:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				var record PredictionRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

// Search matches the query against normalized titles, optionally narrowed
// to one label ("" means both), and resolves the hits back through
// BadgerDB, so callers always see the full stored record.
func (r *PredictionRepository) Search(ctx context.Context, query, label string, limit int) ([]PredictionRecord, error) {
	reader, err := r.index.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()

	var match bluge.Query = bluge.NewMatchQuery(query).SetField("normalized_title")
	if label != "" {
		match = bluge.NewBooleanQuery().
			AddMust(match).
			AddMust(bluge.NewTermQuery(label).SetField("label"))
	}
	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, match))
	if err != nil {
		return nil, err
	}

	var keys []string
	for {
		next, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				keys = append(keys, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}

	records := make([]PredictionRecord, 0, len(keys))
	err = r.db.View(func(txn *badger.Txn) error {
		for _, key := range keys {
			item, err := txn.Get([]byte(key))
			if err != nil {
				r.log.Warn("Indexed prediction missing from store", "key", key)
				continue
			}
			err = item.Value(func(val []byte) error {
				var record PredictionRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

func predictionKey(record PredictionRecord) string {
	return fmt.Sprintf("pred:%019d:%s", record.At.UnixNano(), record.ID)
}
