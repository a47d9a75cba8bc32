package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/askdocs/core"
	"github.com/poiesic/askdocs/storage"
)

// QAResultRepository implements storage.QAResultRepository for BadgerDB.
type QAResultRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.QAResultRepository = (*QAResultRepository)(nil)

// NewQAResultRepository creates a new QAResultRepository.
func NewQAResultRepository(backend *Backend) (*QAResultRepository, error) {
	idSeq, err := backend.GetSequence(qaResultSeqPfx)
	if err != nil {
		return nil, err
	}

	return &QAResultRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *QAResultRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *QAResultRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddQAResult persists a question/answer record.
// The result is validated before anything is written.
func (r *QAResultRepository) AddQAResult(ctx context.Context, result *core.QAResult) (*core.QAResult, error) {
	if err := core.ValidateQAResult(result); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = r.idSeq.Next()
			if err != nil {
				return err
			}
		}
		result.Id = core.ID(nextID)

		if result.CreatedAt.IsZero() {
			result.CreatedAt = time.Now().UTC()
		}

		// Store primary record
		key := makeQAResultKey(result.Id)
		value := storage.MarshalQAResult(result)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Update date index
		dateKey := makeQAResultDateKey(result.CreatedAt, result.Id)
		if err := tx.Set(dateKey, storage.MarshalID(result.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return result, err
}

// GetQAResult retrieves a single QA result by ID.
func (r *QAResultRepository) GetQAResult(ctx context.Context, id core.ID) (*core.QAResult, error) {
	var result *core.QAResult
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeQAResultKey(id)
		var err error
		result, err = r.readQAResult(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRecentQAResults retrieves the N most recent QA results, newest first.
func (r *QAResultRepository) GetRecentQAResults(ctx context.Context, limit int) ([]*core.QAResult, error) {
	var results []*core.QAResult
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index
		startKey := makeQAResultDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC), ^core.ID(0))

		prefix := []byte(qaResultDatePfx + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var resultID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				resultID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			result, err := r.readQAResult(tx, makeQAResultKey(resultID))
			if err != nil {
				return err
			}
			if result != nil {
				results = append(results, result)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// GetQAResultsByDateRange retrieves QA results created between start and end, oldest first.
func (r *QAResultRepository) GetQAResultsByDateRange(ctx context.Context, start, end time.Time) ([]*core.QAResult, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.QAResult
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialQAResultDateKey(start)
		endKey := makePartialQAResultDateKey(end)

		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) > 0 {
				break
			}

			var resultID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				resultID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			result, err := r.readQAResult(tx, makeQAResultKey(resultID))
			if err != nil {
				return err
			}
			if result != nil {
				results = append(results, result)
			}
		}
		return nil
	}, false)

	return results, err
}

// readQAResult reads a QA result from the transaction.
func (r *QAResultRepository) readQAResult(tx *badger.Txn, key []byte) (*core.QAResult, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var result *core.QAResult
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		result, unmarshalErr = storage.UnmarshalQAResult(val)
		return unmarshalErr
	})
	return result, err
}
