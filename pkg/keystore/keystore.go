package keystore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"droscher.com/BeanJournal/configs"
)

// PerplexityKey is the fixed name the enrichment API key is stored under.
const PerplexityKey = "perplexity-api-key"

var ErrKeyStore = errors.New("key store failure")

// Store persists the single caller supplied API key between runs.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, key string) error
}

type BadgerStore struct {
	db     *badger.DB
	name   []byte
	logger *zap.Logger
}

func Open(conf configs.KeyStore, logger *zap.Logger) (*BadgerStore, error) {
	options := badger.DefaultOptions(conf.Dir).WithLogger(badgerLogger{logger.Sugar()})

	if conf.InMemory {
		options = options.WithDir("").WithValueDir("").WithInMemory(true)
	}

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrKeyStore, conf.Dir, err)
	}

	logger.Info("opened key store", zap.String("dir", conf.Dir), zap.Bool("inMemory", conf.InMemory))

	return &BadgerStore{db: db, name: []byte(PerplexityKey), logger: logger}, nil
}

// Load returns the stored key, or an empty string when none has been saved.
func (s *BadgerStore) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var key string

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.name)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}

		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			key = string(val)

			return nil
		})
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyStore, err)
	}

	return key, nil
}

// Save stores the key. An empty key removes the stored one.
func (s *BadgerStore) Save(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if key == "" {
			return txn.Delete(s.name)
		}

		return txn.Set(s.name, []byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyStore, err)
	}

	s.logger.Debug("saved api key", zap.Bool("configured", key != ""))

	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// badgerLogger routes badger's own logging through zap.
type badgerLogger struct {
	sugar *zap.SugaredLogger
}

func (l badgerLogger) Errorf(format string, args ...any)   { l.sugar.Errorf(format, args...) }
func (l badgerLogger) Warningf(format string, args ...any) { l.sugar.Warnf(format, args...) }
func (l badgerLogger) Infof(format string, args ...any)    { l.sugar.Debugf(format, args...) }
func (l badgerLogger) Debugf(format string, args ...any)   { l.sugar.Debugf(format, args...) }
