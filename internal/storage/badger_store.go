package storage

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"
)

const levelKeyPrefix = "level/"

// LevelKey возвращает ключ снимка мира с заданными размерами
func LevelKey(width, height, depth int) string {
	return fmt.Sprintf("%s%dx%dx%d", levelKeyPrefix, width, height, depth)
}

// BadgerStore хранит снимки миров в BadgerDB, по ключу на набор размеров.
// Значение - сжатый zstd сырой дамп блоков.
type BadgerStore struct {
	db      *badger.DB
	dbPath  string
	key     []byte
	enc     *zstd.Encoder
	dec     *zstd.Decoder
	mutex   sync.RWMutex
	isReady bool
}

// NewBadgerStore открывает (или создаёт) БД в каталоге dbPath
func NewBadgerStore(dbPath string, width, height, depth int) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, fmt.Errorf("не удалось создать zstd decoder: %w", err)
	}

	return &BadgerStore{
		db:      db,
		dbPath:  dbPath,
		key:     []byte(LevelKey(width, height, depth)),
		enc:     enc,
		dec:     dec,
		isReady: true,
	}, nil
}

// Key возвращает ключ текущего мира
func (bs *BadgerStore) Key() string { return string(bs.key) }

// Close закрывает хранилище данных
func (bs *BadgerStore) Close() error {
	bs.mutex.Lock()
	defer bs.mutex.Unlock()

	if !bs.isReady {
		return nil
	}

	bs.isReady = false
	bs.enc.Close()
	bs.dec.Close()
	return bs.db.Close()
}

// Save сжимает дамп и записывает его под ключом мира
func (bs *BadgerStore) Save(src []byte) error {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	if !bs.isReady {
		return ErrClosed
	}

	data := bs.enc.EncodeAll(src, make([]byte, 0, len(src)/4))
	err := bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bs.key, data)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}
	return nil
}

// Load читает снимок мира в dst
func (bs *BadgerStore) Load(dst []byte) error {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	if !bs.isReady {
		return ErrClosed
	}

	var raw []byte
	err := bs.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(bs.key)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}

	data, err := bs.dec.DecodeAll(raw, make([]byte, 0, len(dst)))
	if err != nil {
		return fmt.Errorf("повреждённый снимок %s: %w", bs.key, err)
	}
	if len(data) != len(dst) {
		return ErrSizeMismatch
	}
	copy(dst, data)
	return nil
}

// Levels перечисляет ключи всех сохранённых миров
func (bs *BadgerStore) Levels() ([]string, error) {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	if !bs.isReady {
		return nil, ErrClosed
	}

	var keys []string
	err := bs.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(levelKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().KeyCopy(nil))
			if strings.HasPrefix(key, levelKeyPrefix) {
				keys = append(keys, key)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка обхода BadgerDB: %w", err)
	}
	return keys, nil
}
