package storage

import (
	"errors"
	"fmt"

	"github.com/annel0/voxel-sandbox/internal/logging"
)

var (
	// ErrNotFound - сохранённого мира нет.
	ErrNotFound = errors.New("сохранённый мир не найден")
	// ErrSizeMismatch - длина сохранённого дампа не совпадает с размерами мира.
	ErrSizeMismatch = errors.New("размер сохранённого мира не совпадает")
	// ErrClosed - хранилище уже закрыто.
	ErrClosed = errors.New("хранилище закрыто")
)

const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// WorldStore хранит сырой дамп блоков мира.
type WorldStore interface {
	// Load заполняет dst целиком или возвращает ошибку, не оставляя частичных данных значимыми.
	Load(dst []byte) error
	Save(src []byte) error
	Close() error
}

// Options описывает выбор и параметры бэкенда.
type Options struct {
	Backend    string // file | badger
	FilePath   string // путь к level.dat для file
	BadgerPath string // каталог БД для badger
	Width      int
	Height     int
	Depth      int
}

// Open открывает хранилище мира по опциям.
func Open(opts Options) (WorldStore, error) {
	switch opts.Backend {
	case "", BackendFile:
		logging.GetStorageLogger().Info("💾 Файловое хранилище мира: %s", opts.FilePath)
		return NewFileStore(opts.FilePath), nil
	case BackendBadger:
		store, err := NewBadgerStore(opts.BadgerPath, opts.Width, opts.Height, opts.Depth)
		if err != nil {
			return nil, err
		}
		logging.GetStorageLogger().Info("💾 BadgerDB хранилище мира: %s (ключ %s)", opts.BadgerPath, store.Key())
		return store, nil
	default:
		return nil, fmt.Errorf("неизвестный бэкенд хранилища %q", opts.Backend)
	}
}
