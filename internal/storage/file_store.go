package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// FileStore хранит мир одним gzip-файлом без заголовка.
type FileStore struct {
	path string
}

// NewFileStore создаёт файловое хранилище; файл появится при первом Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path возвращает путь к файлу мира
func (fs *FileStore) Path() string { return fs.path }

// Load распаковывает файл в dst. Файл короче или длиннее dst отклоняется.
func (fs *FileStore) Load(dst []byte) error {
	f, err := os.Open(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("не удалось открыть %s: %w", fs.path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("повреждённый файл мира %s: %w", fs.path, err)
	}
	defer gz.Close()

	if _, err := io.ReadFull(gz, dst); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return ErrSizeMismatch
		}
		return fmt.Errorf("ошибка чтения %s: %w", fs.path, err)
	}

	var extra [1]byte
	n, err := gz.Read(extra[:])
	if n > 0 {
		return ErrSizeMismatch
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("ошибка чтения %s: %w", fs.path, err)
	}
	return nil
}

// Save записывает дамп во временный файл и атомарно подменяет старый.
func (fs *FileStore) Save(src []byte) error {
	if dir := filepath.Dir(fs.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("не удалось создать директорию %s: %w", dir, err)
		}
	}

	tmp := fs.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("не удалось создать %s: %w", tmp, err)
	}

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(src); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("ошибка записи %s: %w", tmp, err)
	}
	if err := gz.Close(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("ошибка сжатия %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("ошибка закрытия %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("не удалось заменить %s: %w", fs.path, err)
	}
	return nil
}

// Close ничего не держит открытым
func (fs *FileStore) Close() error { return nil }
