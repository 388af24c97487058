package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	MagicHeader string = `LMSV` // 4 байта
	Version1    uint32 = 1
)

// SaveFileHeader - точное представление заголовка файла в памяти.
// binary.Write умеет писать его целиком: тут нет слайсов и строк,
// только массивы и числа.
type SaveFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	SavedAt    int64   // 8 байт, Unix milliseconds
	PayloadLen uint32  // 4 байта
}

// SaveService пишет и читает файл сохранения: бинарный заголовок,
// за ним JSON-снимок партии.
type SaveService struct {
	Path string
}

func NewSaveService(path string) *SaveService {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &SaveService{Path: path}
}

// Save сериализует снимок и атомарно заменяет файл сохранения.
func (s *SaveService) Save(snapshot any, savedAt int64) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp := s.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := writeBinary(f, payload, savedAt); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, s.Path)
}

func writeBinary(w io.Writer, payload []byte, savedAt int64) error {
	header := SaveFileHeader{
		Version:    Version1,
		SavedAt:    savedAt,
		PayloadLen: uint32(len(payload)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}
