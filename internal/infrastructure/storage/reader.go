package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load читает файл сохранения и раскладывает JSON-снимок в out.
// Любая порча файла возвращается ошибкой: вызывающий стартует с
// чистым состоянием.
func (s *SaveService) Load(out any) (int64, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return readBinary(f, out)
}

// Exists сообщает, есть ли файл сохранения.
func (s *SaveService) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

func readBinary(r io.Reader, out any) (int64, error) {
	var header SaveFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return 0, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return 0, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	payload := make([]byte, header.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, fmt.Errorf("failed to read payload: %w", err)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return 0, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return header.SavedAt, nil
}
