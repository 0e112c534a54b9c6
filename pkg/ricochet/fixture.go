package ricochet

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// WriteJSON serializes v as a JSON document into path, truncating any
// existing file. It returns the number of bytes written.
func WriteJSON(path string, v any) (n int64, err error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("%w: encode %s: %w", ErrWriteOutput, path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteOutput, cerr)
		}
	}()

	writer := bufio.NewWriter(file)
	written, err := writer.Write(data)
	if err != nil {
		return int64(written), fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := writer.Flush(); err != nil {
		return int64(written), fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return int64(written), nil
}

// LoadBullets reads a bullets fixture. A missing file yields no bullets.
func LoadBullets(path string) (Bullets, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Bullets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFixture, err)
	}

	var bullets Bullets
	if err := json.Unmarshal(data, &bullets); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFixture, path, err)
	}
	if bullets == nil {
		bullets = Bullets{}
	}

	return bullets, nil
}

// LoadWalls reads a walls fixture. A missing file, a document that is not
// an array, or an empty array all yield the single DefaultWall so the
// caller always has something to collide with.
func LoadWalls(path string) (Walls, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Walls{DefaultWall}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFixture, err)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFixture, path, err)
	}
	if !isArray(raw) {
		return Walls{DefaultWall}, nil
	}

	var walls Walls
	if err := json.Unmarshal(raw, &walls); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFixture, path, err)
	}
	if len(walls) == 0 {
		return Walls{DefaultWall}, nil
	}

	return walls, nil
}

func isArray(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
