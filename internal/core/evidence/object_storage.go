// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package evidence

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ObjectStorage accepts evidence bytes and returns a locator. The engine
// never reads file content back; it only records locators and sizes.
type ObjectStorage interface {
	Store(key string, reader io.Reader) (locator string, size int64, err error)
	Remove(locator string) error
}

// fsStorage writes evidence files below a base directory. The key is
// generated by the service and already sanitized.
type fsStorage struct {
	baseDir string
}

func NewFilesystemStorage(baseDir string) (*fsStorage, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create evidence directory: %w", err)
	}
	return &fsStorage{baseDir: baseDir}, nil
}

func (s *fsStorage) Store(key string, reader io.Reader) (string, int64, error) {
	path := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}
	return path, size, nil
}

func (s *fsStorage) Remove(locator string) error {
	if err := os.Remove(locator); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// storageKey builds a collision-free key from the upload context. The
// original file name is slugified, so path traversal attempts degrade into
// plain text.
func storageKey(assetID, controlID uuid.UUID, fileName string) string {
	base := filepath.Base(fileName)
	ext := filepath.Ext(base)
	name := slug.Make(base[:len(base)-len(ext)])
	if name == "" {
		name = "evidence"
	}
	return filepath.Join(assetID.String(), controlID.String(), fmt.Sprintf("%s-%s%s", uuid.NewString()[:8], name, ext))
}
