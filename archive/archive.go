// Package archive keeps uploaded recordings on disk, one directory per participant.
package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidName = errors.New("invalid path element")

type Archive struct {
	root string
	now  func() time.Time
}

func New(root string) *Archive {
	return &Archive{root: root, now: time.Now}
}

// Path returns where an object stored for uid lives.
func (a *Archive) Path(uid, objectName string) string {
	return filepath.Join(a.root, uid, objectName)
}

// StoreBlob writes content to {root}/{uid}/{unix seconds}_{filename} and
// returns the object name. An existing object with the same name is overwritten.
// A failed write may leave a partial file behind.
func (a *Archive) StoreBlob(uid, filename string, content io.Reader) (string, error) {
	if err := checkElem(uid); err != nil {
		return "", fmt.Errorf("uid %q: %w", uid, err)
	}
	if err := checkElem(filename); err != nil {
		return "", fmt.Errorf("filename %q: %w", filename, err)
	}

	dir := filepath.Join(a.root, uid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}

	objectName := strconv.FormatInt(a.now().Unix(), 10) + "_" + filename
	f, err := os.Create(filepath.Join(dir, objectName))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	_, err = io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return objectName, nil
}

// Remove deletes a stored object. Removing a missing object is not an error.
func (a *Archive) Remove(uid, objectName string) error {
	if err := checkElem(uid); err != nil {
		return fmt.Errorf("uid %q: %w", uid, err)
	}
	if err := checkElem(objectName); err != nil {
		return fmt.Errorf("object %q: %w", objectName, err)
	}
	err := os.Remove(a.Path(uid, objectName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// checkElem accepts only names that stay a single entry below their parent.
func checkElem(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return ErrInvalidName
	}
	return nil
}
