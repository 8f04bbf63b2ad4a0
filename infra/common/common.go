package common

import (
	"crypto/md5"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// skipDirs do not affect the api image.
var skipDirs = map[string]bool{
	".git":      true,
	"infra":     true,
	"_examples": true,
}

// GenerateHash digests every regular file under root so the image tag
// changes only when the build context does.
func GenerateHash(root string) (string, error) {
	var hash string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		fh, err := fileHash(path)
		if err != nil {
			return err
		}
		hash = appendHash(hash, fh)
		return nil
	})

	return hash, err
}

func fileHash(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func appendHash(hash1, hash2 string) string {
	h := md5.New()
	io.WriteString(h, hash1+hash2)
	return fmt.Sprintf("%x", h.Sum(nil))
}
