package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFile stores a multipart file under uploadPath with a random
// name and returns the public /uploads path kept on the resort record.
func SaveUploadedFile(fh *multipart.FileHeader, uploadPath string) (string, error) {
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(fh.Filename)

	dst, err := os.Create(filepath.Join(uploadPath, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return "/uploads/" + name, nil
}
