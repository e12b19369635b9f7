package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".svg": true, ".webp": true}
var allowedDocumentExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true, ".txt": true, ".md": true}

// AllowedFile checks whether the file extension is permitted for the
// given file type
func AllowedFile(filename, fileType string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch fileType {
	case "image":
		return allowedImageExts[ext]
	case "document":
		return allowedDocumentExts[ext]
	}
	return false
}

// SaveUploadedFile stores an uploaded file under destDir with a unique
// uuid-prefixed name and returns the stored path
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	newFilename := uuid.New().String() + "_" + filepath.Base(file.Filename)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// DeleteUploadedFile removes a stored file; a missing file is not an error
func DeleteUploadedFile(filePath string) error {
	if filePath == "" {
		return nil
	}
	err := os.Remove(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
