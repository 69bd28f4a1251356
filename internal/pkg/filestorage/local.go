package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Anurg29/Aluminiconnect/internal/pkg/logger"
)

// LocalStorage saves uploaded files on the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // prefix prepended to returned file paths
}

// NewLocalStorage creates a LocalStorage rooted at basePath. If baseURL
// is non-empty, returned paths are full URLs under it; otherwise they
// are relative uploads/ paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFileWithPath saves a file to a subdirectory of the storage root,
// under a generated unique name so uploads cannot collide.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	var accessiblePath string
	if ls.baseURL != "" {
		accessiblePath = strings.TrimRight(ls.baseURL, "/")
		if subPath != "" {
			accessiblePath += "/" + subPath
		}
		accessiblePath += "/" + uniqueFilename
	} else {
		accessiblePath = filepath.Join("uploads", subPath, uniqueFilename)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Msg("File saved")
	return accessiblePath, nil
}

// DeleteFile removes a file given the path stored in the database
// (e.g. uploads/avatars/name.jpg or a full URL). Missing files are
// treated as already deleted.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	filename := filepath.Base(filePath)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	// Stored paths may carry one subdirectory between the root and the
	// filename; try both locations.
	candidates := []string{
		filepath.Join(ls.basePath, filename),
		filepath.Join(ls.basePath, filepath.Base(filepath.Dir(filePath)), filename),
	}

	for _, physicalPath := range candidates {
		if _, err := os.Stat(physicalPath); err == nil {
			if err := os.Remove(physicalPath); err != nil {
				return fmt.Errorf("failed to delete file: %w", err)
			}
			logger.Info().Str("path", physicalPath).Msg("File deleted")
			return nil
		}
	}

	logger.Warn().Str("path", filePath).Msg("File to delete does not exist")
	return nil
}
