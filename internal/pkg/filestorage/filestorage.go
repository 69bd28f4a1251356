package filestorage

import (
	"mime/multipart"
)

// FileStorage is the opaque blob store used for avatars and resumes.
// Implementations return the path under which the stored file is
// reachable; callers persist that path only.
type FileStorage interface {
	// SaveFileWithPath saves a file under a subdirectory of the root
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file; deleting a missing file is not
	// an error
	DeleteFile(filePath string) error
}
