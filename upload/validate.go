package upload

import (
	"github.com/brothersphoto/site-backend/errs"
)

// File is a user-selected file held in memory, pending upload.
type File struct {
	Name string
	Type string // MIME type
	Data []byte
}

func (f File) Size() int64 {
	return int64(len(f.Data))
}

// Profile is a validation profile: which MIME types are accepted and how
// large the file may be.
type Profile struct {
	MaxSize      int64
	AllowedTypes []string
}

var (
	// ProfileAsset covers general asset uploads.
	ProfileAsset = Profile{
		MaxSize:      10 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"},
	}

	// ProfileSection covers landing/home section images.
	ProfileSection = Profile{
		MaxSize:      5 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"},
	}

	// ProfileLogo covers the site logo, which additionally accepts SVG.
	ProfileLogo = Profile{
		MaxSize:      2 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/svg+xml"},
	}
)

// Validate rejects files whose MIME type is outside the profile's allowed
// set or whose size exceeds the profile's ceiling. It runs before any
// network call.
func (p Profile) Validate(f File) error {
	if !p.allows(f.Type) {
		return errs.NewInvalidFileTypeError(f.Type, p.AllowedTypes)
	}
	if f.Size() > p.MaxSize {
		return errs.NewFileTooLargeError(f.Size(), p.MaxSize)
	}
	return nil
}

func (p Profile) allows(mimeType string) bool {
	for _, t := range p.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}
