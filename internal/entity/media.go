package entity

import (
	"mime"
	"path/filepath"
	"strings"
	"time"
)

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

const DefaultMediaCategory = "general"

type MediaRecord struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	FilePath    string    `json:"file_path"`
	FileType    FileType  `json:"file_type"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type MediaFilter struct {
	FileType FileType
	Category string
}

// MediaPatch updates the mutable metadata of a media record.
type MediaPatch struct {
	Category    Optional[string] `json:"category"`
	Description Optional[string] `json:"description"`
}

// Apply copies present fields onto rec; path, type and filename are never touched.
func (p *MediaPatch) Apply(rec *MediaRecord) {
	if p.Category.Set {
		rec.Category = strings.TrimSpace(p.Category.Value)
		if rec.Category == "" {
			rec.Category = DefaultMediaCategory
		}
	}
	if p.Description.Set {
		if p.Description.Null {
			rec.Description = nil
		} else {
			d := p.Description.Value
			rec.Description = &d
		}
	}
}

// allowedMediaTypes maps each accepted content type to its class and canonical extension.
var allowedMediaTypes = map[string]struct {
	class FileType
	ext   string
}{
	"image/jpeg":      {FileTypeImage, ".jpg"},
	"image/jpg":       {FileTypeImage, ".jpg"},
	"image/png":       {FileTypeImage, ".png"},
	"image/gif":       {FileTypeImage, ".gif"},
	"image/webp":      {FileTypeImage, ".webp"},
	"video/mp4":       {FileTypeVideo, ".mp4"},
	"video/webm":      {FileTypeVideo, ".webm"},
	"video/quicktime": {FileTypeVideo, ".mov"},
}

// ClassifyContentType returns the whitelist class of a declared content type,
// ignoring parameters and case. ok is false for anything outside the whitelist.
func ClassifyContentType(contentType string) (class FileType, ext string, ok bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", "", false
	}
	entry, ok := allowedMediaTypes[strings.ToLower(mediaType)]
	if !ok {
		return "", "", false
	}
	return entry.class, entry.ext, true
}

// ParseFileType accepts "image" or "video"; anything else is ok=false.
func ParseFileType(s string) (FileType, bool) {
	switch FileType(strings.ToLower(strings.TrimSpace(s))) {
	case FileTypeImage:
		return FileTypeImage, true
	case FileTypeVideo:
		return FileTypeVideo, true
	}
	return "", false
}

// MediaUpload is a buffered upload as received from the client.
type MediaUpload struct {
	OriginalName string
	ContentType  string
	Data         []byte
	Category     string
	Description  *string
}

var classExtensions = map[FileType][]string{
	FileTypeImage: {".jpg", ".jpeg", ".png", ".gif", ".webp"},
	FileTypeVideo: {".mp4", ".webm", ".mov"},
}

// StoredExtension keeps the uploaded file's extension when it belongs to class,
// otherwise it falls back to canonical.
func StoredExtension(originalName string, class FileType, canonical string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	for _, allowed := range classExtensions[class] {
		if ext == allowed {
			return ext
		}
	}
	return canonical
}
