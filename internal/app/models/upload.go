package models

import "github.com/google/uuid"

// Resource is a downloadable file stored in the files bucket, newest first.
type Resource struct {
	Base
	Title       string     `json:"title" db:"title" example:"Python Basics"`
	Description *string    `json:"description,omitempty" db:"description"`
	FileType    *string    `json:"fileType,omitempty" db:"file_type" example:"application/pdf"` // MIME type
	FileURL     string     `json:"fileUrl" db:"file_url"`
	UploadedBy  *uuid.UUID `json:"uploadedBy,omitempty" db:"uploaded_by"`
}

// ResourceLess orders by creation time descending.
func ResourceLess(a, b Resource) bool { return newerFirst(a.Base, b.Base) }

// GalleryImage is a picture stored in the gallery bucket, newest first.
type GalleryImage struct {
	Base
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	ImageURL    string     `json:"imageUrl" db:"image_url"`
	UploadedBy  *uuid.UUID `json:"uploadedBy,omitempty" db:"uploaded_by"`
}

// GalleryLess orders by creation time descending.
func GalleryLess(a, b GalleryImage) bool { return newerFirst(a.Base, b.Base) }
