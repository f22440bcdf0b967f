package models

import "time"

// PropertyPhoto is a row per stored object; the browser uploads directly to
// object storage using a presigned URL issued by the backend.
type PropertyPhoto struct {
	ID             int       `json:"id"`
	PropertyTypeID int       `json:"property_type_id"`
	ObjectKey      string    `json:"object_key"`
	Caption        string    `json:"caption,omitempty"`
	SortOrder      int       `json:"sort_order"`
	CreatedAt      time.Time `json:"created_at"`

	// Presigned GET URL, populated on listing; never stored
	URL string `json:"url,omitempty"`
}

type CreatePhotoRequest struct {
	PropertyTypeID int    `json:"property_type_id"`
	FileName       string `json:"file_name"`
	Caption        string `json:"caption"`
	SortOrder      int    `json:"sort_order"`
}

// PhotoUploadResponse carries the presigned PUT URL for the browser upload
type PhotoUploadResponse struct {
	Photo     *PropertyPhoto `json:"photo"`
	UploadURL string         `json:"upload_url"`
}
