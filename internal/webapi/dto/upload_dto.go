package dto

// UploadImageDTO for POST /api/upload/image. FileData is base64-encoded.
type UploadImageDTO struct {
	FileData string `json:"file_data" binding:"required"`
	FileName string `json:"file_name" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

// UploadResponse returns the public URL and storage key of the stored object
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Key     string `json:"key"`
}
