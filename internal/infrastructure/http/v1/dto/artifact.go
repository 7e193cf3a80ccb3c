package dto

// SaveArtifactRequest stores one rendered document.
type SaveArtifactRequest struct {
	Content string `json:"content" binding:"required"`
}

// SaveArtifactResponse returns the storage path.
type SaveArtifactResponse struct {
	Path string `json:"path"`
}

// LoadArtifactResponse returns stored document content.
type LoadArtifactResponse struct {
	Content string `json:"content"`
}
