// Package models defines the value types passed between the releasedrop
// client layers.
package models

import "time"

// FileInfo describes a locally selected file.
type FileInfo struct {
	Name         string
	Path         string
	SizeBytes    int64
	LastModified time.Time
}

// UploadRequest is created per submission attempt and discarded afterwards.
type UploadRequest struct {
	File    FileInfo
	Secret  string
	Release string
}

// UploadResult is the outcome of a successful upload.
type UploadResult struct {
	DownloadURL string
	FileName    string
	Release     string
}
