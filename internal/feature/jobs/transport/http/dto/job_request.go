// Package dto defines data transfer objects for the jobs feature's HTTP transport layer.
package dto

// CreateJobReq represents the request body for creating a posting.
type CreateJobReq struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Industry    string `json:"industry"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
}

// ArchiveJobReq represents the request body for toggling the archived flag.
// A pointer distinguishes an omitted field from an explicit false.
type ArchiveJobReq struct {
	IsArchived *bool `json:"isArchived" binding:"required"`
}
