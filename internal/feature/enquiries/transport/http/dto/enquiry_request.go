// Package dto defines data transfer objects for the enquiries feature's HTTP transport layer.
package dto

// CreateEnquiryReq represents the public form submission body.
// The document fields carry the resume filename and its text-encoded payload;
// the usecase enforces that candidates attach one.
type CreateEnquiryReq struct {
	Type         string `json:"type" binding:"required,oneof=CANDIDATE EMPLOYER"`
	Subject      string `json:"subject"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Message      string `json:"message" binding:"required"`
	Company      string `json:"company"`
	Priority     string `json:"priority"`
	Experience   string `json:"experience"`
	DocumentName string `json:"documentName"`
	DocumentData string `json:"documentData"`
}

// UpdateStatusReq represents the admin status change body.
type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// SubmitRes acknowledges a stored enquiry.
type SubmitRes struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}
