package models

import "time"

// TimeFormat is the fixed timestamp layout used by every read projection.
const TimeFormat = "2006-01-02 15:04:05"

// FormatTime renders a timestamp in the API's fixed layout.
func FormatTime(t time.Time) string {
	return t.Format(TimeFormat)
}

// FormatTimePtr renders an optional timestamp, empty string when absent.
func FormatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(TimeFormat)
}

// PaginationInfo represents pagination information
type PaginationInfo struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// NewPaginationInfo derives page metadata from a total row count.
func NewPaginationInfo(page, limit int, total int64) *PaginationInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PaginationInfo{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// LabelRef is a resolved foreign key: id plus a display label. Read
// projections use it instead of exposing raw ids.
type LabelRef struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// DropdownOption is the minimal projection served to select inputs.
type DropdownOption struct {
	ID    uint   `json:"id"`
	Code  string `json:"code,omitempty"`
	Label string `json:"label"`
}

// Error represents error details
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     Error  `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// MessageResponse is the envelope for delete/restore/clear acknowledgements.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DropdownResponse is the envelope for lookup dropdown reads.
type DropdownResponse struct {
	Success bool             `json:"success"`
	Data    []DropdownOption `json:"data"`
}
