package mcp

import "fmt"

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func projectNotFound(id string) *APIError {
	return &APIError{
		Code:         "PROJECT_NOT_FOUND",
		Message:      fmt.Sprintf("no project with id %q", id),
		RecoveryHint: "Call list_projects to see valid ids",
	}
}

func invalidDate(field string, err error) *APIError {
	return &APIError{
		Code:         "INVALID_DATE",
		Message:      fmt.Sprintf("%s: %v", field, err),
		RecoveryHint: "Use RFC 3339 or YYYY-MM-DD",
	}
}

func invalidImport(err error) *APIError {
	return &APIError{
		Code:         "INVALID_STATE",
		Message:      fmt.Sprintf("state is not decodable: %v", err),
		RecoveryHint: "Pass the JSON produced by export_state",
	}
}
