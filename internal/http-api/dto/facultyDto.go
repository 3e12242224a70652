package dto

import "facultyreview/internal/directory"

// PaginatedFacultyResponse for returning paginated directory entries
type PaginatedFacultyResponse struct {
	Data       []directory.Faculty `json:"data"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	Total      int                 `json:"total"`
	TotalPages int                 `json:"total_pages"`
}

// NewPaginatedFacultyResponse creates a paginated faculty response
func NewPaginatedFacultyResponse(data []directory.Faculty, total, page, pageSize int) *PaginatedFacultyResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedFacultyResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FacultyFiltersResponse lists the distinct filter values for the search UI
type FacultyFiltersResponse struct {
	Departments []string `json:"departments"`
	Schools     []string `json:"schools"`
}
