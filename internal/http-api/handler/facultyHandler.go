package handler

import (
	"net/http"
	"strconv"

	"facultyreview/internal/directory"
	"facultyreview/internal/http-api/dto"

	"github.com/gin-gonic/gin"
)

type FacultyHandler struct {
	dir *directory.Directory
}

func NewFacultyHandler(dir *directory.Directory) *FacultyHandler {
	return &FacultyHandler{dir: dir}
}

// RegisterRoutes registers directory routes
func (h *FacultyHandler) RegisterRoutes(router *gin.RouterGroup) {
	faculty := router.Group("/faculty")
	{
		faculty.GET("", h.List)                  // Search/filter the directory
		faculty.GET("/filters", h.Filters)       // Distinct departments and schools
		faculty.GET("/:faculty_id", h.GetByID)   // Single directory entry
	}
}

// List searches and paginates the faculty directory
// GET /api/faculty?q=&department=&school=&page=1&page_size=20
func (h *FacultyHandler) List(c *gin.Context) {
	query := c.Query("q")
	department := c.Query("department")
	school := c.Query("school")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	matches := h.dir.Search(query, department, school)

	total := len(matches)
	offset := (page - 1) * pageSize
	if offset > total {
		offset = total
	}
	end := offset + pageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, dto.NewPaginatedFacultyResponse(matches[offset:end], total, page, pageSize))
}

// Filters returns the distinct departments and schools
// GET /api/faculty/filters
func (h *FacultyHandler) Filters(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FacultyFiltersResponse{
		Departments: h.dir.Departments(),
		Schools:     h.dir.Schools(),
	})
}

// GetByID retrieves a single directory entry
// GET /api/faculty/:faculty_id
func (h *FacultyHandler) GetByID(c *gin.Context) {
	f, ok := h.dir.ByID(c.Param("faculty_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "faculty not found"})
		return
	}

	c.JSON(http.StatusOK, f)
}
