package handler

import (
	"errors"
	"net/http"

	"facultyreview/internal/http-api/dto"
	"facultyreview/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService  service.AdminService
	reviewService service.ReviewService
	statsService  service.StatsService
}

func NewAdminHandler(adminService service.AdminService, reviewService service.ReviewService, statsService service.StatsService) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		reviewService: reviewService,
		statsService:  statsService,
	}
}

// Login authenticates the moderation password and issues an admin token
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, expiresIn, err := h.adminService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}

// DeleteReview removes a review (moderation)
// DELETE /api/admin/reviews/:id
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	id := c.Param("id")

	if err := h.reviewService.DeleteReview(id); err != nil {
		if err.Error() == "review not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.statsService.InvalidateCache()

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
