package handlers

import (
	"errors"
	"net/http"

	"github.com/adityachavhan45/blogbackend/internal/database"
	"github.com/adityachavhan45/blogbackend/internal/models"
	"github.com/adityachavhan45/blogbackend/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListBlogs returns catalog entries, newest first, optionally filtered by
// category
// GET /api/blogs?category=tech&limit=20&offset=0
func (h *Handlers) ListBlogs(c *gin.Context) {
	limit := util.ParseInt(c.DefaultQuery("limit", "20"), 20)
	offset := util.ParseInt(c.DefaultQuery("offset", "0"), 0)
	category := c.Query("category")

	query := database.DB.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var blogs []models.Blog
	if result := query.Find(&blogs); result.Error != nil {
		util.RespondInternalError(c, "failed to list blogs", result.Error.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs": blogs,
		"meta": gin.H{
			"limit":    limit,
			"offset":   offset,
			"count":    len(blogs),
			"category": category,
		},
	})
}

// GetBlog returns a single blog by id
// GET /api/blogs/:id
func (h *Handlers) GetBlog(c *gin.Context) {
	id := c.Param("id")

	var blog models.Blog
	err := database.DB.WithContext(c.Request.Context()).First(&blog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.RespondNotFound(c, "blog")
			return
		}
		util.RespondInternalError(c, "failed to load blog", err.Error())
		return
	}

	c.JSON(http.StatusOK, blog)
}

// GetCategories returns the distinct categories present in the catalog
// GET /api/blogs/categories
func (h *Handlers) GetCategories(c *gin.Context) {
	var categories []string
	err := database.DB.WithContext(c.Request.Context()).
		Model(&models.Blog{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		util.RespondInternalError(c, "failed to list categories", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
