package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCities handles the GET /api/cities request.
func (h *Handler) GetCities(c *gin.Context) {
	cities, err := h.store.ListActiveCities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// GetTestimonials handles the GET /api/testimonials request.
func (h *Handler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.store.ListTestimonials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// GetStats handles the GET /api/stats request for the home page counters.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.store.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ListBlogPosts handles the GET /api/blog request.
func (h *Handler) ListBlogPosts(c *gin.Context) {
	posts, err := h.store.ListBlogPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetBlogPost handles the GET /api/blog/:slug request.
func (h *Handler) GetBlogPost(c *gin.Context) {
	post, err := h.store.GetBlogPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}
