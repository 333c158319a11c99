package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/volunize-hub/backend/internal/models"
	"github.com/volunize-hub/backend/internal/repositories"
)

const previewLimit = 6
const defaultPageSize = 10

// PostHandler handles HTTP requests related to volunteer posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPublicRoutes registers the post routes that need no authentication
func (h *PostHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.GET("/posts", h.GetSoonestPosts)
	e.GET("/allPosts", h.GetAllPosts)
	e.GET("/post-count", h.GetPostCount)
}

// RegisterPostRoutes registers the authenticated post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/post", h.GetMyPosts)
	g.GET("/post/:id", h.GetPost)
	g.POST("/post", h.CreatePost)
	g.PUT("/post/:id", h.UpdatePost)
	g.DELETE("/post/:id", h.DeletePost)
}

// GetSoonestPosts returns the posts with the nearest deadlines for the
// landing-page preview.
func (h *PostHandler) GetSoonestPosts(c echo.Context) error {
	posts, err := h.postRepository.ListSoonest(c.Request().Context(), previewLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetAllPosts returns a filtered, sorted, paginated listing.
func (h *PostHandler) GetAllPosts(c echo.Context) error {
	size, _ := strconv.ParseInt(c.QueryParam("size"), 10, 64)
	if size <= 0 {
		size = defaultPageSize
	}
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)

	filter := repositories.PostFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}
	if min, err := strconv.Atoi(c.QueryParam("minVolunteers")); err == nil {
		filter.MinVolunteers = &min
	}
	if max, err := strconv.Atoi(c.QueryParam("maxVolunteers")); err == nil {
		filter.MaxVolunteers = &max
	}

	sort := repositories.PostSort{
		Field: c.QueryParam("sortField"),
		Order: c.QueryParam("sortOrder"),
	}

	posts, err := h.postRepository.ListPosts(c.Request().Context(), filter, sort, repositories.PostPage{Page: page, Size: size})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPostCount returns the number of posts whose title matches the
// search term. Only the search filter applies here; the count feeds
// the pagination UI.
func (h *PostHandler) GetPostCount(c echo.Context) error {
	count, err := h.postRepository.CountByTitle(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// GetMyPosts returns the posts owned by the authenticated organizer.
func (h *PostHandler) GetMyPosts(c echo.Context) error {
	email := c.QueryParam("email")
	posts, err := h.postRepository.ListByOrganizer(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		if errors.Is(err, repositories.ErrInvalidID) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// CreatePost creates a new volunteer post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Title:             req.Title,
		Category:          req.Category,
		Location:          req.Location,
		NumberOfVolunteer: req.NumberOfVolunteer,
		PhotoURL:          req.PhotoURL,
		Description:       req.Description,
		Deadline:          req.Deadline,
		OrganizerEmail:    req.OrganizerEmail,
		OrganizerName:     req.OrganizerName,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// UpdatePost replaces the full business field set of an existing post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Title:             req.Title,
		Category:          req.Category,
		Location:          req.Location,
		NumberOfVolunteer: req.NumberOfVolunteer,
		PhotoURL:          req.PhotoURL,
		Description:       req.Description,
		Deadline:          req.Deadline,
		OrganizerEmail:    req.OrganizerEmail,
		OrganizerName:     req.OrganizerName,
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, post); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postRepository.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
