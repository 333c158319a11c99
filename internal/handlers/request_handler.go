package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/volunize-hub/backend/internal/models"
	"github.com/volunize-hub/backend/internal/repositories"
)

// RequestHandler handles HTTP requests related to volunteer requests.
// It holds both repositories because creating or withdrawing a request
// also moves the capacity counter on the referenced post.
type RequestHandler struct {
	requestRepository repositories.RequestRepository
	postRepository    repositories.PostRepository
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requestRepo repositories.RequestRepository, postRepo repositories.PostRepository) *RequestHandler {
	return &RequestHandler{
		requestRepository: requestRepo,
		postRepository:    postRepo,
	}
}

// RegisterRequestRoutes registers the authenticated volunteer-request routes
func (h *RequestHandler) RegisterRequestRoutes(g *echo.Group) {
	g.GET("/allRequest", h.GetMyRequests)
	g.POST("/request", h.CreateRequest)
	g.DELETE("/request/:id", h.DeleteRequest)
}

// GetMyRequests returns all requests placed by the authenticated volunteer.
func (h *RequestHandler) GetMyRequests(c echo.Context) error {
	email := c.QueryParam("email")
	requests, err := h.requestRepository.ListByVolunteer(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, requests)
}

// CreateRequest applies the volunteer to a post. The slot is reserved
// first with an atomic conditional decrement, then the request is
// inserted; if the insert hits the uniqueness index the slot is given
// back. Either step failing leaves the counter consistent.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var req models.CreateVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	reserved, err := h.postRepository.ReserveSlot(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidID) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !reserved {
		return echo.NewHTTPError(http.StatusConflict, "No volunteer slots remaining on this post")
	}

	request := &models.VolunteerRequest{
		VolunteerEmail: req.VolunteerEmail,
		VolunteerName:  req.VolunteerName,
		PostID:         req.PostID,
		Suggestion:     req.Suggestion,
		Status:         req.Status,
		Title:          req.Title,
		Category:       req.Category,
		Location:       req.Location,
		Deadline:       req.Deadline,
		OrganizerEmail: req.OrganizerEmail,
		OrganizerName:  req.OrganizerName,
	}

	if err := h.requestRepository.CreateRequest(ctx, request); err != nil {
		// give the reserved slot back before reporting the failure
		_ = h.postRepository.ReleaseSlot(ctx, req.PostID)
		if errors.Is(err, repositories.ErrAlreadyApplied) {
			return echo.NewHTTPError(http.StatusConflict, "You have already placed a request on this post")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, request)
}

// DeleteRequest withdraws a volunteer request. The post to credit the
// slot back to comes from the id query parameter, independent of the
// request id in the path; a post that was deleted in the meantime does
// not block the withdrawal.
func (h *RequestHandler) DeleteRequest(c echo.Context) error {
	ctx := c.Request().Context()

	postID := c.QueryParam("id")
	if postID != "" {
		if err := h.postRepository.ReleaseSlot(ctx, postID); err != nil {
			if errors.Is(err, repositories.ErrInvalidID) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	if err := h.requestRepository.DeleteRequest(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Request not found")
		}
		if errors.Is(err, repositories.ErrInvalidID) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
