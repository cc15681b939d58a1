package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bucky/internal/errors"
	"bucky/internal/model"
	"bucky/internal/pagination"
	"bucky/internal/service"
)

// BucketListHandler handles bucket list endpoints.
type BucketListHandler struct {
	bucketLists service.BucketListService
	perPage     int
}

// NewBucketListHandler creates a new bucket list handler. perPage must match
// the service's page size so navigation links line up with the windows.
func NewBucketListHandler(bucketLists service.BucketListService, perPage int) *BucketListHandler {
	return &BucketListHandler{
		bucketLists: bucketLists,
		perPage:     perPage,
	}
}

// BucketListRequest is the bucket list payload schema. Only the name is
// accepted on input; id and tasks are output-only.
type BucketListRequest struct {
	Name string `json:"name" validate:"required"`
}

// BucketListPageResponse is the paginated listing body.
type BucketListPageResponse struct {
	BucketLists []model.BucketList `json:"bucket-lists"`
	Prev        *string            `json:"prev"`
	Next        *string            `json:"next"`
	Count       int64              `json:"count"`
}

// List godoc
// @Summary List own bucket lists, paginated
// @Tags bucketlists
// @Produce json
// @Security BasicAuth
// @Param page query int false "Page number, 1-indexed"
// @Param q query string false "Case-insensitive substring filter on name"
// @Success 200 {object} BucketListPageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /bucketlists/ [get]
func (h *BucketListHandler) List(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}

	page := pagination.PageFromQuery(c.QueryParams())
	items, total, err := h.bucketLists.List(c.Request().Context(), identity.UserID, c.QueryParam("q"), page)
	if err != nil {
		return respondError(c, err, "")
	}
	if items == nil {
		items = []model.BucketList{}
	}

	links := pagination.BuildLinks(requestURL(c), page, h.perPage, total)
	return c.JSON(http.StatusOK, BucketListPageResponse{
		BucketLists: items,
		Prev:        links.Prev,
		Next:        links.Next,
		Count:       total,
	})
}

// Create godoc
// @Summary Create a bucket list
// @Tags bucketlists
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body BucketListRequest true "Bucket list payload"
// @Success 201 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} map[string][]string
// @Router /bucketlists/ [post]
func (h *BucketListHandler) Create(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}

	var req BucketListRequest
	if ok, err := decodePayload(c, &req); !ok {
		return err
	}

	if _, err := h.bucketLists.Create(c.Request().Context(), identity.UserID, req.Name); err != nil {
		return respondError(c, err, "Failed to create")
	}

	return c.JSON(http.StatusCreated, errors.ErrorResponse{
		Message: "Created bucket-list",
	})
}

// Get godoc
// @Summary Get a bucket list with its tasks
// @Tags bucketlists
// @Produce json
// @Security BasicAuth
// @Param id path int true "Bucket list ID"
// @Success 200 {object} model.BucketList
// @Failure 404 {object} errors.ErrorResponse
// @Router /bucketlists/{id} [get]
func (h *BucketListHandler) Get(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	bucketList, err := h.bucketLists.Get(c.Request().Context(), identity.UserID, id)
	if err != nil {
		return respondError(c, err, "")
	}

	return c.JSON(http.StatusOK, bucketList)
}

// Update godoc
// @Summary Rename a bucket list
// @Tags bucketlists
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Bucket list ID"
// @Param request body BucketListRequest true "Bucket list payload"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} map[string][]string
// @Router /bucketlists/{id} [patch]
func (h *BucketListHandler) Update(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req BucketListRequest
	if ok, err := decodePayload(c, &req); !ok {
		return err
	}

	bucketList, err := h.bucketLists.Rename(c.Request().Context(), identity.UserID, id, req.Name)
	if err != nil {
		return respondError(c, err, "Failed to patch")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "Bucket-list modified",
		"bucket-list": bucketList,
	})
}

// Delete godoc
// @Summary Delete a bucket list and its tasks
// @Tags bucketlists
// @Produce json
// @Security BasicAuth
// @Param id path int true "Bucket list ID"
// @Success 200 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bucketlists/{id} [delete]
func (h *BucketListHandler) Delete(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.bucketLists.Delete(c.Request().Context(), identity.UserID, id); err != nil {
		return respondError(c, err, "Failed to delete")
	}

	return c.JSON(http.StatusOK, errors.ErrorResponse{
		Message: "Deleted bucket-list",
	})
}

// requestURL rebuilds the external URL of the current route for navigation
// links.
func requestURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host + c.Path()
}
