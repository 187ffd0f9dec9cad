package owner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(NewRepository(db))}
}

// Create godoc
// @Summary      Register gym owner
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOwnerRequest  true  "Owner data"
// @Success      201      {object}  Owner
// @Failure      409      {object}  api.ErrorResponse
// @Router       /admin/owners [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.service.CreateOwner(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create owner"})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// List godoc
// @Summary      List gym owners
// @Tags         owners
// @Produce      json
// @Success      200  {array}  Owner
// @Router       /admin/owners [get]
func (h *Handler) List(c *gin.Context) {
	owners, err := h.service.ListOwners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load owners"})
		return
	}

	c.JSON(http.StatusOK, owners)
}

// Get godoc
// @Summary      Get owner by id
// @Tags         owners
// @Produce      json
// @Param        ownerID  path      int  true  "Owner ID"
// @Success      200      {object}  Owner
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/owners/{ownerID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("ownerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}

	o, err := h.service.GetOwner(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "owner not found"})
		return
	}

	c.JSON(http.StatusOK, o)
}

// Update godoc
// @Summary      Update owner
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        ownerID  path      int                 true  "Owner ID"
// @Param        request  body      UpdateOwnerRequest  true  "Owner data"
// @Success      200      {object}  Owner
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/owners/{ownerID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("ownerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}

	var req UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.service.UpdateOwner(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "owner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update owner"})
		return
	}

	c.JSON(http.StatusOK, o)
}

// Delete godoc
// @Summary      Delete owner
// @Tags         owners
// @Produce      json
// @Param        ownerID  path      int  true  "Owner ID"
// @Success      200      {object}  api.MessageResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/owners/{ownerID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("ownerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}

	if err := h.service.DeleteOwner(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "owner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete owner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "owner deleted"})
}
