package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aleksej-tulko/drf-foodgram/internal/media"
	"github.com/aleksej-tulko/drf-foodgram/internal/service"
)

type registerRequest struct {
	Email     string `json:"email" binding:"required"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (h *Handlers) listUsers(c *gin.Context) {
	p := pagination(c)
	users, count, err := h.users.ListUsers(p.Offset(), p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	requester := currentUserID(c)
	results := make([]gin.H, 0, len(users))
	for _, user := range users {
		subscribed, err := h.subs.IsSubscribed(requester, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results = append(results, userPayload(user, subscribed))
	}

	c.JSON(http.StatusOK, paginated(c, count, p, results))
}

func (h *Handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(service.RegisterUserDTO{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

func (h *Handlers) retrieveUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	subscribed, err := h.subs.IsSubscribed(currentUserID(c), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userPayload(user, subscribed))
}

func (h *Handlers) me(c *gin.Context) {
	c.JSON(http.StatusOK, userPayload(currentUser(c), false))
}

type avatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

func (h *Handlers) putAvatar(c *gin.Context) {
	var req avatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path, err := h.users.SetAvatar(currentUser(c), req.Avatar)
	if err != nil {
		if errors.Is(err, media.ErrNotBase64Image) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": mediaURL(path)})
}

func (h *Handlers) deleteAvatar(c *gin.Context) {
	if err := h.users.DeleteAvatar(currentUser(c)); err != nil {
		if errors.Is(err, service.ErrNoAvatar) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (h *Handlers) setPassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.users.ChangePassword(currentUser(c), service.ChangePasswordDTO{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func recipesLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func (h *Handlers) subscribe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	author, err := h.subs.Subscribe(currentUserID(c), id, recipesLimit(c))
	if err != nil {
		switch {
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrSelfSubscription),
			errors.Is(err, service.ErrAlreadySubscribed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, subscribedAuthorPayload(author))
}

func (h *Handlers) unsubscribe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.subs.Unsubscribe(currentUserID(c), id); err != nil {
		switch {
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrNotSubscribed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) listSubscriptions(c *gin.Context) {
	p := pagination(c)
	authors, count, err := h.subs.ListSubscriptions(
		currentUserID(c), p.Offset(), p.Limit, recipesLimit(c),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]gin.H, 0, len(authors))
	for _, author := range authors {
		results = append(results, subscribedAuthorPayload(author))
	}
	c.JSON(http.StatusOK, paginated(c, count, p, results))
}
