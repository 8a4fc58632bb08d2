package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) postsGetAll(c *gin.Context) {
	posts, err := h.services.Post.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		h.writePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.SavePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsUpdate(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	var input dto.SavePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), postID, input)
	if err != nil {
		h.writePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, *updatedPost)
}

func (h *Handler) postsDelete(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), postID); err != nil {
		h.writePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "post deleted"))
}

func (h *Handler) postsLike(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	likes, err := h.services.Post.Like(c.Request.Context(), postID)
	if err != nil {
		h.writePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikesResponse{Likes: likes})
}

func (h *Handler) postsUploadImage(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}
	defer file.Close()

	url, err := h.services.Post.UploadImage(c.Request.Context(), file, fileHeader)
	if err != nil {
		if errors.Is(err, service.ErrFileMustBeImage) {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, url)
}

func (h *Handler) postIDParam(c *gin.Context) (uuid.UUID, bool) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := uuid.Parse(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return uuid.Nil, false
	}

	return postID, true
}

func (h *Handler) writePostError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
}
