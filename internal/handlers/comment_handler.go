package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/middleware"
	"github.com/taskhive/taskhive-backend/internal/store"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(store *store.Store) *CommentHandler {
	return &CommentHandler{store: store}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.store.CreateComment(actorID, &req)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	comment, err := h.store.GetComment(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(comment)
}

func (h *CommentHandler) ForTask(c *fiber.Ctx) error {
	taskID, err := idParam(c, "taskId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	comments, err := h.store.CommentsForTask(taskID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.store.UpdateComment(id, &req)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.store.DeleteComment(id); err != nil {
		return storeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Comment deleted"})
}
