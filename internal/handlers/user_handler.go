package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/models"
	"github.com/taskhive/taskhive-backend/internal/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(store *store.Store) *UserHandler {
	return &UserHandler{store: store}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	req := dto.CreateUserRequest{Active: true}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.store.CreateUser(c.UserContext(), &req)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	var f dto.UserFilter
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return badRequest(c, "invalid active filter")
		}
		f.Active = &active
	}
	if v := c.Query("type"); v != "" {
		t := models.UserType(v)
		if !t.Valid() {
			return badRequest(c, "invalid type filter")
		}
		f.Type = &t
	}

	page, size := pageParams(c)
	return c.JSON(h.store.ListUsers(&f, page, size))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.store.UpdateUser(id, &req)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Patch(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var patch dto.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.store.PatchUser(id, &patch)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.store.DeleteUser(id); err != nil {
		return storeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "User deactivated"})
}

func (h *UserHandler) Search(c *fiber.Ctx) error {
	q := dto.UserSearch{
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}
	page, size := pageParams(c)
	return c.JSON(h.store.SearchUsers(&q, page, size))
}

func (h *UserHandler) Tasks(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	tasks, err := h.store.TasksForUser(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(tasks)
}

func (h *UserHandler) TouchLastAccess(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.store.TouchLastAccess(id); err != nil {
		return storeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Last access updated"})
}
