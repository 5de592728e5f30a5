package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/store"
)

type ProjectHandler struct {
	store *store.Store
}

func NewProjectHandler(store *store.Store) *ProjectHandler {
	return &ProjectHandler{store: store}
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	project, err := h.store.CreateProject(&req)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	project, err := h.store.GetProject(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	f := dto.ProjectFilter{ManagerID: queryInt64(c, "manager_id")}
	page, size := pageParams(c)
	return c.JSON(h.store.ListProjects(&f, page, size))
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	project, err := h.store.UpdateProject(id, &req)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Patch(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var patch dto.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	project, err := h.store.PatchProject(id, &patch)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	backupID, err := h.store.DeleteProject(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(dto.DeleteProjectResponse{Message: "Project deleted", BackupID: backupID})
}

func (h *ProjectHandler) Search(c *fiber.Ctx) error {
	q := dto.ProjectSearch{
		Name:        c.Query("name"),
		Description: c.Query("description"),
	}
	page, size := pageParams(c)
	return c.JSON(h.store.SearchProjects(&q, page, size))
}

func (h *ProjectHandler) Tasks(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	tasks, err := h.store.TasksForProject(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(tasks)
}

func (h *ProjectHandler) Statistics(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	stats, err := h.store.ProjectStatistics(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(stats)
}
