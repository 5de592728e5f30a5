package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/middleware"
	"github.com/taskhive/taskhive-backend/internal/models"
	"github.com/taskhive/taskhive-backend/internal/store"
)

type TaskHandler struct {
	store *store.Store
}

func NewTaskHandler(store *store.Store) *TaskHandler {
	return &TaskHandler{store: store}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	req := dto.CreateTaskRequest{
		Status:   models.StatusPending,
		Priority: models.PriorityMedium,
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	task, err := h.store.CreateTask(actorID, &req)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	task, err := h.store.GetTask(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	f, err := taskFilterFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, size := pageParams(c)
	return c.JSON(h.store.ListTasks(f, page, size))
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	task, err := h.store.UpdateTask(id, &req)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) Patch(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var patch dto.TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	task, err := h.store.PatchTask(id, &patch)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.store.DeleteTask(id); err != nil {
		return storeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Task deleted"})
}

func (h *TaskHandler) Search(c *fiber.Ctx) error {
	f, err := taskFilterFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	q := dto.TaskSearch{
		Title:      c.Query("title"),
		Status:     f.Status,
		Priority:   f.Priority,
		ProjectID:  f.ProjectID,
		AssignedTo: f.AssignedTo,
		OrderBy:    c.Query("order_by", "creation_date"),
		OrderDir:   c.Query("order_dir", "desc"),
	}
	if v := c.Query("due_date_from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badRequest(c, "invalid due_date_from")
		}
		q.DueFrom = &from
	}
	if v := c.Query("due_date_to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badRequest(c, "invalid due_date_to")
		}
		q.DueTo = &to
	}

	page, size := pageParams(c)
	tasks, err := h.store.SearchTasks(&q, page, size)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(tasks)
}

func (h *TaskHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req struct {
		Status models.TaskStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	task, err := h.store.ChangeTaskStatus(id, req.Status)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req struct {
		UserID int64 `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID < 1 {
		return badRequest(c, "Invalid request body")
	}

	task, err := h.store.AssignTask(id, req.UserID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) Statistics(c *fiber.Ctx) error {
	return c.JSON(h.store.GlobalTaskStatistics())
}

func taskFilterFromQuery(c *fiber.Ctx) (*dto.TaskFilter, error) {
	var f dto.TaskFilter
	if v := c.Query("status"); v != "" {
		s := models.TaskStatus(v)
		if !s.Valid() {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid status filter")
		}
		f.Status = &s
	}
	if v := c.Query("priority"); v != "" {
		p := models.TaskPriority(v)
		if !p.Valid() {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid priority filter")
		}
		f.Priority = &p
	}
	f.ProjectID = queryInt64(c, "project_id")
	f.AssignedTo = queryInt64(c, "assigned_to")
	return &f, nil
}
