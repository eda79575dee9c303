package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saas-pm/project-hub/internal/api/metrics"
	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ListAll returns every project.
//
// @Summary      List all projects
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Router       /admin/projects [get]
func (h *ProjectHandler) ListAll(c echo.Context) error {
	out, err := h.projects.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// ListForClient returns the calling client's projects.
//
// @Summary      List my projects
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Router       /client/projects [get]
func (h *ProjectHandler) ListForClient(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.projects.ListForClient(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// ListForEmployee returns the projects the calling employee is assigned to.
//
// @Summary      List assigned projects
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Router       /employee/projects [get]
func (h *ProjectHandler) ListForEmployee(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.projects.ListForEmployee(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Assign replaces the project's employee set.
//
// @Summary      Assign employees
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Project id"
// @Param        body  body      assignRequest  true  "Employee ids; replaces the current set"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /admin/projects/{id}/assign [put]
func (h *ProjectHandler) Assign(c echo.Context) error {
	var req assignRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projects.AssignEmployees(c.Request().Context(), c.Param("id"), req.EmployeeIDs)
	if err != nil {
		return err
	}

	metrics.ProjectAssignmentsTotal.WithLabelValues("assign").Inc()
	return c.JSON(http.StatusOK, project)
}

// Unassign removes one employee from the project.
//
// @Summary      Unassign an employee
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Project id"
// @Param        body  body      unassignRequest  true  "Employee to remove"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Router       /admin/projects/{id}/unassign [put]
func (h *ProjectHandler) Unassign(c echo.Context) error {
	var req unassignRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projects.UnassignEmployee(c.Request().Context(), c.Param("id"), req.EmployeeID)
	if err != nil {
		return err
	}

	metrics.ProjectAssignmentsTotal.WithLabelValues("unassign").Inc()
	return c.JSON(http.StatusOK, project)
}

// UpdateStatus sets the project status.
//
// @Summary      Update project status
// @Tags         employee
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Project id"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  domain.Project
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /employee/projects/{id}/status [put]
func (h *ProjectHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req statusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projects.UpdateStatus(c.Request().Context(), user.ID, c.Param("id"), domain.ProjectStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.ProjectStatusChangesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, project)
}
