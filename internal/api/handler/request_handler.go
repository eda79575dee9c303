package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saas-pm/project-hub/internal/api/metrics"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

// RequestHandler serves the service request workflow.
type RequestHandler struct {
	requests ports.RequestService
}

func NewRequestHandler(requests ports.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

// File creates a PENDING request for the calling client.
//
// @Summary      Request a service
// @Tags         client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      fileRequestRequest  true  "Service to request"
// @Success      201   {object}  domain.ServiceRequest
// @Failure      422   {object}  map[string]string
// @Router       /client/service-requests [post]
func (h *RequestHandler) File(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req fileRequestRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := h.requests.File(c.Request().Context(), user.ID, req.ServiceID)
	if err != nil {
		return err
	}

	metrics.ServiceRequestsFiledTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// ListMine returns the calling client's requests.
//
// @Summary      List my service requests
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ServiceRequest
// @Router       /client/service-requests [get]
func (h *RequestHandler) ListMine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	out, err := h.requests.ListForClient(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// ListAll returns every request.
//
// @Summary      List all service requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ServiceRequest
// @Router       /admin/service-requests [get]
func (h *RequestHandler) ListAll(c echo.Context) error {
	out, err := h.requests.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Approve flips a PENDING request to APPROVED and creates its project.
//
// @Summary      Approve a service request
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service request id"
// @Success      200  {object}  approvalResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/service-requests/{id}/approve [put]
func (h *RequestHandler) Approve(c echo.Context) error {
	result, err := h.requests.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ServiceRequestsDecidedTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, approvalResponse{
		Message: "Service request approved and project created",
		Request: result.Request,
		Project: result.Project,
	})
}

// Reject marks a request REJECTED.
//
// @Summary      Reject a service request
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service request id"
// @Success      200  {object}  domain.ServiceRequest
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/service-requests/{id}/reject [put]
func (h *RequestHandler) Reject(c echo.Context) error {
	req, err := h.requests.Reject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ServiceRequestsDecidedTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, req)
}
