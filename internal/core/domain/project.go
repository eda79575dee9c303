package domain

import (
	"fmt"
	"time"
)

// ProjectStatus is the progress of a project. Any status may follow any
// other, including itself.
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "NOT_STARTED"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known project statuses.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectCompleted:
		return true
	}
	return false
}

const (
	fallbackServiceLabel = "Service"
	approvedDescription  = "Auto-created from approved service request"
)

// Project is the unit of delivery work. It is only ever created from an
// approved ServiceRequest.
type Project struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	ClientID         string        `json:"client_id"`
	ServiceRequestID string        `json:"service_request_id"`
	EmployeeIDs      []string      `json:"employee_ids"`
	Status           ProjectStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
}

// HasEmployee reports whether employeeID is assigned to the project.
func (p *Project) HasEmployee(employeeID string) bool {
	for _, id := range p.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// NewProjectFromRequest builds the project spawned by approving req.
// serviceName may be empty when the service record no longer exists.
func NewProjectFromRequest(req *ServiceRequest, serviceName string, now time.Time) *Project {
	if serviceName == "" {
		serviceName = fallbackServiceLabel
	}
	return &Project{
		Name:             fmt.Sprintf("Project - %s", serviceName),
		Description:      approvedDescription,
		ClientID:         req.ClientID,
		ServiceRequestID: req.ID,
		EmployeeIDs:      []string{},
		Status:           ProjectNotStarted,
		CreatedAt:        now,
	}
}
