package domain

import "time"

// Service is an offerable catalog entry. Services are immutable once created.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// RequestStatus represents the lifecycle state of a service request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// requestTransitions defines the allowed state machine transitions.
// Rejecting an already rejected request is accepted as a re-apply.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestApproved, RequestRejected},
	RequestRejected: {RequestRejected},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SourcesOf returns every status from which next is reachable.
func SourcesOf(next RequestStatus) []RequestStatus {
	var out []RequestStatus
	for _, from := range []RequestStatus{RequestPending, RequestApproved, RequestRejected} {
		if from.CanTransitionTo(next) {
			out = append(out, from)
		}
	}
	return out
}

// ServiceRequest is a client's ask to engage a cataloged service.
type ServiceRequest struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"client_id"`
	ServiceID string        `json:"service_id"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
