package models

// Statuser is implemented by entities carrying a lifecycle status field
type Statuser interface {
	StatusValue() string
}

// FilterByStatus returns the subset of items matching status. An empty
// status matches everything. Pure function of (items, status): re-applying
// it to an unchanged list always yields the same subset.
func FilterByStatus[T Statuser](items []T, status string) []T {
	if status == "" {
		return items
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.StatusValue() == status {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BookingActions returns the operator actions legal for a booking request
// in the given status. Approved and rejected expose nothing.
func BookingActions(status string) []string {
	if status == BookingStatusPending {
		return []string{"approve", "reject"}
	}
	return nil
}

// AgentActions returns the operator actions legal for an agent in the
// given status
func AgentActions(status string) []string {
	if status == AgentStatusPending {
		return []string{"approve", "reject"}
	}
	return nil
}

// ServiceRequestActions returns the operator actions legal for a service
// request in the given status
func ServiceRequestActions(status string) []string {
	switch status {
	case ServiceStatusReceived:
		return []string{"start", "complete", "cancel"}
	case ServiceStatusInProgress:
		return []string{"complete", "cancel"}
	default:
		return nil
	}
}

// CanTransitionServiceRequest reports whether moving a service request
// from one status to another is legal
func CanTransitionServiceRequest(from, to string) bool {
	switch from {
	case ServiceStatusReceived:
		return to == ServiceStatusInProgress || to == ServiceStatusCompleted || to == ServiceStatusCancelled
	case ServiceStatusInProgress:
		return to == ServiceStatusCompleted || to == ServiceStatusCancelled
	default:
		// completed and cancelled are terminal
		return false
	}
}
