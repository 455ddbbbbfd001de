package leave

import "context"

// LeaveService covers the request lifecycle for both leave and official-work
// requests. The attendance resolver reads the approved intervals through
// LeaveRequestRepository directly.
type LeaveService interface {
	// Create files a new request of the given kind. Status always starts
	// pending regardless of what the client sends.
	Create(ctx context.Context, kind Kind, req CreateRequest) (RequestResponse, error)

	// ListBySection lists requests visible to the caller's section.
	ListBySection(ctx context.Context, kind Kind, erpID int64) ([]RequestResponse, error)

	// Act approves or rejects a pending request.
	Act(ctx context.Context, req ActionRequest) error
}
