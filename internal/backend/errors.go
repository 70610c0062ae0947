package backend

// ServiceError carries the reason text of a failed service call; the
// reason is shown to the user verbatim.
type ServiceError struct {
	Status int
	Reason string
}

func (e *ServiceError) Error() string { return e.Reason }
