package update_booking_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // pending | confirmed | completed | cancelled
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
