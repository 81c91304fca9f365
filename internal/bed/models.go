package bed

// Bed statuses
const (
	StatusVacant   = "Vacant"
	StatusOccupied = "Occupied"
)

// CreateBedRequest represents the request to add a new bed. The bed_id is
// user-chosen, not generated.
type CreateBedRequest struct {
	BedID  int    `json:"bed_id"`
	Ward   string `json:"ward"`
	Room   string `json:"room"`
	Status string `json:"status"`
}

// UpdateBedRequest represents the request to edit a bed
type UpdateBedRequest struct {
	Ward   *string `json:"ward,omitempty"`
	Room   *string `json:"room,omitempty"`
	Status *string `json:"status,omitempty"`
}

// BedResponse represents the bed data returned to clients
type BedResponse struct {
	BedID  int    `json:"bed_id"`
	Ward   string `json:"ward"`
	Room   string `json:"room"`
	Status string `json:"status"`
}

// BedListResponse wraps a bed listing with the vacant count
type BedListResponse struct {
	Success     bool          `json:"success"`
	Beds        []BedResponse `json:"beds"`
	Total       int           `json:"total"`
	VacantCount int           `json:"vacant_count"`
}
