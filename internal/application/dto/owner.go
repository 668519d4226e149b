package dto

// SetTimezoneRequest is the DTO for changing an owner's timezone.
type SetTimezoneRequest struct {
	OwnerID  string `json:"owner_id"`
	Timezone string `json:"timezone"` // IANA zone name
}
