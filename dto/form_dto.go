package dto

type CreateFormDTO struct {
	FormType   string         `json:"form_type" binding:"required"`
	OwnerName  string         `json:"owner_name" binding:"required"`
	Department string         `json:"department"`
	Details    map[string]any `json:"details"`
	Status     string         `json:"status"`
}

// UpdateFormDTO deliberately omits form_type (immutable after creation) and
// status (changed only through the dedicated status endpoint).
type UpdateFormDTO struct {
	OwnerName  string         `json:"owner_name" binding:"required"`
	Department string         `json:"department"`
	Details    map[string]any `json:"details"`
}

type UpdateFormStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

type EmailFormDTO struct {
	ID    uint   `json:"id" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}
