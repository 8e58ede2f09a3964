package dto

// AdminGateLoginDTO for POST /api/admin/login
type AdminGateLoginDTO struct {
	Password string `json:"password" binding:"required"`
}

// AdminGateSessionResponse reports whether the caller holds an active
// admin-panel gate session. The gate is a UI convenience only; it grants
// no API privilege.
type AdminGateSessionResponse struct {
	Active bool `json:"active"`
}
