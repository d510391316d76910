package handler

import (
	"encoding/json"
	"net/http"

	"planio/internal/auth"

	"gorm.io/gorm"
)

type MeHandler struct {
	DB *gorm.DB
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var p auth.Profile
	if err := h.DB.Where("id = ?", uid).First(&p).Error; err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"user_id":   p.ID,
		"email":     p.Email,
		"full_name": p.FullName,
	})
}
