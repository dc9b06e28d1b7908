package handler

import (
	"time"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// Field presence is checked by the session service, not the validator.
type loginRequest struct {
	Username string `json:"username" validate:"max=128"`
	Password string `json:"password" validate:"max=128"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"max=256"`
	Email    string `json:"email"    validate:"max=256"`
	Address  string `json:"address"  validate:"max=512"`
	Position string `json:"position" validate:"max=32"`
	Password string `json:"password" validate:"max=128"`
}

type navigateRequest struct {
	View string `json:"view" validate:"required,max=64"`
}

type sessionResponse struct {
	Session  domain.Session   `json:"session"`
	NavItems []domain.NavItem `json:"nav_items"`
}

type openSessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	sessionResponse
}

type navResponse struct {
	Role  domain.Role      `json:"role"`
	Items []domain.NavItem `json:"items"`
}

type summaryResponse struct {
	Status string `json:"status"`
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

func toSessionResponse(ov *ports.SessionOverview) sessionResponse {
	items := ov.NavItems
	if items == nil {
		items = []domain.NavItem{}
	}
	return sessionResponse{Session: ov.Session, NavItems: items}
}

func toSummaryResponse(st *domain.SummaryState) summaryResponse {
	resp := summaryResponse{Status: string(st.Status), Text: st.DisplayText()}
	if st.Result != nil {
		resp.Source = string(st.Result.Source)
	}
	return resp
}
