package response

import "github.com/nwfth/forms-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserInfo struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	IsDomainUser bool   `json:"isDomainUser"`
}

type TokenResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type CreateFormResponse struct {
	Message    string `json:"message"`
	InsertedID uint   `json:"insertedId"`
}

type FormResponse struct {
	Message string      `json:"message"`
	Form    models.Form `json:"form"`
}

// TypeSummary aggregates one form type for the dashboard.
type TypeSummary struct {
	FormType string  `json:"form_type"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
}

type SummaryResponse struct {
	Types    []TypeSummary  `json:"types"`
	Statuses map[string]int `json:"statuses"`
}
