package handler

import (
	"time"

	"github.com/spendy/ledger/internal/core/aggregate"
	"github.com/spendy/ledger/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signupRequest struct {
	Name            string `json:"name"             validate:"required"`
	Email           string `json:"email"            validate:"required"`
	Password        string `json:"password"         validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse never carries the password.
type userResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user"`
}

type sessionResponse struct {
	User *userResponse `json:"user"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{Name: u.Name, Email: u.Email}
}

// --- Transactions ---

type recordTransactionRequest struct {
	Title    string     `json:"title"    validate:"required"`
	Amount   string     `json:"amount"   validate:"required"`
	Category string     `json:"category"`
	Type     string     `json:"type"     validate:"required,oneof=income expense"`
	Date     *time.Time `json:"date"`
}

type transactionListResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// --- Categories ---

type addCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon" validate:"required"`
}

type categoryListResponse struct {
	Categories []domain.Category `json:"categories"`
}

// --- Summaries ---

type overviewResponse struct {
	aggregate.Overview
	DaysInMonth int `json:"days_in_month"`
}
