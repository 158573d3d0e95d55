package http

import "github.com/jiraclone/taskboard-backend/internal/accounts/service"

type Handler struct {
	accounts *service.AccountService
}

func New(accounts *service.AccountService) *Handler {
	return &Handler{accounts: accounts}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
