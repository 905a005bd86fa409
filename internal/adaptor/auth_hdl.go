package adaptor

import (
	"context"

	"feedback-desk/internal/data/entity"
	"feedback-desk/internal/dto/request"
	"feedback-desk/internal/dto/response"
	"feedback-desk/internal/usecase"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	prompt  *utils.Prompter
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, prompt *utils.Prompter, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		prompt:  prompt,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register asks for the profile fields only when the role is customer.
func (h *AuthHandler) Register(ctx context.Context) error {
	var req request.RegisterRequest
	var err error

	utils.ResponseSuccess(h.prompt.Writer(), "****REGISTER****")
	if req.Username, err = h.prompt.Ask("Enter username: "); err != nil {
		return err
	}
	if req.Password, err = h.prompt.Ask("Enter password: "); err != nil {
		return err
	}
	if req.Role, err = h.prompt.Ask("Enter your role(admin/customer): "); err != nil {
		return err
	}

	if entity.UserRole(req.Role) == entity.RoleCustomer {
		if req.Fullname, err = h.prompt.Ask("Enter full name: "); err != nil {
			return err
		}
		if req.Phone, err = h.prompt.Ask("Enter phone number: "); err != nil {
			return err
		}
	}

	if _, err := h.service.Register(ctx, &req); err != nil {
		return storageFailure(h.log, "register", err)
	}

	utils.ResponseSuccess(h.prompt.Writer(), "User registered successfully")
	return nil
}

// Login returns the authenticated user; the caller opens the session.
func (h *AuthHandler) Login(ctx context.Context) (*response.AuthResponse, error) {
	var req request.LoginRequest
	var err error

	if req.Username, err = h.prompt.Ask("Enter username: "); err != nil {
		return nil, err
	}
	if req.Password, err = h.prompt.Ask("Enter password: "); err != nil {
		return nil, err
	}
	if req.Role, err = h.prompt.Ask("Role(admin/customer): "); err != nil {
		return nil, err
	}

	user, err := h.service.Login(ctx, &req)
	if err != nil {
		return nil, storageFailure(h.log, "login", err)
	}

	utils.ResponseSuccess(h.prompt.Writer(), "Login successful. Welcome "+user.Username)
	return user, nil
}
