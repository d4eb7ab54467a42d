package http

import (
	"encoding/json"
	"net/http"

	"bazaar-be/internal/logger"
	"bazaar-be/internal/utils"
	"bazaar-be/models"
)

// registerRequest is the payload of POST /api/auth/register.
type registerRequest struct {
	UserName     string `json:"userName" validate:"required"`
	UserPassword string `json:"userPassword" validate:"required"`
	UserType     string `json:"userType" validate:"required,oneof=buyer seller"`
}

// loginRequest is the payload of POST /api/auth/login.
type loginRequest struct {
	UserName     string `json:"userName" validate:"required"`
	UserPassword string `json:"userPassword" validate:"required"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("registration payload failed validation")
		writeFailure(w, "userName, userPassword and userType are required", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Name:     req.UserName,
		Password: req.UserPassword,
		Role:     req.UserType,
	})
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Str("user_type", registeredUser.Role).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Response: models.Response{Success: true, Message: "user registered"},
		UserID:   registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("login payload failed validation")
		writeFailure(w, "userName and userPassword are required", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.UserName, req.UserPassword)
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("user_id", foundUser.UserID).Str("user_type", foundUser.Role).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Response: models.Response{Success: true, Message: "login successful"},
		Token:    token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AuthService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{
		Response: models.Response{Success: true},
		Count:    len(users),
		Users:    users,
	}, http.StatusOK)
}

// writeError maps err onto the HTTP taxonomy and writes the standard failure
// envelope.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	writeFailure(w, messageFromError(err, status), status)
}

func writeFailure(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.Response{Success: false, Message: message}, status)
}
