package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/server/services"
)

const wrongCredentials = "Wrong credentials"

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrAuthentication) {
			writeError(w, r, http.StatusUnauthorized, wrongCredentials)
			return
		}
		s.logger.Error(r.Context(), "login", "error", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	writeJSON(w, r, http.StatusOK, tokenResponse{Status: "Success", AccessToken: token})
}

// changePassword answers a wrong old password with 400, never 401: the
// caller's token is still good and must not be dropped by the client.
func (s *HTTPServer) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.users.ChangePassword(r.Context(), claimsFrom(r.Context()), req.Username, req.OldPassword, req.NewPassword)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, tokenResponse{Status: "Success", AccessToken: token})
	case errors.Is(err, services.ErrWrongPassword):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeError(w, r, http.StatusForbidden, "cannot change another user's password")
	default:
		s.logger.Error(r.Context(), "change password", "error", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to change password")
	}
}

func (s *HTTPServer) logout(w http.ResponseWriter, r *http.Request) {
	all := r.URL.Query().Has("all")
	if err := s.users.Logout(r.Context(), claimsFrom(r.Context()), all); err != nil {
		s.logger.Error(r.Context(), "logout", "error", err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, genericResponse{Status: "Success"})
}
