package api

import "net/http"

func (s *HTTPServer) listSystems(w http.ResponseWriter, r *http.Request) {
	names, err := s.systems.Names(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "list systems", "error", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch external systems")
		return
	}
	writeJSON(w, r, http.StatusOK, names)
}

// registerSystem is the only response that ever carries the access key.
func (s *HTTPServer) registerSystem(w http.ResponseWriter, r *http.Request) {
	var req systemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	key, err := s.systems.Register(r.Context(), req.SystemName)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Error(r.Context(), "register system", "error", err)
		}
		writeError(w, r, status, err.Error())
		return
	}

	s.logger.Info(r.Context(), "system registered", "system", req.SystemName)
	writeJSON(w, r, http.StatusCreated, registrationResponse{SystemName: req.SystemName, AccessKey: key})
}

func (s *HTTPServer) deleteSystem(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid system name")
		return
	}
	if err := (systemRequest{SystemName: name}).Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.systems.Delete(r.Context(), name); err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}

	s.logger.Info(r.Context(), "system deleted", "system", name)
	writeJSON(w, r, http.StatusOK, genericResponse{Status: "Success"})
}

func (s *HTTPServer) authenticateSystem(w http.ResponseWriter, r *http.Request) {
	var req systemAuthRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := s.systems.Verify(r.Context(), req.SystemName, req.AccessKey)
	if err != nil {
		s.logger.Error(r.Context(), "verify system", "error", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to authenticate service")
		return
	}
	if !ok {
		writeError(w, r, http.StatusUnauthorized, wrongCredentials)
		return
	}

	token, err := s.users.OpenSystemSession(r.Context(), req.SystemName)
	if err != nil {
		s.logger.Error(r.Context(), "open system session", "error", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to authenticate service")
		return
	}
	writeJSON(w, r, http.StatusOK, tokenResponse{Status: "Success", AccessToken: token})
}
