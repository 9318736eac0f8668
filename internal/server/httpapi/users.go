package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/fittrack/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", user.Username)
	w.Header().Set(common.AuthTokenHeader, token)
	w.Header().Set("Access-Control-Expose-Headers", common.AuthTokenHeader)
	writeJSON(w, http.StatusOK, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set(common.AuthTokenHeader, token)
	w.Header().Set("Access-Control-Expose-Headers", common.AuthTokenHeader)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	result, err := s.users.List(r.Context(), principalFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUserMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Me(r.Context(), principalFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *Server) handleUserUpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.users.UpdateMe(r.Context(), principalFrom(r.Context()), req.Username, req.Email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Delete(r.Context(), principalFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
