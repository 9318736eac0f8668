package httpapi

import "net/http"

type muscleRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleMuscleList(w http.ResponseWriter, r *http.Request) {
	result, err := s.muscles.List(r.Context(), principalFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMuscleGet(w http.ResponseWriter, r *http.Request) {
	muscle, err := s.muscles.Get(r.Context(), principalFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, muscle)
}

func (s *Server) handleMuscleCreate(w http.ResponseWriter, r *http.Request) {
	var req muscleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	muscle, err := s.muscles.Create(r.Context(), principalFrom(r.Context()), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, muscle)
}

func (s *Server) handleMuscleUpdate(w http.ResponseWriter, r *http.Request) {
	var req muscleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	muscle, err := s.muscles.Update(r.Context(), principalFrom(r.Context()), pathID(r, "id"), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, muscle)
}

func (s *Server) handleMuscleDelete(w http.ResponseWriter, r *http.Request) {
	muscle, err := s.muscles.Delete(r.Context(), principalFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, muscle)
}
