package httpapi

import "net/http"

type exerciseRequest struct {
	Name     string `json:"name"`
	MuscleID int64  `json:"muscleId"`
}

func (s *Server) handleExerciseList(w http.ResponseWriter, r *http.Request) {
	result, err := s.exercises.List(r.Context(), principalFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleExerciseGet(w http.ResponseWriter, r *http.Request) {
	exercise, err := s.exercises.Get(r.Context(), principalFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercise)
}

func (s *Server) handleExerciseCreate(w http.ResponseWriter, r *http.Request) {
	var req exerciseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	exercise, err := s.exercises.Create(r.Context(), principalFrom(r.Context()), req.Name, req.MuscleID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercise)
}

func (s *Server) handleExerciseUpdate(w http.ResponseWriter, r *http.Request) {
	var req exerciseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	exercise, err := s.exercises.Update(r.Context(), principalFrom(r.Context()), pathID(r, "id"), req.Name, req.MuscleID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercise)
}

func (s *Server) handleExerciseDelete(w http.ResponseWriter, r *http.Request) {
	exercise, err := s.exercises.Delete(r.Context(), principalFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercise)
}
