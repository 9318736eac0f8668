package httpapi

import "net/http"

func (s *Server) handleCompletedExerciseGet(w http.ResponseWriter, r *http.Request) {
	ce, err := s.completedExercises.Get(r.Context(), principalFrom(r.Context()), pathID(r, "completedWorkoutId"), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ce)
}

func (s *Server) handleCompletedExerciseCreate(w http.ResponseWriter, r *http.Request) {
	var req exerciseParamsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	ce, err := s.completedExercises.Create(r.Context(), principalFrom(r.Context()), pathID(r, "completedWorkoutId"), req.params())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ce)
}

func (s *Server) handleCompletedExerciseUpdate(w http.ResponseWriter, r *http.Request) {
	var req exerciseParamsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	ce, err := s.completedExercises.Update(r.Context(), principalFrom(r.Context()), pathID(r, "completedWorkoutId"), pathID(r, "id"), req.params())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ce)
}

func (s *Server) handleCompletedExerciseDelete(w http.ResponseWriter, r *http.Request) {
	ce, err := s.completedExercises.Delete(r.Context(), principalFrom(r.Context()), pathID(r, "completedWorkoutId"), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ce)
}
