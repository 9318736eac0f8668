package httpapi

import "net/http"

type workoutRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleWorkoutList(w http.ResponseWriter, r *http.Request) {
	result, err := s.workouts.List(r.Context(), principalFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleWorkoutGet(w http.ResponseWriter, r *http.Request) {
	workout, err := s.workouts.Get(r.Context(), principalFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleWorkoutCreate(w http.ResponseWriter, r *http.Request) {
	var req workoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	workout, err := s.workouts.Create(r.Context(), principalFrom(r.Context()), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleWorkoutUpdate(w http.ResponseWriter, r *http.Request) {
	var req workoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	workout, err := s.workouts.Update(r.Context(), principalFrom(r.Context()), pathID(r, "id"), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleWorkoutDelete(w http.ResponseWriter, r *http.Request) {
	workout, err := s.workouts.Delete(r.Context(), principalFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}
