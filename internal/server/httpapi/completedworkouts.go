package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/server/services"
)

func (s *Server) handleCompletedWorkoutList(w http.ResponseWriter, r *http.Request) {
	result, err := s.completedWorkouts.List(r.Context(), principalFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type startWorkoutRequest struct {
	WorkoutID int64     `json:"workoutId"`
	Date      time.Time `json:"date"`
}

func (s *Server) handleCompletedWorkoutStart(w http.ResponseWriter, r *http.Request) {
	var req startWorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	cw, err := s.completedWorkouts.Start(r.Context(), principalFrom(r.Context()), req.WorkoutID, req.Date)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cw)
}

func (s *Server) handleCompletedWorkoutGet(w http.ResponseWriter, r *http.Request) {
	cw, err := s.completedWorkouts.Get(r.Context(), principalFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cw)
}

type updateCompletedWorkoutRequest struct {
	WorkoutID *int64     `json:"workoutId"`
	Date      *time.Time `json:"date"`
}

func (s *Server) handleCompletedWorkoutUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateCompletedWorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	cw, err := s.completedWorkouts.Update(r.Context(), principalFrom(r.Context()), pathID(r, "id"), services.UpdateCompletedWorkoutParams{
		WorkoutID: req.WorkoutID,
		Date:      req.Date,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cw)
}

func (s *Server) handleCompletedWorkoutDelete(w http.ResponseWriter, r *http.Request) {
	cw, err := s.completedWorkouts.Delete(r.Context(), principalFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cw)
}
