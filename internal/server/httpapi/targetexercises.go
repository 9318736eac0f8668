package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/fittrack/internal/server/services"
)

// exerciseParamsRequest is shared by target and completed exercises; the two
// differ only in validation thresholds, which the services own.
type exerciseParamsRequest struct {
	ExerciseID   int64   `json:"exerciseId"`
	ExerciseType string  `json:"exerciseType"`
	Unilateral   bool    `json:"unilateral"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Load         float64 `json:"load"`
}

func (req *exerciseParamsRequest) params() services.ExerciseParams {
	return services.ExerciseParams{
		ExerciseID:   req.ExerciseID,
		ExerciseType: req.ExerciseType,
		Unilateral:   req.Unilateral,
		Sets:         req.Sets,
		Reps:         req.Reps,
		Load:         req.Load,
	}
}

func (s *Server) handleTargetExerciseGet(w http.ResponseWriter, r *http.Request) {
	te, err := s.targetExercises.Get(r.Context(), principalFrom(r.Context()), pathID(r, "workoutId"), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, te)
}

func (s *Server) handleTargetExerciseCreate(w http.ResponseWriter, r *http.Request) {
	var req exerciseParamsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	te, err := s.targetExercises.Create(r.Context(), principalFrom(r.Context()), pathID(r, "workoutId"), req.params())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, te)
}

func (s *Server) handleTargetExerciseUpdate(w http.ResponseWriter, r *http.Request) {
	var req exerciseParamsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	te, err := s.targetExercises.Update(r.Context(), principalFrom(r.Context()), pathID(r, "workoutId"), pathID(r, "id"), req.params())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, te)
}

func (s *Server) handleTargetExerciseDelete(w http.ResponseWriter, r *http.Request) {
	te, err := s.targetExercises.Delete(r.Context(), principalFrom(r.Context()), pathID(r, "workoutId"), pathID(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, te)
}
