// Package httpapi exposes the application services over a chi-routed REST
// surface.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/logging"
	"github.com/dmitrijs2005/fittrack/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	address   string
	logger    logging.Logger
	jwtSecret []byte

	users              *services.UserService
	muscles            *services.MuscleService
	exercises          *services.ExerciseService
	workouts           *services.WorkoutService
	targetExercises    *services.TargetExerciseService
	completedWorkouts  *services.CompletedWorkoutService
	completedExercises *services.CompletedExerciseService
}

func NewServer(
	address string,
	l logging.Logger,
	secretKey string,
	us *services.UserService,
	ms *services.MuscleService,
	es *services.ExerciseService,
	ws *services.WorkoutService,
	tes *services.TargetExerciseService,
	cws *services.CompletedWorkoutService,
	ces *services.CompletedExerciseService,
) *Server {
	return &Server{
		address:            address,
		logger:             l.With("module", "http_server"),
		jwtSecret:          []byte(secretKey),
		users:              us,
		muscles:            ms,
		exercises:          es,
		workouts:           ws,
		targetExercises:    tes,
		completedWorkouts:  cws,
		completedExercises: ces,
	}
}

// Routes builds the full routing table. Signup and login are the only
// anonymous endpoints; everything else sits behind the authenticate
// middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(api chi.Router) {
		api.Post("/users", s.handleRegister)
		api.Post("/login", s.handleLogin)

		api.Group(func(authed chi.Router) {
			authed.Use(s.authenticate)

			authed.Get("/users", s.handleUserList)
			authed.Get("/users/me", s.handleUserMe)
			authed.Put("/users/me", s.handleUserUpdateMe)
			authed.Delete("/users/{id}", s.handleUserDelete)

			authed.Get("/muscles", s.handleMuscleList)
			authed.Post("/muscles", s.handleMuscleCreate)
			authed.Get("/muscles/{id}", s.handleMuscleGet)
			authed.Put("/muscles/{id}", s.handleMuscleUpdate)
			authed.Delete("/muscles/{id}", s.handleMuscleDelete)

			authed.Get("/exercises", s.handleExerciseList)
			authed.Post("/exercises", s.handleExerciseCreate)
			authed.Get("/exercises/{id}", s.handleExerciseGet)
			authed.Put("/exercises/{id}", s.handleExerciseUpdate)
			authed.Delete("/exercises/{id}", s.handleExerciseDelete)

			authed.Get("/workouts", s.handleWorkoutList)
			authed.Post("/workouts", s.handleWorkoutCreate)
			authed.Get("/workouts/{id}", s.handleWorkoutGet)
			authed.Put("/workouts/{id}", s.handleWorkoutUpdate)
			authed.Delete("/workouts/{id}", s.handleWorkoutDelete)

			authed.Post("/workouts/{workoutId}/target_exercises", s.handleTargetExerciseCreate)
			authed.Get("/workouts/{workoutId}/target_exercises/{id}", s.handleTargetExerciseGet)
			authed.Put("/workouts/{workoutId}/target_exercises/{id}", s.handleTargetExerciseUpdate)
			authed.Delete("/workouts/{workoutId}/target_exercises/{id}", s.handleTargetExerciseDelete)

			authed.Get("/completed_workouts", s.handleCompletedWorkoutList)
			authed.Post("/completed_workouts", s.handleCompletedWorkoutStart)
			authed.Get("/completed_workouts/{id}", s.handleCompletedWorkoutGet)
			authed.Put("/completed_workouts/{id}", s.handleCompletedWorkoutUpdate)
			authed.Delete("/completed_workouts/{id}", s.handleCompletedWorkoutDelete)

			authed.Post("/completed_workouts/{completedWorkoutId}/completed_exercises", s.handleCompletedExerciseCreate)
			authed.Get("/completed_workouts/{completedWorkoutId}/completed_exercises/{id}", s.handleCompletedExerciseGet)
			authed.Put("/completed_workouts/{completedWorkoutId}/completed_exercises/{id}", s.handleCompletedExerciseUpdate)
			authed.Delete("/completed_workouts/{completedWorkoutId}/completed_exercises/{id}", s.handleCompletedExerciseDelete)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
