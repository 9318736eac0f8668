package httpapi

import (
	"context"
	"database/sql"
	"sort"

	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/dbx"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	completedexercisesrepo "github.com/dmitrijs2005/fittrack/internal/server/repositories/completedexercises"
	completedworkoutsrepo "github.com/dmitrijs2005/fittrack/internal/server/repositories/completedworkouts"
	exercisesrepo "github.com/dmitrijs2005/fittrack/internal/server/repositories/exercises"
	musclesrepo "github.com/dmitrijs2005/fittrack/internal/server/repositories/muscles"
	repomanager "github.com/dmitrijs2005/fittrack/internal/server/repositories/repomanager"
	targetexercisesrepo "github.com/dmitrijs2005/fittrack/internal/server/repositories/targetexercises"
	usersrepo "github.com/dmitrijs2005/fittrack/internal/server/repositories/users"
	workoutsrepo "github.com/dmitrijs2005/fittrack/internal/server/repositories/workouts"
)

// memStore backs the fake repositories with plain maps so end to end
// request tests do not need a database.
type memStore struct {
	nextID int64

	users              map[int64]*models.User
	muscles            map[int64]*models.Muscle
	exercises          map[int64]*models.Exercise
	workouts           map[int64]*models.Workout
	targetExercises    map[int64]*models.TargetExercise
	completedWorkouts  map[int64]*models.CompletedWorkout
	completedExercises map[int64]*models.CompletedExercise
}

func newMemStore() *memStore {
	return &memStore{
		users:              map[int64]*models.User{},
		muscles:            map[int64]*models.Muscle{},
		exercises:          map[int64]*models.Exercise{},
		workouts:           map[int64]*models.Workout{},
		targetExercises:    map[int64]*models.TargetExercise{},
		completedWorkouts:  map[int64]*models.CompletedWorkout{},
		completedExercises: map[int64]*models.CompletedExercise{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type memUsers struct{ s *memStore }

func (r *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.ID = r.s.id()
	r.s.users[u.ID] = u
	return u, nil
}
func (r *memUsers) Get(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}
func (r *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, id := range sortedIDs(r.s.users) {
		if r.s.users[id].Email == email {
			return r.s.users[id], nil
		}
	}
	return nil, common.ErrorNotFound
}
func (r *memUsers) List(ctx context.Context) ([]*models.User, error) {
	var result []*models.User
	for _, id := range sortedIDs(r.s.users) {
		result = append(result, r.s.users[id])
	}
	return result, nil
}
func (r *memUsers) Update(ctx context.Context, u *models.User) (*models.User, error) {
	r.s.users[u.ID] = u
	return u, nil
}
func (r *memUsers) Delete(ctx context.Context, id int64) error {
	delete(r.s.users, id)
	return nil
}

type memMuscles struct{ s *memStore }

func (r *memMuscles) List(ctx context.Context) ([]*models.Muscle, error) {
	var result []*models.Muscle
	for _, id := range sortedIDs(r.s.muscles) {
		result = append(result, r.s.muscles[id])
	}
	return result, nil
}
func (r *memMuscles) Get(ctx context.Context, id int64) (*models.Muscle, error) {
	if m, ok := r.s.muscles[id]; ok {
		return m, nil
	}
	return nil, common.ErrorNotFound
}
func (r *memMuscles) Create(ctx context.Context, m *models.Muscle) (*models.Muscle, error) {
	m.ID = r.s.id()
	r.s.muscles[m.ID] = m
	return m, nil
}
func (r *memMuscles) Update(ctx context.Context, m *models.Muscle) (*models.Muscle, error) {
	r.s.muscles[m.ID] = m
	return m, nil
}
func (r *memMuscles) Delete(ctx context.Context, id int64) error {
	delete(r.s.muscles, id)
	return nil
}

type memExercises struct{ s *memStore }

func (r *memExercises) List(ctx context.Context) ([]*models.Exercise, error) {
	var result []*models.Exercise
	for _, id := range sortedIDs(r.s.exercises) {
		result = append(result, r.s.exercises[id])
	}
	return result, nil
}
func (r *memExercises) Get(ctx context.Context, id int64) (*models.Exercise, error) {
	if e, ok := r.s.exercises[id]; ok {
		return e, nil
	}
	return nil, common.ErrorNotFound
}
func (r *memExercises) Create(ctx context.Context, e *models.Exercise) (*models.Exercise, error) {
	e.ID = r.s.id()
	r.s.exercises[e.ID] = e
	return e, nil
}
func (r *memExercises) Update(ctx context.Context, e *models.Exercise) (*models.Exercise, error) {
	r.s.exercises[e.ID] = e
	return e, nil
}
func (r *memExercises) Delete(ctx context.Context, id int64) error {
	delete(r.s.exercises, id)
	return nil
}

type memWorkouts struct{ s *memStore }

func (r *memWorkouts) ListByUser(ctx context.Context, userID int64) ([]*models.Workout, error) {
	var result []*models.Workout
	for _, id := range sortedIDs(r.s.workouts) {
		if r.s.workouts[id].UserID == userID {
			result = append(result, r.s.workouts[id])
		}
	}
	return result, nil
}
func (r *memWorkouts) Get(ctx context.Context, id int64) (*models.Workout, error) {
	if w, ok := r.s.workouts[id]; ok {
		return w, nil
	}
	return nil, common.ErrorNotFound
}
func (r *memWorkouts) Create(ctx context.Context, w *models.Workout) (*models.Workout, error) {
	w.ID = r.s.id()
	r.s.workouts[w.ID] = w
	return w, nil
}
func (r *memWorkouts) Update(ctx context.Context, w *models.Workout) (*models.Workout, error) {
	r.s.workouts[w.ID] = w
	return w, nil
}
func (r *memWorkouts) Delete(ctx context.Context, id int64) error {
	delete(r.s.workouts, id)
	return nil
}

type memTargetExercises struct{ s *memStore }

func (r *memTargetExercises) Get(ctx context.Context, id int64) (*models.TargetExercise, error) {
	if te, ok := r.s.targetExercises[id]; ok {
		return te, nil
	}
	return nil, common.ErrorNotFound
}
func (r *memTargetExercises) ListByWorkout(ctx context.Context, workoutID int64) ([]*models.TargetExercise, error) {
	var result []*models.TargetExercise
	for _, id := range sortedIDs(r.s.targetExercises) {
		if r.s.targetExercises[id].WorkoutID == workoutID {
			result = append(result, r.s.targetExercises[id])
		}
	}
	return result, nil
}
func (r *memTargetExercises) ListByOwner(ctx context.Context, userID int64) ([]*models.TargetExercise, error) {
	var result []*models.TargetExercise
	for _, id := range sortedIDs(r.s.targetExercises) {
		te := r.s.targetExercises[id]
		if w, ok := r.s.workouts[te.WorkoutID]; ok && w.UserID == userID {
			result = append(result, te)
		}
	}
	return result, nil
}
func (r *memTargetExercises) Create(ctx context.Context, te *models.TargetExercise) (*models.TargetExercise, error) {
	te.ID = r.s.id()
	r.s.targetExercises[te.ID] = te
	return te, nil
}
func (r *memTargetExercises) Update(ctx context.Context, te *models.TargetExercise) (*models.TargetExercise, error) {
	r.s.targetExercises[te.ID] = te
	return te, nil
}
func (r *memTargetExercises) Delete(ctx context.Context, id int64) error {
	delete(r.s.targetExercises, id)
	return nil
}
func (r *memTargetExercises) DeleteByWorkout(ctx context.Context, workoutID int64) error {
	for id, te := range r.s.targetExercises {
		if te.WorkoutID == workoutID {
			delete(r.s.targetExercises, id)
		}
	}
	return nil
}

type memCompletedWorkouts struct{ s *memStore }

func (r *memCompletedWorkouts) ListByUser(ctx context.Context, userID int64) ([]*models.CompletedWorkout, error) {
	var result []*models.CompletedWorkout
	for _, id := range sortedIDs(r.s.completedWorkouts) {
		if r.s.completedWorkouts[id].UserID == userID {
			result = append(result, r.s.completedWorkouts[id])
		}
	}
	return result, nil
}
func (r *memCompletedWorkouts) Get(ctx context.Context, id int64) (*models.CompletedWorkout, error) {
	if cw, ok := r.s.completedWorkouts[id]; ok {
		return cw, nil
	}
	return nil, common.ErrorNotFound
}
func (r *memCompletedWorkouts) Create(ctx context.Context, cw *models.CompletedWorkout) (*models.CompletedWorkout, error) {
	cw.ID = r.s.id()
	r.s.completedWorkouts[cw.ID] = cw
	return cw, nil
}
func (r *memCompletedWorkouts) Update(ctx context.Context, cw *models.CompletedWorkout) (*models.CompletedWorkout, error) {
	r.s.completedWorkouts[cw.ID] = cw
	return cw, nil
}
func (r *memCompletedWorkouts) Delete(ctx context.Context, id int64) error {
	delete(r.s.completedWorkouts, id)
	return nil
}

type memCompletedExercises struct{ s *memStore }

func (r *memCompletedExercises) Get(ctx context.Context, id int64) (*models.CompletedExercise, error) {
	if ce, ok := r.s.completedExercises[id]; ok {
		return ce, nil
	}
	return nil, common.ErrorNotFound
}
func (r *memCompletedExercises) ListByCompletedWorkout(ctx context.Context, completedWorkoutID int64) ([]*models.CompletedExercise, error) {
	var result []*models.CompletedExercise
	for _, id := range sortedIDs(r.s.completedExercises) {
		if r.s.completedExercises[id].CompletedWorkoutID == completedWorkoutID {
			result = append(result, r.s.completedExercises[id])
		}
	}
	return result, nil
}
func (r *memCompletedExercises) ListByOwner(ctx context.Context, userID int64) ([]*models.CompletedExercise, error) {
	var result []*models.CompletedExercise
	for _, id := range sortedIDs(r.s.completedExercises) {
		ce := r.s.completedExercises[id]
		if cw, ok := r.s.completedWorkouts[ce.CompletedWorkoutID]; ok && cw.UserID == userID {
			result = append(result, ce)
		}
	}
	return result, nil
}
func (r *memCompletedExercises) Create(ctx context.Context, ce *models.CompletedExercise) (*models.CompletedExercise, error) {
	ce.ID = r.s.id()
	r.s.completedExercises[ce.ID] = ce
	return ce, nil
}
func (r *memCompletedExercises) CreateBatch(ctx context.Context, ces []*models.CompletedExercise) error {
	for _, ce := range ces {
		if _, err := r.Create(ctx, ce); err != nil {
			return err
		}
	}
	return nil
}
func (r *memCompletedExercises) Update(ctx context.Context, ce *models.CompletedExercise) (*models.CompletedExercise, error) {
	r.s.completedExercises[ce.ID] = ce
	return ce, nil
}
func (r *memCompletedExercises) Delete(ctx context.Context, id int64) error {
	delete(r.s.completedExercises, id)
	return nil
}
func (r *memCompletedExercises) DeleteByCompletedWorkout(ctx context.Context, completedWorkoutID int64) error {
	for id, ce := range r.s.completedExercises {
		if ce.CompletedWorkoutID == completedWorkoutID {
			delete(r.s.completedExercises, id)
		}
	}
	return nil
}

// memRepoManager ignores the DBTX handle, so transactional flows run
// against the shared store under a mocked sql transaction.
type memRepoManager struct{ s *memStore }

func (m *memRepoManager) Users(dbx.DBTX) usersrepo.Repository     { return &memUsers{s: m.s} }
func (m *memRepoManager) Muscles(dbx.DBTX) musclesrepo.Repository { return &memMuscles{s: m.s} }
func (m *memRepoManager) Exercises(dbx.DBTX) exercisesrepo.Repository {
	return &memExercises{s: m.s}
}
func (m *memRepoManager) Workouts(dbx.DBTX) workoutsrepo.Repository { return &memWorkouts{s: m.s} }
func (m *memRepoManager) TargetExercises(dbx.DBTX) targetexercisesrepo.Repository {
	return &memTargetExercises{s: m.s}
}
func (m *memRepoManager) CompletedWorkouts(dbx.DBTX) completedworkoutsrepo.Repository {
	return &memCompletedWorkouts{s: m.s}
}
func (m *memRepoManager) CompletedExercises(dbx.DBTX) completedexercisesrepo.Repository {
	return &memCompletedExercises{s: m.s}
}
func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

var _ repomanager.RepositoryManager = (*memRepoManager)(nil)
