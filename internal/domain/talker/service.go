package talker

import (
	"context"

	"golang.org/x/exp/slog"

	"talkerbase/internal/domain/fault"
)

type Servicer interface {
	List(ctx context.Context) []Talker
	Find(ctx context.Context, id int) (Talker, error)
	Create(ctx context.Context, name string, age int, talk Talk) (Talker, error)
	Update(ctx context.Context, id int, name string, age int, talk Talk) (Talker, error)
	Delete(ctx context.Context, id int) error
}

// Service implements the read-modify-write contract against the repository.
// Every operation reloads the collection, mutates a local copy and writes it
// back in full. There is no locking between concurrent requests: the last
// writer wins and an interleaved write can be lost. Acceptable for the
// single-writer deployments this targets; see DESIGN.md.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "talker_service"),
	}
}

// List returns the whole collection. A store failure degrades to an empty
// result so the read path stays always-200.
func (s *Service) List(ctx context.Context) []Talker {
	all, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("failed to load talkers, serving empty collection", "error", err)
		return []Talker{}
	}
	if all == nil {
		all = []Talker{}
	}
	return all
}

// Find scans the collection for a numeric id. A store failure is treated as
// an empty collection, so it still reports ErrNotFound.
func (s *Service) Find(ctx context.Context, id int) (Talker, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("failed to load talkers", "id", id, "error", err)
		return Talker{}, ErrNotFound
	}

	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return Talker{}, ErrNotFound
}

// Create assigns the next sequential id, appends and persists. IDs are never
// reused after a delete: the next id is one past the highest ever assigned
// still present, not the collection length.
func (s *Service) Create(ctx context.Context, name string, age int, talk Talk) (Talker, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("failed to load talkers for create", "error", err)
		return Talker{}, fault.ErrInternal
	}

	t := Talker{
		ID:   nextID(all),
		Name: name,
		Age:  age,
		Talk: talk,
	}
	all = append(all, t)

	if err := s.repo.Save(ctx, all); err != nil {
		s.log.Error("failed to persist created talker", "id", t.ID, "error", err)
		return Talker{}, fault.ErrInternal
	}

	s.log.Info("talker created", "id", t.ID, "name", t.Name)
	return t, nil
}

// Update replaces the record at the position of the given id. The id is
// preserved; every other field becomes exactly the submitted value.
func (s *Service) Update(ctx context.Context, id int, name string, age int, talk Talk) (Talker, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("failed to load talkers for update", "id", id, "error", err)
		return Talker{}, fault.ErrInternal
	}

	i := indexOf(all, id)
	if i < 0 {
		return Talker{}, ErrNotFound
	}

	all[i] = Talker{ID: id, Name: name, Age: age, Talk: talk}

	if err := s.repo.Save(ctx, all); err != nil {
		s.log.Error("failed to persist updated talker", "id", id, "error", err)
		return Talker{}, fault.ErrInternal
	}

	s.log.Info("talker updated", "id", id)
	return all[i], nil
}

// Delete removes the record with the given id and persists the remainder.
// No cascading effects; remaining ids keep their values, so the sequence may
// stay non-contiguous forever.
func (s *Service) Delete(ctx context.Context, id int) error {
	all, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("failed to load talkers for delete", "id", id, "error", err)
		return fault.ErrInternal
	}

	i := indexOf(all, id)
	if i < 0 {
		return ErrNotFound
	}

	all = append(all[:i], all[i+1:]...)

	if err := s.repo.Save(ctx, all); err != nil {
		s.log.Error("failed to persist delete", "id", id, "error", err)
		return fault.ErrInternal
	}

	s.log.Info("talker deleted", "id", id)
	return nil
}

func nextID(all []Talker) int {
	max := 0
	for _, t := range all {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

func indexOf(all []Talker, id int) int {
	for i, t := range all {
		if t.ID == id {
			return i
		}
	}
	return -1
}
