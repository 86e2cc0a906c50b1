package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/malla/internal/domain"
	"github.com/alexanderramin/malla/internal/repository"
)

const prefSelectedMencion = "selected_mencion"

type mencionService struct {
	prefs    repository.PreferenceRepo
	observer UseCaseObserver
}

func NewMencionService(prefs repository.PreferenceRepo, observers ...UseCaseObserver) MencionService {
	return &mencionService{prefs: prefs, observer: useCaseObserverOrNoop(observers)}
}

func (s *mencionService) List() []domain.Mencion {
	return append([]domain.Mencion(nil), domain.Menciones...)
}

func (s *mencionService) Select(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "select-mencion", map[string]any{"mencion": id})(&err)

	if _, ok := domain.FindMencion(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMencion, id)
	}
	return s.prefs.Set(ctx, prefSelectedMencion, id)
}

func (s *mencionService) Clear(ctx context.Context) error {
	return s.prefs.Delete(ctx, prefSelectedMencion)
}

func (s *mencionService) Selected(ctx context.Context) (*domain.Mencion, error) {
	id, err := selectedMencionID(ctx, s.prefs)
	if err != nil || id == "" {
		return nil, err
	}
	m, ok := domain.FindMencion(id)
	if !ok {
		// A stored id that no longer exists behaves as "none selected".
		return nil, nil
	}
	return &m, nil
}

// selectedMencionID returns "" when nothing is stored.
func selectedMencionID(ctx context.Context, prefs repository.PreferenceRepo) (string, error) {
	id, err := prefs.Get(ctx, prefSelectedMencion)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading selected mención: %w", err)
	}
	return id, nil
}
