package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
)

func (s *Store) SaveProject(ctx context.Context, project domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.projects[project.ProjectID]; exists {
		return fmt.Errorf("%w: project %s", apperrors.ErrDuplicate, project.ProjectID)
	}
	s.projects[project.ProjectID] = project
	return nil
}

func (s *Store) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
	}
	return &project, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	projects := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p)
	}
	s.mu.RUnlock()
	sort.Slice(projects, func(i, j int) bool { return projects[i].ProjectName < projects[j].ProjectName })
	return projects, nil
}

func (s *Store) UpdateProject(ctx context.Context, project domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[project.ProjectID]; !ok {
		return fmt.Errorf("%w: project %s", apperrors.ErrNotFound, project.ProjectID)
	}
	s.projects[project.ProjectID] = project
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[projectID]; !ok {
		return fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
	}
	delete(s.projects, projectID)
	return nil
}

func (s *Store) SaveContractor(ctx context.Context, contractor domain.Contractor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.contractors[contractor.ContractorID]; exists {
		return fmt.Errorf("%w: contractor %s", apperrors.ErrDuplicate, contractor.ContractorID)
	}
	s.contractors[contractor.ContractorID] = contractor
	return nil
}

func (s *Store) FindContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contractor, ok := s.contractors[contractorID]
	if !ok {
		return nil, fmt.Errorf("%w: contractor %s", apperrors.ErrNotFound, contractorID)
	}
	return &contractor, nil
}

func (s *Store) ListContractors(ctx context.Context) ([]domain.Contractor, error) {
	s.mu.RLock()
	contractors := make([]domain.Contractor, 0, len(s.contractors))
	for _, c := range s.contractors {
		contractors = append(contractors, c)
	}
	s.mu.RUnlock()
	sort.Slice(contractors, func(i, j int) bool { return contractors[i].ContractorName < contractors[j].ContractorName })
	return contractors, nil
}

func (s *Store) UpdateContractor(ctx context.Context, contractor domain.Contractor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contractors[contractor.ContractorID]; !ok {
		return fmt.Errorf("%w: contractor %s", apperrors.ErrNotFound, contractor.ContractorID)
	}
	s.contractors[contractor.ContractorID] = contractor
	return nil
}

func (s *Store) DeleteContractor(ctx context.Context, contractorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contractors[contractorID]; !ok {
		return fmt.Errorf("%w: contractor %s", apperrors.ErrNotFound, contractorID)
	}
	delete(s.contractors, contractorID)
	return nil
}

// SaveUser inserts or replaces the user.
func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
	return nil
}

func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.RUnlock()
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	delete(s.users, userID)
	return nil
}
