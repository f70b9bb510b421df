// Package repository provides testify mock implementations of the domain
// repository interfaces for use in unit tests.
package repository

import (
	"context"

	"medmatch/internal/domain/entity"
	"medmatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) AccountRepo() repository.AccountRepository {
	args := m.Called()

	return args.Get(0).(repository.AccountRepository)
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) FileRepo() repository.FileRepository {
	args := m.Called()

	return args.Get(0).(repository.FileRepository)
}

// MockAccountRepository is a mock implementation of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if acc, ok := args.Get(0).(*entity.Account); ok {
		return acc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if acc, ok := args.Get(0).(*entity.Account); ok {
		return acc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, accountID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) CreateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockUserRepository) UpdateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockUserRepository) CreateProfessionalProfile(ctx context.Context, profile *entity.ProfessionalProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfessionalProfile(ctx context.Context, profile *entity.ProfessionalProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

// MockFileRepository is a mock implementation of repository.FileRepository.
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	args := m.Called(ctx, id)
	if file, ok := args.Get(0).(*entity.File); ok {
		return file, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFileRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.File, error) {
	args := m.Called(ctx, accountID)
	if files, ok := args.Get(0).([]*entity.File); ok {
		return files, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFileRepository) Create(ctx context.Context, file *entity.File) error {
	args := m.Called(ctx, file)

	return args.Error(0)
}

func (m *MockFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
