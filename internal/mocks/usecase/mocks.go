// Package usecase provides testify mock implementations of the usecase
// interfaces for use in delivery-layer tests.
package usecase

import (
	"context"
	"io"

	"medmatch/internal/domain/entity"
	"medmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a mock implementation of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func (m *MockAccountUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.Account, error) {
	args := m.Called(ctx, input)
	if acc, ok := args.Get(0).(*entity.Account); ok {
		return acc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Account, error) {
	args := m.Called(ctx, input)
	if acc, ok := args.Get(0).(*entity.Account); ok {
		return acc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) GenerateRefreshToken(ctx context.Context, email, id string) (string, error) {
	args := m.Called(ctx, email, id)

	return args.String(0), args.Error(1)
}

func (m *MockAccountUsecase) GenerateAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)

	return args.String(0), args.Error(1)
}

func (m *MockAccountUsecase) IssueTokens(ctx context.Context, email, id string) (*usecase.TokenPair, error) {
	args := m.Called(ctx, email, id)
	if pair, ok := args.Get(0).(*usecase.TokenPair); ok {
		return pair, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockProfileUsecase is a mock implementation of usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) GetOwnUser(ctx context.Context, accountID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, accountID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) UpdateOwnUser(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	args := m.Called(ctx, accountID, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) CreateStudentProfile(ctx context.Context, accountID uuid.UUID, input *usecase.StudentProfileInput) (*entity.User, error) {
	args := m.Called(ctx, accountID, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) UpdateStudentProfile(ctx context.Context, accountID uuid.UUID, input *usecase.StudentProfileInput) (*entity.User, error) {
	args := m.Called(ctx, accountID, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) CreateProfessionalProfile(ctx context.Context, accountID uuid.UUID, input *usecase.ProfessionalProfileInput) (*entity.User, error) {
	args := m.Called(ctx, accountID, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) UpdateProfessionalProfile(ctx context.Context, accountID uuid.UUID, input *usecase.ProfessionalProfileInput) (*entity.User, error) {
	args := m.Called(ctx, accountID, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) GenerateProfileQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockFileUsecase is a mock implementation of usecase.FileUsecase.
type MockFileUsecase struct {
	mock.Mock
}

func (m *MockFileUsecase) Upload(ctx context.Context, input *usecase.UploadFileInput) (*entity.File, error) {
	args := m.Called(ctx, input)
	if file, ok := args.Get(0).(*entity.File); ok {
		return file, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFileUsecase) List(ctx context.Context, accountID uuid.UUID) ([]*entity.File, error) {
	args := m.Called(ctx, accountID)
	if files, ok := args.Get(0).([]*entity.File); ok {
		return files, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFileUsecase) Download(ctx context.Context, accountID, fileID uuid.UUID) (*entity.File, io.ReadCloser, error) {
	args := m.Called(ctx, accountID, fileID)
	file, _ := args.Get(0).(*entity.File)
	rc, _ := args.Get(1).(io.ReadCloser)

	return file, rc, args.Error(2)
}

func (m *MockFileUsecase) Delete(ctx context.Context, accountID, fileID uuid.UUID) error {
	args := m.Called(ctx, accountID, fileID)

	return args.Error(0)
}
