package postgres

import (
	"context"

	"medmatch/internal/domain/entity"
	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/domain/repository"
	"medmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// fileRepository implements the domain.FileRepository interface using GORM.
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository is the constructor for fileRepository.
func NewFileRepository(db *gorm.DB) repository.FileRepository {
	return &fileRepository{db: db}
}

// FindByID retrieves a single file record by its unique ID.
func (repo *fileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	var fileM model.FileModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&fileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to find file by id")
	}

	return toFileDomain(&fileM), nil
}

// ListByAccountID retrieves all file records owned by the given account, newest first.
func (repo *fileRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.File, error) {
	var fileModels []*model.FileModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&fileModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list files by account id")
	}

	files := make([]*entity.File, 0, len(fileModels))
	for _, fileM := range fileModels {
		files = append(files, toFileDomain(fileM))
	}

	return files, nil
}

// Create persists a new file record.
func (repo *fileRepository) Create(ctx context.Context, file *entity.File) error {
	fileM := fromFileDomain(file)

	if err := repo.db.WithContext(ctx).Create(fileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create file record")
	}

	file.ID = fileM.ID
	file.CreatedAt = fileM.CreatedAt

	return nil
}

// Delete removes the file record with the given ID.
func (repo *fileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete file record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFileDomain converts a GORM FileModel to a domain File entity.
func toFileDomain(data *model.FileModel) *entity.File {
	if data == nil {
		return nil
	}

	return &entity.File{
		ID:          data.ID,
		AccountID:   data.AccountID,
		Name:        data.Name,
		ContentType: data.ContentType,
		Size:        data.Size,
		StorageKey:  data.StorageKey,
		CreatedAt:   data.CreatedAt,
	}
}

// fromFileDomain converts a domain File entity to a GORM FileModel for persistence.
func fromFileDomain(data *entity.File) *model.FileModel {
	if data == nil {
		return nil
	}

	return &model.FileModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		Name:        data.Name,
		ContentType: data.ContentType,
		Size:        data.Size,
		StorageKey:  data.StorageKey,
		CreatedAt:   data.CreatedAt,
	}
}
