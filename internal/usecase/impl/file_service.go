package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"medmatch/config"
	deliverycontext "medmatch/internal/delivery/context"
	"medmatch/internal/domain/entity"
	domainerrors "medmatch/internal/domain/errors"
	"medmatch/internal/domain/repository"
	"medmatch/internal/domain/service"
	"medmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fileService implements the FileUsecase interface.
type fileService struct {
	fileRepo       repository.FileRepository
	storage        service.FileStorage
	maxUploadBytes int64
	logger         *slog.Logger
}

// FileServiceParams holds dependencies for FileService, injected by Fx.
type FileServiceParams struct {
	fx.In

	FileRepo repository.FileRepository
	Storage  service.FileStorage
	Config   *config.Config
	Logger   *slog.Logger
}

// NewFileService is the constructor for fileService.
func NewFileService(params FileServiceParams) usecase.FileUsecase {
	var maxUploadBytes int64
	if params.Config.FileStorage != nil {
		maxUploadBytes = params.Config.FileStorage.MaxUploadBytes
	}

	return &fileService{
		fileRepo:       params.FileRepo,
		storage:        params.Storage,
		maxUploadBytes: maxUploadBytes,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *fileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storageKey builds the bucket key for a new upload. Keys are namespaced per
// account and salted with a fresh UUID so re-uploads never collide.
func storageKey(accountID uuid.UUID, name string) string {
	return fmt.Sprintf("accounts/%s/%s-%s", accountID, uuid.New(), name)
}

// Upload stores the file bytes and records its metadata.
func (srv *fileService) Upload(ctx context.Context, input *usecase.UploadFileInput) (*entity.File, error) {
	if srv.maxUploadBytes > 0 && input.Size > srv.maxUploadBytes {
		srv.log(ctx).Warn("Upload rejected, file too large",
			slog.Any("accountID", input.AccountID),
			slog.Int64("size", input.Size),
		)

		return nil, domainerrors.ErrFileTooLarge
	}

	key := storageKey(input.AccountID, input.Name)

	if err := srv.storage.Save(ctx, key, input.ContentType, input.Content); err != nil {
		srv.log(ctx).Error("Failed to store uploaded file", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store uploaded file")
	}

	file := &entity.File{
		AccountID:   input.AccountID,
		Name:        input.Name,
		ContentType: input.ContentType,
		Size:        input.Size,
		StorageKey:  key,
	}

	if err := srv.fileRepo.Create(ctx, file); err != nil {
		// The metadata insert failed; remove the orphaned object.
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned object", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create file record")
	}

	srv.log(ctx).Info("File uploaded",
		slog.Any("accountID", input.AccountID),
		slog.Any("fileID", file.ID),
		slog.Int64("size", file.Size),
	)

	return file, nil
}

// List returns the metadata of all files owned by the account, newest first.
func (srv *fileService) List(ctx context.Context, accountID uuid.UUID) ([]*entity.File, error) {
	files, err := srv.fileRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list files")
	}

	return files, nil
}

// loadOwnedFile fetches a file record and enforces ownership. A file owned by
// another account is reported as not found, not forbidden, to avoid leaking
// which ids exist.
func (srv *fileService) loadOwnedFile(ctx context.Context, accountID, fileID uuid.UUID) (*entity.File, error) {
	file, err := srv.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("file does not exist")
		}

		return nil, errors.Wrap(err, "failed to find file")
	}

	if file.AccountID != accountID {
		srv.log(ctx).Warn("Cross-account file access denied",
			slog.Any("accountID", accountID),
			slog.Any("fileID", fileID),
		)

		return nil, domainerrors.ErrNotFound.WrapMessage("file does not exist")
	}

	return file, nil
}

// Download returns the metadata and a reader over the file bytes.
func (srv *fileService) Download(ctx context.Context, accountID, fileID uuid.UUID) (*entity.File, io.ReadCloser, error) {
	file, err := srv.loadOwnedFile(ctx, accountID, fileID)
	if err != nil {
		return nil, nil, err
	}

	r, err := srv.storage.Open(ctx, file.StorageKey)
	if err != nil {
		srv.log(ctx).Error("Failed to open stored object", slog.String("key", file.StorageKey), slog.Any("error", err))

		return nil, nil, errors.Wrap(err, "failed to open stored object")
	}

	return file, r, nil
}

// Delete removes both the stored bytes and the metadata record.
func (srv *fileService) Delete(ctx context.Context, accountID, fileID uuid.UUID) error {
	file, err := srv.loadOwnedFile(ctx, accountID, fileID)
	if err != nil {
		return err
	}

	if err := srv.fileRepo.Delete(ctx, fileID); err != nil {
		return errors.Wrap(err, "failed to delete file record")
	}

	// Metadata is authoritative; a failed object delete only leaves an
	// unreachable blob behind.
	if err := srv.storage.Delete(ctx, file.StorageKey); err != nil {
		srv.log(ctx).Warn("Failed to delete stored object", slog.String("key", file.StorageKey), slog.Any("error", err))
	}

	srv.log(ctx).Info("File deleted", slog.Any("accountID", accountID), slog.Any("fileID", fileID))

	return nil
}
