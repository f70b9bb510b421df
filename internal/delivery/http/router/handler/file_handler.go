package handler

import (
	"fmt"
	"net/http"
	"time"

	"medmatch/internal/delivery/http/response"
	"medmatch/internal/domain/entity"
	"medmatch/internal/errors"
	"medmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FileHandler holds dependencies for file handlers.
type FileHandler struct {
	uc usecase.FileUsecase
}

// NewFileHandler is the constructor for FileHandler, injected by Fx.
func NewFileHandler(uc usecase.FileUsecase) *FileHandler {
	return &FileHandler{uc: uc}
}

type fileResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toFileResponse(file *entity.File) fileResponse {
	return fileResponse{
		ID:          file.ID.String(),
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        file.Size,
		CreatedAt:   file.CreatedAt,
	}
}

// Upload stores a multipart file for the authenticated account.
func (h *FileHandler) Upload(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A file part named 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file, err := h.uc.Upload(c.Request().Context(), &usecase.UploadFileInput{
		AccountID:   accountID,
		Name:        fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Content:     src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toFileResponse(file), "File uploaded successfully")
}

// List returns the authenticated account's file metadata, newest first.
func (h *FileHandler) List(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	files, err := h.uc.List(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]fileResponse, 0, len(files))
	for _, file := range files {
		resp = append(resp, toFileResponse(file))
	}

	return response.Success(c, http.StatusOK, resp, "Files retrieved successfully")
}

// Download streams the file content back to its owner.
func (h *FileHandler) Download(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	fileID, err := uuid.Parse(c.Param("file_id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid file ID")
	}

	file, content, err := h.uc.Download(c.Request().Context(), accountID, fileID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer content.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))

	return c.Stream(http.StatusOK, file.ContentType, content)
}

// Delete removes a file's metadata and stored content.
func (h *FileHandler) Delete(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	fileID, err := uuid.Parse(c.Param("file_id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid file ID")
	}

	if err := h.uc.Delete(c.Request().Context(), accountID, fileID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "File deleted successfully")
}
