package usecase

import (
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/repo/persistent"
	"portfolio-api/internal/repo/storage"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/queue"

	"github.com/google/uuid"
)

type MediaUseCase interface {
	Upload(ctx context.Context, upload entity.MediaUpload) (*entity.MediaRecord, error)
	List(ctx context.Context, filter entity.MediaFilter) ([]*entity.MediaRecord, error)
	Update(ctx context.Context, id string, patch entity.MediaPatch) (*entity.MediaRecord, error)
	Delete(ctx context.Context, id string) error
}

type mediaUseCase struct {
	mediaRepo persistent.MediaRepository
	files     storage.FileStorage
	publisher EventPublisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewMediaUseCase(
	mediaRepo persistent.MediaRepository,
	files storage.FileStorage,
	publisher EventPublisher,
	logger *logger.Logger,
) MediaUseCase {
	return &mediaUseCase{
		mediaRepo: mediaRepo,
		files:     files,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (uc *mediaUseCase) Upload(ctx context.Context, upload entity.MediaUpload) (*entity.MediaRecord, error) {
	class, canonicalExt, ok := entity.ClassifyContentType(upload.ContentType)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an accepted image or video type", entity.ErrInvalidFileType, upload.ContentType)
	}
	if len(upload.Data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", entity.ErrInvalidInput)
	}

	mediaType, _, _ := mime.ParseMediaType(upload.ContentType)
	filename := uuid.New().String() + entity.StoredExtension(upload.OriginalName, class, canonicalExt)

	path, err := uc.files.Save(ctx, filename, upload.Data, mediaType)
	if err != nil {
		uc.logger.Error("Failed to store upload %s: %v", filename, err)
		return nil, fmt.Errorf("%w: %v", entity.ErrStorage, err)
	}

	category := strings.TrimSpace(upload.Category)
	if category == "" {
		category = entity.DefaultMediaCategory
	}

	rec := &entity.MediaRecord{
		ID:          uuid.New().String(),
		Filename:    filename,
		FilePath:    path,
		FileType:    class,
		ContentType: mediaType,
		Size:        int64(len(upload.Data)),
		Category:    category,
		Description: upload.Description,
		CreatedAt:   uc.now().Truncate(time.Microsecond),
	}

	if err := uc.mediaRepo.Create(ctx, rec); err != nil {
		uc.logger.Error("Failed to save media record, removing %s: %v", path, err)
		if delErr := uc.files.Delete(ctx, path); delErr != nil {
			uc.logger.Error("Failed to remove orphaned file %s: %v", path, delErr)
		}
		return nil, fmt.Errorf("failed to save media: %w", err)
	}

	publishEvent(ctx, uc.publisher, uc.logger, queue.EventMediaUploaded, map[string]interface{}{
		"id":        rec.ID,
		"file_path": rec.FilePath,
		"file_type": rec.FileType,
		"category":  rec.Category,
	})
	uc.logger.Info("Media uploaded: id=%s type=%s size=%d", rec.ID, rec.FileType, rec.Size)
	return rec, nil
}

func (uc *mediaUseCase) List(ctx context.Context, filter entity.MediaFilter) ([]*entity.MediaRecord, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	records, err := uc.mediaRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	if records == nil {
		records = []*entity.MediaRecord{}
	}
	return records, nil
}

func (uc *mediaUseCase) Update(ctx context.Context, id string, patch entity.MediaPatch) (*entity.MediaRecord, error) {
	rec, err := uc.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(rec)
	if err := uc.mediaRepo.UpdateMetadata(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update media: %w", err)
	}
	return rec, nil
}

// Delete removes the record first; the stored file goes only after that succeeds.
func (uc *mediaUseCase) Delete(ctx context.Context, id string) error {
	rec, err := uc.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.mediaRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete media record: %w", err)
	}
	if err := uc.files.Delete(ctx, rec.FilePath); err != nil {
		uc.logger.Error("Media record %s deleted but file %s remains: %v", id, rec.FilePath, err)
		return fmt.Errorf("%w: record deleted but file %s could not be removed: %v", entity.ErrStorage, rec.FilePath, err)
	}
	uc.logger.Info("Media deleted: id=%s", id)
	return nil
}
