package service

import (
	"context"

	"wearly-be/internal/dto"
	"wearly-be/internal/pkg/logger"
	"wearly-be/internal/store"
	"wearly-be/pkg/stylist"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var (
	errImageTooLarge = dto.NewValidationError("Image must be less than 10MB. Please choose a smaller file.")
	errBadImageType  = dto.NewValidationError("Only JPEG, PNG, and WebP images are allowed.")
)

type IUploadService interface {
	UploadUserImage(ctx context.Context, sess *store.Session, filename, contentType string, data []byte) (*dto.UploadImageResponse, error)
}

type uploadService struct {
	stylist  *stylist.Client
	sessions *store.SessionStore
	logger   logger.ILogger
}

func NewUploadService(stylistClient *stylist.Client, sessions *store.SessionStore, sysLogger logger.ILogger) IUploadService {
	return &uploadService{
		stylist:  stylistClient,
		sessions: sessions,
		logger:   sysLogger,
	}
}

// UploadUserImage guards size and media type before anything touches the
// network, then sends the photo upstream. The photo is marked selected
// optimistically and rolled back on failure so a broken upload never looks
// active.
func (s *uploadService) UploadUserImage(ctx context.Context, sess *store.Session, filename, contentType string, data []byte) (*dto.UploadImageResponse, error) {
	if int64(len(data)) > maxUploadBytes {
		return nil, errImageTooLarge
	}
	if !allowedImageTypes[contentType] {
		return nil, errBadImageType
	}

	sess.SelectedPhoto = filename
	s.sessions.Save(sess)

	result, err := s.stylist.UploadUserImage(ctx, sess.AssistantSessionId, filename, data)
	if err != nil {
		s.logger.Error("upload", "image upload failed", map[string]interface{}{
			"error":    err.Error(),
			"filename": filename,
		})

		sess.SelectedPhoto = ""
		s.sessions.Save(sess)
		return nil, err
	}

	sess.UserImageId = result.ImageId
	sess.UserImageURL = result.URL
	s.sessions.Save(sess)

	s.logger.Info("upload", "image uploaded", map[string]interface{}{
		"image_id": result.ImageId,
	})

	return &dto.UploadImageResponse{
		ImageId: result.ImageId,
		URL:     result.URL,
	}, nil
}
