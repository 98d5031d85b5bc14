package validators

import (
	"context"

	"github.com/MKhiriev/video-blog/models"
)

// Field names understood by VideoValidator.
const (
	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldDescription = "description"
)

// VideoValidator validates video payloads and identifiers.
//
// Supported values:
//   - models.NewVideo: name and description are required
//   - models.VideoUpdate: only the provided fields are checked
//   - models.Video: any of id, user_id, name, description (defaults to all)
type VideoValidator struct{}

func NewVideoValidator() Validator {
	return &VideoValidator{}
}

func (v *VideoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewVideo:
		return v.validateNewVideo(value, fields...)
	case *models.NewVideo:
		return v.validateNewVideo(*value, fields...)
	case models.VideoUpdate:
		return v.validateVideoUpdate(value, fields...)
	case *models.VideoUpdate:
		return v.validateVideoUpdate(*value, fields...)
	case models.Video:
		return v.validateVideo(value, fields...)
	case *models.Video:
		return v.validateVideo(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *VideoValidator) validateNewVideo(video models.NewVideo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldName:
			errs.add(FieldName, checkLength(video.Name, MaxVideoNameLength))
		case FieldDescription:
			errs.add(FieldDescription, checkLength(video.Description, MaxVideoDescriptionLength))
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

// an empty update is valid and leaves the record unchanged.
func (v *VideoValidator) validateVideoUpdate(update models.VideoUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil {
				errs.add(FieldName, checkLength(*update.Name, MaxVideoNameLength))
			}
		case FieldDescription:
			if update.Description != nil {
				errs.add(FieldDescription, checkLength(*update.Description, MaxVideoDescriptionLength))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *VideoValidator) validateVideo(video models.Video, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldName, FieldDescription}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldID:
			errs.add(FieldID, checkID(video.ID, ErrInvalidVideoID))
		case FieldUserID:
			errs.add(FieldUserID, checkID(video.UserID, ErrInvalidUserID))
		case FieldName:
			errs.add(FieldName, checkLength(video.Name, MaxVideoNameLength))
		case FieldDescription:
			errs.add(FieldDescription, checkLength(video.Description, MaxVideoDescriptionLength))
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}
