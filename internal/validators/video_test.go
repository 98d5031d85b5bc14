package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/video-blog/models"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestVideoValidator_Dispatch(t *testing.T) {
	v := NewVideoValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.NoError(t, v.Validate(ctx, models.NewVideo{Name: "n", Description: "d"}))
	assert.NoError(t, v.Validate(ctx, &models.NewVideo{Name: "n", Description: "d"}))
	assert.NoError(t, v.Validate(ctx, models.VideoUpdate{}))
	assert.NoError(t, v.Validate(ctx, &models.VideoUpdate{Name: ptr("n")}))
	assert.NoError(t, v.Validate(ctx, models.Video{ID: 1, UserID: 1, Name: "n", Description: "d"}))
	assert.NoError(t, v.Validate(ctx, &models.Video{ID: 1, UserID: 1, Name: "n", Description: "d"}))
}

func TestVideoValidator_NewVideo(t *testing.T) {
	v := NewVideoValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		video      models.NewVideo
		wantFields []string
	}{
		{"valid at limits", models.NewVideo{Name: strings.Repeat("n", 255), Description: strings.Repeat("d", 500)}, nil},
		{"name too long", models.NewVideo{Name: strings.Repeat("n", 256), Description: "d"}, []string{FieldName}},
		{"description too long", models.NewVideo{Name: "n", Description: strings.Repeat("d", 501)}, []string{FieldDescription}},
		{"both missing", models.NewVideo{}, []string{FieldName, FieldDescription}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.video)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestVideoValidator_VideoUpdate(t *testing.T) {
	v := NewVideoValidator()
	ctx := context.Background()

	t.Run("empty update is valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.VideoUpdate{}))
	})

	t.Run("provided empty name rejected", func(t *testing.T) {
		err := v.Validate(ctx, models.VideoUpdate{Name: ptr("")})
		assert.ErrorIs(t, err, ErrEmptyValue)
		assert.Equal(t, []string{FieldName}, fieldsOf(t, err))
	})

	t.Run("provided description too long", func(t *testing.T) {
		err := v.Validate(ctx, models.VideoUpdate{Description: ptr(strings.Repeat("d", 501))})
		assert.ErrorIs(t, err, ErrValueTooLong)
	})

	t.Run("unknown field", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.VideoUpdate{}, FieldUserID), ErrUnknownField)
	})
}

func TestVideoValidator_VideoIdentifiers(t *testing.T) {
	v := NewVideoValidator()
	ctx := context.Background()

	t.Run("valid ids", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.Video{ID: 3, UserID: 7}, FieldID, FieldUserID))
	})

	t.Run("zero video id", func(t *testing.T) {
		err := v.Validate(ctx, models.Video{ID: 0, UserID: 7}, FieldID, FieldUserID)
		assert.ErrorIs(t, err, ErrInvalidVideoID)
	})

	t.Run("negative owner id", func(t *testing.T) {
		err := v.Validate(ctx, models.Video{ID: 3, UserID: -1}, FieldID, FieldUserID)
		assert.ErrorIs(t, err, ErrInvalidUserID)
		assert.Equal(t, []string{FieldUserID}, fieldsOf(t, err))
	})

	t.Run("owner only", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.Video{UserID: 7}, FieldUserID))
	})
}
