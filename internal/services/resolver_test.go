package services

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories"
	"github.com/fsdevblog/shortcode/internal/services/mocks"
)

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		record  *models.ShortURL
		repoErr error
		wantErr error
	}{
		{name: "found", record: &models.ShortURL{ShortCode: "abcd", OriginalURL: "https://example.com"}},
		{name: "not found", repoErr: fmt.Errorf("x: %w", repositories.ErrNotFound), wantErr: ErrRecordNotFound},
		{name: "store fault", repoErr: fmt.Errorf("x: %w", repositories.ErrUnknown), wantErr: ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			urls := mocks.NewMockShortURLRepository(ctrl)
			urls.EXPECT().GetByShortCode(gomock.Any(), "abcd").Return(tt.record, tt.repoErr)

			got, err := NewResolver(urls, zap.NewNop()).Resolve(t.Context(), "abcd")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://example.com", got.OriginalURL)
		})
	}
}
