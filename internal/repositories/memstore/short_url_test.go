package memstore

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/shortcode/internal/db/memory"
	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories"
)

type MemstoreSuite struct {
	suite.Suite
	urls     *ShortURLRepo
	settings *SettingsRepo
}

func TestMemstoreSuite(t *testing.T) {
	suite.Run(t, new(MemstoreSuite))
}

func (s *MemstoreSuite) SetupTest() {
	s.urls = NewShortURLRepo(memory.NewMemStorage())
	s.settings = NewSettingsRepo(memory.NewMemStorage())
}

func (s *MemstoreSuite) TestCreateAndGet() {
	rawURL := gofakeit.URL()
	sURL := models.ShortURL{ShortCode: "aB3d", OriginalURL: rawURL}

	s.Require().NoError(s.urls.Create(s.T().Context(), &sURL))
	s.NotZero(sURL.ID)
	s.False(sURL.CreatedAt.IsZero())

	got, err := s.urls.GetByShortCode(s.T().Context(), "aB3d")
	s.Require().NoError(err)
	s.Equal(rawURL, got.OriginalURL)
	s.Equal(sURL.ID, got.ID)
}

func (s *MemstoreSuite) TestCreateDuplicate() {
	first := models.ShortURL{ShortCode: "dup1", OriginalURL: gofakeit.URL()}
	second := models.ShortURL{ShortCode: "dup1", OriginalURL: gofakeit.URL()}

	s.Require().NoError(s.urls.Create(s.T().Context(), &first))
	err := s.urls.Create(s.T().Context(), &second)
	s.ErrorIs(err, repositories.ErrDuplicateKey)

	// первая запись не перезаписана
	got, getErr := s.urls.GetByShortCode(s.T().Context(), "dup1")
	s.Require().NoError(getErr)
	s.Equal(first.OriginalURL, got.OriginalURL)
}

func (s *MemstoreSuite) TestGetNotFound() {
	_, err := s.urls.GetByShortCode(s.T().Context(), "zzzz")
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *MemstoreSuite) TestSettingsUpsert() {
	_, err := s.settings.Get(s.T().Context(), models.ShortCodeLengthKey)
	s.ErrorIs(err, repositories.ErrNotFound)

	s.Require().NoError(s.settings.Upsert(s.T().Context(), models.ShortCodeLengthKey, "5"))
	s.Require().NoError(s.settings.Upsert(s.T().Context(), models.ShortCodeLengthKey, "6"))

	got, err := s.settings.Get(s.T().Context(), models.ShortCodeLengthKey)
	s.Require().NoError(err)
	s.Equal("6", got.Value)
}
