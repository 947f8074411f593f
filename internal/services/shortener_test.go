package services

import (
	"regexp"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortcode/internal/db"
	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories/memstore"
)

var alnumRegex = regexp.MustCompile(`^[0-9A-Za-z]+$`)

type URLServiceSuite struct {
	suite.Suite
	store   *db.MemoryStorage
	service *URLService
}

func TestURLServiceSuite(t *testing.T) {
	suite.Run(t, new(URLServiceSuite))
}

func (s *URLServiceSuite) SetupTest() {
	s.store = db.NewMemStorage()
	s.service = newMemoryURLService(s.store)
}

func newMemoryURLService(store *db.MemoryStorage) *URLService {
	return NewURLService(
		memstore.NewShortURLRepo(store.URLs),
		memstore.NewSettingsRepo(store.Settings),
		zap.NewNop(),
	)
}

func (s *URLServiceSuite) TestRegisterAndResolve() {
	ctx := s.T().Context()

	sURL, err := s.service.Register(ctx, "https://example.com")
	s.Require().NoError(err)
	s.Len(sURL.ShortCode, models.DefaultShortCodeLength)
	s.Regexp(alnumRegex, sURL.ShortCode)

	got, err := s.service.Resolve(ctx, sURL.ShortCode)
	s.Require().NoError(err)
	s.Equal("https://example.com", got.OriginalURL)

	if sURL.ShortCode != "zzzz" {
		_, err = s.service.Resolve(ctx, "zzzz")
		s.ErrorIs(err, ErrRecordNotFound)
	}
}

func (s *URLServiceSuite) TestSameURLTwiceGetsDistinctCodes() {
	ctx := s.T().Context()
	rawURL := gofakeit.URL()

	first, err := s.service.Register(ctx, rawURL)
	s.Require().NoError(err)
	second, err := s.service.Register(ctx, rawURL)
	s.Require().NoError(err)

	s.NotEqual(first.ShortCode, second.ShortCode)
}

func (s *URLServiceSuite) TestIdempotentResolve() {
	ctx := s.T().Context()
	rawURL := gofakeit.URL()
	sURL, err := s.service.Register(ctx, rawURL)
	s.Require().NoError(err)

	for range 5 {
		got, resolveErr := s.service.Resolve(ctx, sURL.ShortCode)
		s.Require().NoError(resolveErr)
		s.Equal(rawURL, got.OriginalURL)
	}
}

// Длина 1 дает всего 62 кода: конкурентная регистрация обязана вырастить длину
// и при этом не выдать ни одного дубля.
func (s *URLServiceSuite) TestConcurrentRegisterGrowsLength() {
	ctx := s.T().Context()
	s.Require().NoError(memstore.NewSettingsRepo(s.store.Settings).
		Upsert(ctx, models.ShortCodeLengthKey, "1"))

	const workers = 200
	type result struct {
		code, rawURL string
		err          error
	}
	var wg sync.WaitGroup
	results := make(chan result, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rawURL := gofakeit.URL()
			sURL, err := s.service.Register(ctx, rawURL)
			if err != nil {
				results <- result{err: err}
				return
			}
			results <- result{code: sURL.ShortCode, rawURL: rawURL}
		}()
	}
	wg.Wait()
	close(results)

	codes := make(map[string]string, workers)
	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		codes[r.code] = r.rawURL
	}

	s.Require().Empty(errs)
	s.Len(codes, workers)

	for code, rawURL := range codes {
		got, err := s.service.Resolve(ctx, code)
		s.Require().NoError(err)
		s.Equal(rawURL, got.OriginalURL)
	}

	length, err := NewCodeLengthStore(memstore.NewSettingsRepo(s.store.Settings), zap.NewNop()).Read(ctx)
	s.Require().NoError(err)
	s.Greater(length, 1)
}
