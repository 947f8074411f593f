package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories"
	"go.uber.org/zap"
)

const (
	// DefaultAttemptsPerRound сколько коллизий подряд на одной длине считается насыщением.
	DefaultAttemptsPerRound = 3
	// DefaultMaxGrowthRounds после стольких насыщенных раундов аллокация сдается.
	DefaultMaxGrowthRounds = 10
)

type allocState int

const (
	stateGenerating allocState = iota
	stateReserving
	stateGrowing
	stateSucceeded
	stateFailed
)

// AllocatorOptions настройки аллокатора.
type AllocatorOptions struct {
	AttemptsPerRound int           // Попыток резервирования на одной длине
	MaxGrowthRounds  int           // Лимит раундов роста длины за одну аллокацию
	Generator        CodeGenerator // Источник кандидатов
}

// Allocator выдает новые уникальные короткие коды. Собственных блокировок не держит:
// уникальность гарантирует Create реестра, поэтому аллокаторов может быть сколько угодно,
// в том числе в разных процессах над одним хранилищем.
type Allocator struct {
	urls    ShortURLRepository
	lengths *CodeLengthStore
	opts    AllocatorOptions
	logger  *zap.Logger
}

// NewAllocator создает аллокатор.
//
// Параметры:
//   - urls: реестр коротких ссылок
//   - lengths: хранилище текущей длины кода
//   - logger: логгер
//   - opts: функции для настройки аллокатора
//
// Возвращает:
//   - *Allocator: настроенный аллокатор
func NewAllocator(
	urls ShortURLRepository,
	lengths *CodeLengthStore,
	logger *zap.Logger,
	opts ...func(*AllocatorOptions),
) *Allocator {
	options := AllocatorOptions{
		AttemptsPerRound: DefaultAttemptsPerRound,
		MaxGrowthRounds:  DefaultMaxGrowthRounds,
		Generator:        RandomGenerator{},
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.AttemptsPerRound < 1 {
		options.AttemptsPerRound = DefaultAttemptsPerRound
	}
	if options.MaxGrowthRounds < 1 {
		options.MaxGrowthRounds = DefaultMaxGrowthRounds
	}

	return &Allocator{
		urls:    urls,
		lengths: lengths,
		opts:    options,
		logger:  logger.With(zap.String("module", "services/allocator")),
	}
}

// allocation состояние одной аллокации.
type allocation struct {
	state     allocState
	length    int
	attempt   int // номер попытки в текущем раунде
	rounds    int // завершенные насыщенные раунды
	candidate string
	result    *models.ShortURL
	err       error
}

func (a *allocation) fail(err error) {
	a.err = err
	a.state = stateFailed
}

// Allocate резервирует новый код для originalURL. Одинаковые URL не дедуплицируются:
// каждый вызов выдает свой код.
//
// Возвращает:
//   - *models.ShortURL: созданная запись
//   - error: ErrInternal при отказе хранилища (без повторов), ErrCapacityExhausted при
//     исчерпании раундов роста
func (a *Allocator) Allocate(ctx context.Context, originalURL string) (*models.ShortURL, error) {
	st := allocation{state: stateGenerating}

	for {
		switch st.state {
		case stateGenerating:
			a.generate(ctx, &st)
		case stateReserving:
			a.reserve(ctx, &st, originalURL)
		case stateGrowing:
			a.grow(ctx, &st)
		case stateSucceeded:
			return st.result, nil
		case stateFailed:
			return nil, st.err
		}
	}
}

func (a *Allocator) generate(ctx context.Context, st *allocation) {
	if err := ctx.Err(); err != nil {
		st.fail(fmt.Errorf("%w: allocation aborted: %w", ErrInternal, err))
		return
	}

	// Длина перечитывается в начале каждого раунда: ее мог увеличить соседний процесс.
	if st.attempt == 0 {
		length, err := a.lengths.Read(ctx)
		if err != nil {
			a.logger.Error("failed to read short code length", zap.Error(err))
			st.fail(fmt.Errorf("%w: %w", ErrInternal, err))
			return
		}
		st.length = length
	}

	st.candidate = a.opts.Generator.Generate(st.length)
	st.state = stateReserving
}

func (a *Allocator) reserve(ctx context.Context, st *allocation, originalURL string) {
	sURL := &models.ShortURL{ShortCode: st.candidate, OriginalURL: originalURL}
	err := a.urls.Create(ctx, sURL)

	switch {
	case err == nil:
		st.result = sURL
		st.state = stateSucceeded
	case errors.Is(err, repositories.ErrDuplicateKey):
		a.logger.Debug("short code collision",
			zap.String("short_code", st.candidate),
			zap.Int("attempt", st.attempt+1),
		)
		st.attempt++
		if st.attempt >= a.opts.AttemptsPerRound {
			st.state = stateGrowing
			return
		}
		st.state = stateGenerating
	default:
		a.logger.Error("failed to reserve short code",
			zap.String("short_code", st.candidate), zap.Error(err))
		st.fail(fmt.Errorf("%w: %w", ErrInternal, err))
	}
}

// grow увеличивает длину на единицу. Ошибка записи только логируется: аллокация
// продолжится на старой длине и попробует вырасти снова в следующем раунде.
func (a *Allocator) grow(ctx context.Context, st *allocation) {
	st.rounds++
	next := st.length + 1

	if err := a.lengths.Write(ctx, next); err != nil {
		a.logger.Warn("failed to persist grown short code length",
			zap.Int("length", next), zap.Error(err))
	} else {
		a.logger.Info("short code length has been changed", zap.Int("length", next))
	}

	if st.rounds >= a.opts.MaxGrowthRounds {
		a.logger.Error("short code allocation gave up",
			zap.Int("rounds", st.rounds), zap.Int("length", st.length))
		st.fail(fmt.Errorf("%w: %d saturated rounds, last length %d",
			ErrCapacityExhausted, st.rounds, st.length))
		return
	}

	st.attempt = 0
	st.state = stateGenerating
}
