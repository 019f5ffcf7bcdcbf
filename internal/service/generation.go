package service

import (
	"context"
	"fmt"

	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/domain"
	"quill/internal/dto"
	"quill/internal/logger"
	"quill/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// defaultQuizTitle is used when the caller supplies no topic.
const defaultQuizTitle = "Generated Quiz"

// GenerationService turns source material into a reviewed-to-be quiz
// by delegating to external providers and post-processing the result.
type GenerationService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

// generationService runs the pipeline strictly sequentially per
// request: prompt build, primary call, conditional fallback call,
// parse, filter. Requests from different callers may run concurrently;
// each owns its intermediate state exclusively.
type generationService struct {
	primary   domain.QuestionProvider
	secondary domain.QuestionProvider
	cache     domain.Cache
	cfg       *config.Config
	sfGroup   singleflight.Group
}

// NewGenerationService creates a new GenerationService. The cache may
// be nil, in which case every request reaches a provider.
func NewGenerationService(
	primary domain.QuestionProvider,
	secondary domain.QuestionProvider,
	cacheAdapter domain.Cache,
	cfg *config.Config,
) GenerationService {
	return &generationService{
		primary:   primary,
		secondary: secondary,
		cache:     cacheAdapter,
		cfg:       cfg,
	}
}

// GenerateQuiz implements GenerationService.
func (s *generationService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	sourceContent := req.SourceContent()

	rawText, err := s.rawCompletion(ctx, sourceContent, req.NumQuestions)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(rawText)
	if err != nil {
		return nil, err
	}

	filtered := FilterQuestions(questions, req.AllowedTypes(), req.NumQuestions)
	if len(filtered) < req.NumQuestions {
		// Under-delivery is not an error; the response carries what
		// survived filtering.
		logger.Get().Info("Provider under-delivered requested question count",
			zap.Int("requested", req.NumQuestions),
			zap.Int("delivered", len(filtered)))
	}

	title := req.Topic
	if title == "" {
		title = defaultQuizTitle
	}

	return &dto.GenerateQuizResponse{
		Title:     title,
		Questions: dto.NewQuestionResponses(filtered),
	}, nil
}

// rawCompletion returns the raw provider text for the given source,
// consulting the generation cache first. Identical concurrent requests
// are collapsed into a single provider call so a popular source is
// never billed twice for the same work.
func (s *generationService) rawCompletion(ctx context.Context, sourceContent string, numQuestions int) (string, error) {
	contentHash := util.HashString(fmt.Sprintf("%s|%d", sourceContent, numQuestions))
	cacheKey := cache.GenerateCacheKey("generation", "raw", contentHash)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			logger.Get().Debug("Generation cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Generation cache read failed, falling through to providers",
				zap.String("key", cacheKey),
				zap.Error(err))
		}
	}

	v, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		rawText, err := s.orchestrate(ctx, sourceContent, numQuestions)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if cacheErr := s.cache.Set(ctx, cacheKey, rawText, s.cfg.Cache.GenerationTTL); cacheErr != nil {
				logger.Get().Warn("Failed to cache generation result",
					zap.String("key", cacheKey),
					zap.Error(cacheErr))
			}
		}
		return rawText, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// orchestrate builds the prompt once and walks the provider chain.
// The secondary is called only after the primary has conclusively
// failed; each provider is attempted exactly once per request and the
// two are never raced.
func (s *generationService) orchestrate(ctx context.Context, sourceContent string, numQuestions int) (string, error) {
	prompt := BuildPrompt(sourceContent, numQuestions)

	rawText, primaryErr := s.callProvider(ctx, s.primary, prompt)
	if primaryErr == nil {
		logger.Get().Info("Quiz generated by primary provider",
			zap.String("provider", s.primary.Name()))
		return rawText, nil
	}

	logger.Get().Warn("Primary provider failed, falling back",
		zap.String("primary", s.primary.Name()),
		zap.String("secondary", s.secondary.Name()),
		zap.Error(primaryErr))

	rawText, secondaryErr := s.callProvider(ctx, s.secondary, prompt)
	if secondaryErr == nil {
		logger.Get().Info("Quiz generated by fallback provider",
			zap.String("provider", s.secondary.Name()))
		return rawText, nil
	}

	logger.Get().Error("Both providers failed",
		zap.NamedError("primary_cause", primaryErr),
		zap.NamedError("secondary_cause", secondaryErr))

	return "", &domain.GenerationFailure{
		PrimaryCause:   primaryErr,
		SecondaryCause: secondaryErr,
	}
}

// callProvider bounds a single provider call with the configured
// timeout. A timeout is indistinguishable from any other provider
// failure as far as the fallback decision is concerned.
func (s *generationService) callProvider(ctx context.Context, p domain.QuestionProvider, prompt string) (string, error) {
	if s.cfg.LLM.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.LLM.Timeout)
		defer cancel()
	}
	return p.Generate(ctx, prompt)
}
