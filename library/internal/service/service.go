package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/events"
	"github.com/Astemirdum/library-lending/library/internal/repository"
	"github.com/Astemirdum/library-lending/pkg/auth"
)

type TokenIssuer interface {
	Issue(p auth.Principal) (string, time.Time, error)
}

type Options struct {
	// AllowArchivedBorrow lets archived books that are still available be borrowed.
	AllowArchivedBorrow bool
	BcryptCost          int
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	tokens    TokenIssuer
	publisher events.Publisher
	opts      Options
	now       func() time.Time
}

func NewService(repo repository.Repository, tokens TokenIssuer, publisher events.Publisher, opts Options, log *zap.Logger) *Service {
	return &Service{
		log:       log.Named("service"),
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		opts:      opts,
		now:       time.Now,
	}
}
