package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/recommend"
	"github.com/Astemirdum/library-lending/pkg/auth"
)

func (s *Service) Recommend(ctx context.Context, p auth.Principal, topK int) ([]int, error) {
	if topK <= 0 {
		topK = recommend.DefaultTopK
	}
	if topK > recommend.MaxTopK {
		topK = recommend.MaxTopK
	}

	var positives, candidates []model.Book
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		positives, err = s.repo.BorrowedBooks(gctx, p.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		candidates, err = s.repo.RecommendationCandidates(gctx, p.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recommend.Rank(positives, candidates, topK), nil
}
