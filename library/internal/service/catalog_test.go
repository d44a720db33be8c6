package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

func TestService_AddBook(t *testing.T) {
	t.Parallel()
	pages := 412
	tests := []struct {
		name    string
		req     model.AddBookRequest
		wantErr error
	}{
		{
			name: "ok",
			req:  model.AddBookRequest{Title: " Dune ", Author: "Frank Herbert", Genre: "Science Fiction", Page: &pages},
		},
		{
			name:    "blank title",
			req:     model.AddBookRequest{Title: "   ", Author: "Frank Herbert"},
			wantErr: errs.ErrTitleAuthorRequired,
		},
		{
			name:    "missing author",
			req:     model.AddBookRequest{Title: "Dune"},
			wantErr: errs.ErrTitleAuthorRequired,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := newMemRepo()
			s := newTestService(repo, &recordingPublisher{}, Options{})

			book, err := s.AddBook(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Dune", book.Title)
			require.True(t, book.IsAvailable)
			require.False(t, book.IsArchived)
			require.Equal(t, &pages, book.PageCount)

			available, err := s.ListAvailable(context.Background())
			require.NoError(t, err)
			require.Equal(t, []model.Book{book}, available)
		})
	}
}

func TestService_ArchiveUnarchive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newMemRepo(dune())
	s := newTestService(repo, &recordingPublisher{}, Options{})

	require.NoError(t, s.Archive(ctx, 10))
	require.NoError(t, s.Archive(ctx, 10))

	available, err := s.ListAvailable(ctx)
	require.NoError(t, err)
	require.Empty(t, available)
	archived, err := s.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	require.True(t, archived[0].IsAvailable)

	require.NoError(t, s.Unarchive(ctx, 10))
	available, err = s.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)

	require.ErrorIs(t, s.Archive(ctx, 404), errs.ErrNotFound)
	require.ErrorIs(t, s.Unarchive(ctx, 404), errs.ErrNotFound)
}

func TestService_ArchiveKeepsLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newMemRepo(dune())
	s := newTestService(repo, &recordingPublisher{}, Options{})

	require.NoError(t, s.BorrowBook(ctx, reader, 10))
	require.NoError(t, s.Archive(ctx, 10))
	require.NoError(t, s.ReturnBook(ctx, reader, 10))

	archived, err := s.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	require.True(t, archived[0].IsAvailable)
	require.Empty(t, repo.checkConsistency())
}
