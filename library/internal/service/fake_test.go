package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/repository"
	"github.com/Astemirdum/library-lending/pkg/kafka"
)

// memRepo is an in-memory repository.Repository. Transactions run one at a
// time and roll back by restoring a snapshot.
type memRepo struct {
	mu      sync.Mutex
	books   map[int]model.Book
	records []model.BorrowRecord
	users   []model.User
	nextID  int
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo(books ...model.Book) *memRepo {
	r := &memRepo{books: map[int]model.Book{}, nextID: 1000}
	for _, b := range books {
		r.books[b.ID] = b
	}
	return r
}

func (r *memRepo) id() int {
	r.nextID++
	return r.nextID
}

func (r *memRepo) InTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	books := make(map[int]model.Book, len(r.books))
	for k, v := range r.books {
		books[k] = v
	}
	records := append([]model.BorrowRecord(nil), r.records...)
	nextID := r.nextID

	if err := fn(memTx{r}); err != nil {
		r.books, r.records, r.nextID = books, records, nextID
		return err
	}
	return nil
}

type memTx struct{ r *memRepo }

func (t memTx) GetBook(_ context.Context, id int) (model.Book, error) {
	b, ok := t.r.books[id]
	if !ok {
		return model.Book{}, errs.ErrBookNotFound
	}
	return b, nil
}

func (t memTx) UpdateAvailability(_ context.Context, bookID int, from, to bool) (bool, error) {
	b, ok := t.r.books[bookID]
	if !ok || b.IsAvailable != from {
		return false, nil
	}
	b.IsAvailable = to
	t.r.books[bookID] = b
	return true, nil
}

func (t memTx) CreateRecord(_ context.Context, bookID, userID int, borrowedAt time.Time) (model.BorrowRecord, error) {
	for _, rec := range t.r.records {
		if rec.BookID == bookID && rec.IsOpen() {
			return model.BorrowRecord{}, errs.ErrBookNotAvailable
		}
	}
	rec := model.BorrowRecord{ID: t.r.id(), BookID: bookID, UserID: userID, BorrowedAt: borrowedAt}
	t.r.records = append(t.r.records, rec)
	return rec, nil
}

func (t memTx) GetOpenRecord(_ context.Context, bookID, userID int) (model.BorrowRecord, error) {
	for _, rec := range t.r.records {
		if rec.BookID == bookID && rec.UserID == userID && rec.IsOpen() {
			return rec, nil
		}
	}
	return model.BorrowRecord{}, errs.ErrRecordNotFound
}

func (t memTx) CloseRecord(_ context.Context, recordID int, returnedAt time.Time) error {
	for i, rec := range t.r.records {
		if rec.ID == recordID && rec.IsOpen() {
			at := returnedAt
			t.r.records[i].ReturnedAt = &at
			return nil
		}
	}
	return errs.ErrRecordNotFound
}

func (r *memRepo) GetBook(ctx context.Context, id int) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return memTx{r}.GetBook(ctx, id)
}

func (r *memRepo) ListBooks(_ context.Context, f model.BookFilter) ([]model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Book{}
	for _, b := range r.books {
		if f.Available != nil && b.IsAvailable != *f.Available {
			continue
		}
		if f.Archived != nil && b.IsArchived != *f.Archived {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) CreateBook(_ context.Context, b model.Book) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.id()
	r.books[b.ID] = b
	return b, nil
}

func (r *memRepo) SetArchived(_ context.Context, id int, archived bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return errs.ErrBookNotFound
	}
	b.IsArchived = archived
	r.books[id] = b
	return nil
}

func (r *memRepo) ListRecords(_ context.Context, f model.RecordFilter) ([]model.BorrowRecordView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.BorrowRecordView{}
	for _, rec := range r.records {
		if f.UserID != nil && rec.UserID != *f.UserID {
			continue
		}
		if f.OngoingOnly && !rec.IsOpen() {
			continue
		}
		b := r.books[rec.BookID]
		out = append(out, model.BorrowRecordView{
			ID:         rec.ID,
			BookID:     rec.BookID,
			Title:      b.Title,
			Author:     b.Author,
			BorrowedAt: rec.BorrowedAt,
			ReturnedAt: rec.ReturnedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].BorrowedAt.Equal(out[j].BorrowedAt) {
			return out[i].BorrowedAt.After(out[j].BorrowedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memRepo) CreateUser(_ context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return model.User{}, errs.ErrEmailInUse
		}
	}
	u.ID = r.id()
	u.CreatedAt = time.Now()
	r.users = append(r.users, u)
	return u, nil
}

func (r *memRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) FindUserByLogin(_ context.Context, identifier string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.ToLower(u.Email) == identifier {
			return u, nil
		}
	}
	for _, u := range r.users {
		if strings.ToLower(u.Username) == identifier {
			return u, nil
		}
	}
	return model.User{}, errs.ErrNotFound
}

func (r *memRepo) BorrowedBooks(_ context.Context, userID int) ([]model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[int]bool{}
	out := []model.Book{}
	for _, rec := range r.records {
		if rec.UserID == userID && !seen[rec.BookID] {
			seen[rec.BookID] = true
			out = append(out, r.books[rec.BookID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) RecommendationCandidates(_ context.Context, userID int) ([]model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	borrowed := map[int]bool{}
	for _, rec := range r.records {
		if rec.UserID == userID {
			borrowed[rec.BookID] = true
		}
	}
	out := []model.Book{}
	for _, b := range r.books {
		if b.IsAvailable && !b.IsArchived && !borrowed[b.ID] {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// checkConsistency reports book ids whose flag disagrees with their open loans.
func (r *memRepo) checkConsistency() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	open := map[int]int{}
	for _, rec := range r.records {
		if rec.IsOpen() {
			open[rec.BookID]++
		}
	}
	var bad []int
	for id, b := range r.books {
		if open[id] > 1 || b.IsAvailable == (open[id] == 1) {
			bad = append(bad, id)
		}
	}
	return bad
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.EventLending
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev kafka.EventLending) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}
