package handler

import (
	"context"

	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/service"
	"github.com/Astemirdum/library-lending/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	ListAvailable(ctx context.Context) ([]model.Book, error)
	ListArchived(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	AddBook(ctx context.Context, req model.AddBookRequest) (model.Book, error)
	Archive(ctx context.Context, id int) error
	Unarchive(ctx context.Context, id int) error
}

type BorrowService interface {
	BorrowBook(ctx context.Context, p auth.Principal, bookID int) error
	ReturnBook(ctx context.Context, p auth.Principal, bookID int) error
	MyHistory(ctx context.Context, p auth.Principal) ([]model.BorrowRecordView, error)
	MyOngoing(ctx context.Context, p auth.Principal) ([]model.BorrowRecordView, error)
	AllOngoing(ctx context.Context) ([]model.BorrowRecordView, error)
	AllHistory(ctx context.Context) ([]model.BorrowRecordView, error)
	Recommend(ctx context.Context, p auth.Principal, topK int) ([]int, error)
}

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
}

var (
	_ BookService   = (*service.Service)(nil)
	_ BorrowService = (*service.Service)(nil)
	_ AuthService   = (*service.Service)(nil)
)
