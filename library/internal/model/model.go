package model

import (
	"strings"
	"time"
)

type Book struct {
	ID          int      `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Author      string   `json:"author" db:"author"`
	Genre       string   `json:"genre" db:"genre"`
	Description string   `json:"description" db:"description"`
	PageCount   *int     `json:"pageCount" db:"page_count"`
	Rating      *float64 `json:"rating" db:"rating"`
	IsAvailable bool     `json:"isAvailable" db:"is_available"`
	IsArchived  bool     `json:"isArchived" db:"is_archived"`
}

// BookFilter narrows a catalog listing. Nil fields match anything.
type BookFilter struct {
	Available *bool
	Archived  *bool
}

type AddBookRequest struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Author      string   `json:"author" validate:"required,notblank"`
	Genre       string   `json:"genre"`
	Description string   `json:"description"`
	Page        *int     `json:"page" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0"`
}

type BorrowRecord struct {
	ID         int        `json:"id" db:"id"`
	BookID     int        `json:"bookId" db:"book_id"`
	UserID     int        `json:"userId" db:"user_id"`
	BorrowedAt time.Time  `json:"borrowedAt" db:"borrowed_at"`
	ReturnedAt *time.Time `json:"returnedAt" db:"returned_at"`
}

func (r BorrowRecord) IsOpen() bool {
	return r.ReturnedAt == nil
}

// BorrowRecordView is a borrow record joined with its book.
type BorrowRecordView struct {
	ID         int        `json:"id" db:"id"`
	BookID     int        `json:"bookId" db:"book_id"`
	Title      string     `json:"title" db:"title"`
	Author     string     `json:"author" db:"author"`
	BorrowedAt time.Time  `json:"borrowedAt" db:"borrowed_at"`
	ReturnedAt *time.Time `json:"returnedAt" db:"returned_at"`
}

type RecordFilter struct {
	UserID      *int
	OngoingOnly bool
}

type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identifier is the email if given, the username otherwise.
func (r LoginRequest) Identifier() string {
	if strings.TrimSpace(r.Email) != "" {
		return r.Email
	}
	return r.Username
}

type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
	User   UserInfo  `json:"user"`
}
