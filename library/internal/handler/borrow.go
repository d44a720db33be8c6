package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/recommend"
	"github.com/Astemirdum/library-lending/pkg/auth"
)

func principal(c echo.Context) (auth.Principal, error) {
	p, err := auth.PrincipalFrom(c.Request().Context())
	if err != nil {
		return auth.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return p, nil
}

// Borrow godoc
// @Summary borrow a book
// @Tags borrow
// @Security BearerAuth
// @Produce plain
// @Param bookId path int true "book id"
// @Success 200 {string} string
// @Failure 400,401,404 {object} echo.HTTPError
// @Router /borrow/{bookId} [post]
func (h *Handler) Borrow(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	bookID, err := paramID(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.borrowSvc.BorrowBook(c.Request().Context(), p, bookID); err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, "Book borrowed successfully.")
}

// Return godoc
// @Summary return a borrowed book
// @Tags borrow
// @Security BearerAuth
// @Produce plain
// @Param bookId path int true "book id"
// @Success 200 {string} string
// @Failure 400,401,404 {object} echo.HTTPError
// @Router /borrow/return/{bookId} [post]
func (h *Handler) Return(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	bookID, err := paramID(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.borrowSvc.ReturnBook(c.Request().Context(), p, bookID); err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, "Book returned successfully.")
}

// @Summary caller's borrow history, newest first
// @Tags borrow
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.BorrowRecordView
// @Failure 401 {object} echo.HTTPError
// @Router /borrow/my/all [get]
func (h *Handler) MyHistory(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	records, err := h.borrowSvc.MyHistory(c.Request().Context(), p)
	return h.records(c, records, err)
}

// @Summary caller's open loans
// @Tags borrow
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.BorrowRecordView
// @Failure 401 {object} echo.HTTPError
// @Router /borrow/my/ongoing [get]
func (h *Handler) MyOngoing(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	records, err := h.borrowSvc.MyOngoing(c.Request().Context(), p)
	return h.records(c, records, err)
}

// @Summary every open loan
// @Tags borrow
// @Produce json
// @Success 200 {array} model.BorrowRecordView
// @Router /borrow/all/ongoing [get]
func (h *Handler) AllOngoing(c echo.Context) error {
	records, err := h.borrowSvc.AllOngoing(c.Request().Context())
	return h.records(c, records, err)
}

// @Summary every borrow record
// @Tags borrow
// @Produce json
// @Success 200 {array} model.BorrowRecordView
// @Router /borrow/all/history [get]
func (h *Handler) AllHistory(c echo.Context) error {
	records, err := h.borrowSvc.AllHistory(c.Request().Context())
	return h.records(c, records, err)
}

func (h *Handler) records(c echo.Context, records []model.BorrowRecordView, err error) error {
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, records)
}

// Recommend godoc
// @Summary book ids recommended from the caller's history
// @Tags borrow
// @Security BearerAuth
// @Produce json
// @Param topK query int false "number of ids" default(3)
// @Success 200 {array} int
// @Failure 400,401 {object} echo.HTTPError
// @Router /borrow/recommendations [get]
func (h *Handler) Recommend(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	topK := recommend.DefaultTopK
	if raw := c.QueryParam("topK"); raw != "" {
		topK, err = strconv.Atoi(raw)
		if err != nil || topK <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "topK must be a positive integer")
		}
	}
	ids, err := h.borrowSvc.Recommend(c.Request().Context(), p, topK)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ids)
}
