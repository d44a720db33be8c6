package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/model"
)

// ListAvailable godoc
// @Summary books that can be borrowed now
// @Tags book
// @Produce json
// @Success 200 {array} model.Book
// @Router /book/available [get]
func (h *Handler) ListAvailable(c echo.Context) error {
	books, err := h.bookSvc.ListAvailable(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// @Summary archived books
// @Tags book
// @Produce json
// @Success 200 {array} model.Book
// @Router /book/archived [get]
func (h *Handler) ListArchived(c echo.Context) error {
	books, err := h.bookSvc.ListArchived(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// @Summary a single book
// @Tags book
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.Book
// @Failure 400,404 {object} echo.HTTPError
// @Router /book/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	book, err := h.bookSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// AddBook godoc
// @Summary add a book to the catalog
// @Tags book
// @Accept json
// @Produce plain
// @Param input body model.AddBookRequest true "book"
// @Success 200 {string} string
// @Failure 400 {object} echo.HTTPError
// @Router /book/add [post]
func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.bookSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	h.log.Debug("AddBook", zap.Int("id", book.ID))
	return c.String(http.StatusOK, "Book added successfully.")
}

// @Summary archive a book
// @Tags book
// @Param id path int true "book id"
// @Success 204
// @Failure 400,404 {object} echo.HTTPError
// @Router /book/archive/{id} [patch]
func (h *Handler) Archive(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.bookSvc.Archive(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary restore an archived book
// @Tags book
// @Param id path int true "book id"
// @Success 204
// @Failure 400,404 {object} echo.HTTPError
// @Router /book/unarchive/{id} [patch]
func (h *Handler) Unarchive(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.bookSvc.Unarchive(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
