package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/handler"
	"github.com/Astemirdum/library-lending/library/internal/model"
	service_mocks "github.com/Astemirdum/library-lending/library/internal/handler/mocks"
	"github.com/Astemirdum/library-lending/pkg/auth"
	md "github.com/Astemirdum/library-lending/pkg/middleware"
)

func TestRouter(t *testing.T) {
	t.Parallel()
	issuer := auth.NewIssuer(auth.Config{Key: "secret", Issuer: "library", Audience: "library-clients", TTL: time.Hour})
	token, _, err := issuer.Issue(reader)
	require.NoError(t, err)

	var tests = []struct {
		name     string
		method   string
		target   string
		token    string
		setup    func(m mocks)
		response response
	}{
		{
			name:     "health",
			method:   http.MethodGet,
			target:   "/manage/health",
			setup:    func(m mocks) {},
			response: response{expectedCode: http.StatusOK, expectedBody: "OK"},
		},
		{
			name:   "catalog is public",
			method: http.MethodGet,
			target: "/book/available",
			setup: func(m mocks) {
				m.book.EXPECT().ListAvailable(gomock.Any()).Return([]model.Book{}, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: "[]"},
		},
		{
			name:     "err. borrow without token",
			method:   http.MethodPost,
			target:   "/borrow/10",
			setup:    func(m mocks) {},
			response: response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"no authorization header"}`},
		},
		{
			name:     "err. borrow with forged token",
			method:   http.MethodPost,
			target:   "/borrow/10",
			token:    "forged",
			setup:    func(m mocks) {},
			response: response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"invalid or expired token"}`},
		},
		{
			name:   "borrow with token",
			method: http.MethodPost,
			target: "/borrow/10",
			token:  token,
			setup: func(m mocks) {
				m.borrow.EXPECT().BorrowBook(gomock.Any(), reader, 10).Return(nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: "Book borrowed successfully."},
		},
		{
			name:   "recommendations with token",
			method: http.MethodGet,
			target: "/borrow/recommendations?topK=2",
			token:  token,
			setup: func(m mocks) {
				m.borrow.EXPECT().Recommend(gomock.Any(), reader, 2).Return([]int{4, 5}, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: "[4,5]"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			m := mocks{
				book:   service_mocks.NewMockBookService(c),
				borrow: service_mocks.NewMockBorrowService(c),
				auth:   service_mocks.NewMockAuthService(c),
			}
			tt.setup(m)
			e := handler.New(m.book, m.borrow, m.auth, issuer, zap.NewNop()).NewRouter()

			r := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			if tt.token != "" {
				r.Header.Set(md.AuthorizationHeader, "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
