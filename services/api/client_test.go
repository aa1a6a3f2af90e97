package apisvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/core/course"
	"github.com/Perlera89/campus/core/session"
	testutil "github.com/Perlera89/campus/tests"
)

const invalidCodeText = "El código de verificación es inválido"

// stubAPI fakes the remote REST server: a mux of path to handler plus a record
// of the last request seen, for header assertions.
type stubAPI struct {
	t        *testing.T
	handlers map[string]http.HandlerFunc

	lastAuth   string
	lastReqID  string
	lastMethod string
}

func newStubAPI(t *testing.T) (*stubAPI, *Client) {
	stub := &stubAPI{t: t, handlers: make(map[string]http.HandlerFunc)}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	conf := new(core.Config)
	conf.API.BaseURL = srv.URL
	return stub, NewClient(conf)
}

func (s *stubAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.lastAuth = r.Header.Get("Authorization")
	s.lastReqID = r.Header.Get("X-Request-ID")
	s.lastMethod = r.Method

	h, ok := s.handlers[r.URL.Path]
	if !ok {
		s.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h(w, r)
}

func (s *stubAPI) respond(path string, code int, body interface{}) {
	s.handlers[path] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func (s *stubAPI) respondRaw(path string, code int, body string) {
	s.handlers[path] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the session out of the token claims", func(t *testing.T) {
		stub, client := newStubAPI(t)
		access := testutil.MakeToken(t, "usr-1", "awe", "awe@test.cd", session.RoleManager)
		stub.respond("/auth/sign-in", http.StatusOK, map[string]interface{}{
			"message": "ok",
			"data": map[string]interface{}{
				"tokens": map[string]string{"accessToken": access, "refreshToken": "refresh-1"},
			},
		})

		sess, err := client.SignIn(ctx, Credentials{Identifier: "awe", Password: "pwd"})
		require.NoError(t, err)
		assert.Equal(t, session.Session{
			UserID:       "usr-1",
			ProfileID:    "profile-usr-1",
			Username:     "awe",
			Email:        "awe@test.cd",
			Role:         session.RoleManager,
			AccessToken:  access,
			RefreshToken: "refresh-1",
		}, sess)
		assert.Empty(t, stub.lastAuth)
		assert.NotEmpty(t, stub.lastReqID)
	})

	t.Run("bad credentials surface the server message", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.respond("/auth/sign-in", http.StatusUnauthorized, map[string]string{"message": "Credenciales inválidas"})

		_, err := client.SignIn(ctx, Credentials{Identifier: "awe", Password: "nope"})
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "Credenciales inválidas", apiErr.Message)
	})

	t.Run("malformed token in a 200 fails", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.respond("/auth/sign-in", http.StatusOK, map[string]interface{}{
			"data": map[string]interface{}{"tokens": map[string]string{"accessToken": "lol"}},
		})

		_, err := client.SignIn(ctx, Credentials{Identifier: "awe", Password: "pwd"})
		assert.Equal(t, session.ErrMalformedToken, err)
	})
}

func TestClient_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.respond("/auth/verify-email", http.StatusOK, map[string]string{"message": "ok"})

		assert.NoError(t, client.VerifyEmail(ctx, "awe@test.cd", "123456"))
	})

	t.Run("invalid code surfaces the server message", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.respond("/auth/verify-email", http.StatusBadRequest, map[string]string{"message": invalidCodeText})

		err := client.VerifyEmail(ctx, "awe@test.cd", "000000")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, invalidCodeText, apiErr.Message)
		assert.Equal(t, invalidCodeText, err.Error())
	})
}

func TestClient_checkResponse_fallbackMessage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		code    int
		body    string
		wantMsg string
	}{
		{name: "message field", code: 400, body: `{"message":"no va"}`, wantMsg: "no va"},
		{name: "error field", code: 400, body: `{"error":"tampoco"}`, wantMsg: "tampoco"},
		{name: "empty body", code: 500, body: ``, wantMsg: fallbackErrorText},
		{name: "non-json body", code: 502, body: `Bad Gateway`, wantMsg: fallbackErrorText},
		{name: "json without either field", code: 400, body: `{"detail":"x"}`, wantMsg: fallbackErrorText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, client := newStubAPI(t)
			stub.respondRaw("/course/delete/c-1", tt.code, tt.body)

			err := client.DeleteCourse(ctx, "tok", "c-1")
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.code, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestClient_Courses(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the list and pagination", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.handlers["/course/all"] = func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(stub.t, "2", r.URL.Query().Get("page"))
			assert.Equal(stub.t, "5", r.URL.Query().Get("limit"))
			fmt.Fprint(w, `{"data":{
				"courses":[{"id":"c-1","title":"Álgebra"},{"id":"c-2","title":"Cálculo"}],
				"pagination":{"total":12,"page":2,"limit":5,"pages":3}
			}}`)
		}

		courses, pagination, err := client.Courses(ctx, "tok", core.ListParams{Page: 2, Limit: 5})
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, "c-1", courses[0].ID)
		assert.Equal(t, core.Pagination{Total: 12, Page: 2, Limit: 5, Pages: 3}, pagination)
		assert.Equal(t, "Bearer tok", stub.lastAuth)
	})

	t.Run("missing collection falls back to an empty list", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.respondRaw("/course/all", http.StatusOK, `{"message":"ok","data":{}}`)

		courses, pagination, err := client.Courses(ctx, "tok", core.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, []course.Course{}, courses)
		assert.Equal(t, core.Pagination{}, pagination)
	})

	t.Run("malformed payload falls back to an empty list", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.respondRaw("/course/all", http.StatusOK, `{"data":{"courses":"not-a-list"}}`)

		courses, _, err := client.Courses(ctx, "tok", core.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, []course.Course{}, courses)
	})
}

func TestClient_Sections_wireKey(t *testing.T) {
	ctx := context.Background()
	stub, client := newStubAPI(t)

	// the collection travels under courseSections, not sections
	stub.respondRaw("/course/section/all/m-1", http.StatusOK,
		`{"data":{"courseSections":[{"id":"sec-1","title":"Semana 1"}]}}`)

	sections, err := client.Sections(ctx, "tok", "m-1")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "sec-1", sections[0].ID)
}

func TestClient_UploadCourseImage(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the public url", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.handlers["/upload/course-image"] = func(w http.ResponseWriter, r *http.Request) {
			file, _, err := r.FormFile("file")
			require.NoError(stub.t, err)
			defer file.Close()
			fmt.Fprint(w, `{"data":{"url":"https://cdn.test/course.png"}}`)
		}

		url, err := client.UploadCourseImage(ctx, "tok", "course.png", strings.NewReader("img"))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/course.png", url)
	})

	t.Run("failures collapse into the generic error", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.respond("/upload/course-image", http.StatusInternalServerError, map[string]string{"message": "disk full"})

		_, err := client.UploadCourseImage(ctx, "tok", "course.png", strings.NewReader("img"))
		assert.Equal(t, errUploadFailed, err)
	})

	t.Run("missing url collapses too", func(t *testing.T) {
		stub, client := newStubAPI(t)
		stub.respondRaw("/upload/course-image", http.StatusOK, `{"data":{}}`)

		_, err := client.UploadCourseImage(ctx, "tok", "course.png", strings.NewReader("img"))
		assert.Equal(t, errUploadFailed, err)
	})
}

func TestClient_ValidateToken(t *testing.T) {
	ctx := context.Background()

	t.Run("server keeps the presented token", func(t *testing.T) {
		stub, client := newStubAPI(t)
		access := testutil.MakeToken(t, "usr-1", "awe", "awe@test.cd", session.RoleStudent)
		stub.respondRaw("/auth/validate-token", http.StatusOK, `{"message":"ok","data":{}}`)

		sess, err := client.ValidateToken(ctx, access)
		require.NoError(t, err)
		assert.Equal(t, access, sess.AccessToken)
		assert.Equal(t, "awe", sess.Username)
		assert.Equal(t, "Bearer "+access, stub.lastAuth)
	})

	t.Run("server rotates the token pair", func(t *testing.T) {
		stub, client := newStubAPI(t)
		oldTok := testutil.MakeToken(t, "usr-1", "awe", "awe@test.cd", session.RoleStudent)
		newTok := testutil.MakeToken(t, "usr-1", "awe", "awe@test.cd", session.RoleManager)
		stub.respond("/auth/validate-token", http.StatusOK, map[string]interface{}{
			"data": map[string]interface{}{
				"tokens": map[string]string{"accessToken": newTok, "refreshToken": "refresh-2"},
			},
		})

		sess, err := client.ValidateToken(ctx, oldTok)
		require.NoError(t, err)
		assert.Equal(t, newTok, sess.AccessToken)
		assert.Equal(t, session.RoleManager, sess.Role)
		assert.Equal(t, "refresh-2", sess.RefreshToken)
	})
}
