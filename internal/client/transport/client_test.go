package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*************
 * fakes
 *************/

type fakeSession struct {
	mu          sync.Mutex
	token       string
	logoutCalls int
	logoutErr   error
}

func (f *fakeSession) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeSession) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	f.token = ""
	return f.logoutErr
}

type fakeNav struct {
	paths []string
	err   error
}

func (f *fakeNav) Replace(path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

type recorder struct {
	msgs []string
}

func (r *recorder) Notify(msg string) { r.msgs = append(r.msgs, msg) }

type harness struct {
	client  *Client
	session *fakeSession
	nav     *fakeNav
	notes   *recorder
}

func newHarness(t *testing.T, baseURL, token string) *harness {
	t.Helper()
	h := &harness{
		session: &fakeSession{token: token},
		nav:     &fakeNav{},
		notes:   &recorder{},
	}
	c, err := NewClient(baseURL, time.Second, h.session, h.nav, h.notes,
		WithRequestIDFunc(func() string { return "req-1" }))
	require.NoError(t, err)
	h.client = c
	return h
}

func writeEnvelope(w http.ResponseWriter, status, code int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"code": code, "data": data, "message": message})
}

type article struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

/*************
 * authorize
 *************/

func TestAuthorize_AttachesBearerWhenTokenHeld(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		writeEnvelope(w, http.StatusOK, 200, nil, "ok")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL+"/api/v1", "T1")
	require.NoError(t, h.client.Do(context.Background(), http.MethodGet, "/articles", nil, nil, nil))

	assert.Equal(t, "Bearer T1", gotAuth)
	assert.Equal(t, "req-1", gotReqID)
}

func TestAuthorize_NoHeaderWithoutToken(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		writeEnvelope(w, http.StatusOK, 200, nil, "ok")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "")
	require.NoError(t, h.client.Do(context.Background(), http.MethodGet, "/articles", nil, nil, nil))
	assert.False(t, present, "anonymous request must not carry Authorization")
}

func TestAuthorize_ReadsTokenPerRequest(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, 200, nil, "ok")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "")
	ctx := context.Background()
	require.NoError(t, h.client.Do(ctx, http.MethodGet, "/a", nil, nil, nil))
	h.session.token = "T2"
	require.NoError(t, h.client.Do(ctx, http.MethodGet, "/a", nil, nil, nil))

	assert.Equal(t, []string{"", "Bearer T2"}, seen)
}

/*************
 * unwrap
 *************/

func TestUnwrap_SuccessCodesReturnData(t *testing.T) {
	for _, code := range []int{200, 201} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, code, article{ID: 7, Title: "hello"}, "done")
		}))

		h := newHarness(t, srv.URL, "")
		got, err := Get[article](context.Background(), h.client, "/articles/7", nil)
		srv.Close()

		require.NoError(t, err, "code %d", code)
		assert.Equal(t, article{ID: 7, Title: "hello"}, got)
		assert.Empty(t, h.notes.msgs, "success must not notify")
	}
}

func TestUnwrap_BusinessErrorNotifiesOnceAndRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 400, nil, "title is required")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "T")
	_, err := Post[article](context.Background(), h.client, "/articles", map[string]string{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
	assert.Equal(t, "title is required", apiErr.Message)
	assert.Equal(t, []string{"title is required"}, h.notes.msgs)
	assert.Equal(t, 0, h.session.logoutCalls)
}

func TestUnwrap_BusinessErrorWithoutMessageUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 500, nil, "")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "")
	err := h.client.Do(context.Background(), http.MethodGet, "/tags", nil, nil, nil)

	require.Error(t, err)
	assert.Equal(t, FallbackBusinessMessage, Message(err))
	assert.Equal(t, []string{FallbackBusinessMessage}, h.notes.msgs)
}

func TestUnwrap_MalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>gateway</html>")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "")
	err := h.client.Do(context.Background(), http.MethodGet, "/tags", nil, nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Len(t, h.notes.msgs, 1)
}

func TestUnwrap_NullDataLeavesZeroValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 200, nil, "deleted")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "T")
	got, err := Get[*article](context.Background(), h.client, "/articles/1", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

/*************
 * handleTransportError
 *************/

func TestTransport401_ForcesLogoutAndLoginRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, 401, nil, "token expired")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "stale")
	err := h.client.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil, nil)

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, h.session.logoutCalls)
	assert.Equal(t, []string{LoginPath}, h.nav.paths)
	assert.Equal(t, []string{"token expired"}, h.notes.msgs)

	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, http.StatusUnauthorized, trErr.Status)
}

func TestTransport401_LogoutAndNavErrorsDoNotMaskResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "stale")
	h.session.logoutErr = errors.New("disk full")
	h.nav.err = errors.New("no route")

	err := h.client.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil, nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, []string{FallbackNetworkMessage}, h.notes.msgs)
}

func TestTransportNon401_NoLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusForbidden, 403, nil, "forbidden")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "T")
	err := h.client.Do(context.Background(), http.MethodDelete, "/articles/1", nil, nil, nil)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, 0, h.session.logoutCalls)
	assert.Empty(t, h.nav.paths)
	assert.Equal(t, []string{"forbidden"}, h.notes.msgs)
	assert.Equal(t, "T", h.session.Token())
}

func TestTransportNoResponse_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	h := newHarness(t, base, "T")
	err := h.client.Do(context.Background(), http.MethodGet, "/articles", nil, nil, nil)

	require.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, []string{FallbackNetworkMessage}, h.notes.msgs)
	assert.Equal(t, 0, h.session.logoutCalls)
}

func TestTransportTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	h := newHarness(t, srv.URL, "")
	h.client.http.Timeout = 50 * time.Millisecond

	err := h.client.Do(context.Background(), http.MethodGet, "/slow", nil, nil, nil)
	require.ErrorIs(t, err, ErrNetwork)
	assert.Len(t, h.notes.msgs, 1)
}

/*************
 * request helpers
 *************/

func TestEndpoint_JoinsBasePathAndQuery(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		writeEnvelope(w, http.StatusOK, 200, []article{}, "")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL+"/api/v1/", "")
	_, err := Get[[]article](context.Background(), h.client, "/articles", url.Values{"page": {"2"}})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/articles", gotPath)
	assert.Equal(t, "page=2", gotQuery)
}

func TestPutSendsJSONBody(t *testing.T) {
	var got map[string]string
	var ct string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeEnvelope(w, http.StatusOK, 200, article{ID: 1, Title: got["title"]}, "")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "T")
	a, err := Put[article](context.Background(), h.client, "/articles/1", map[string]string{"title": "new"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", ct)
	assert.Equal(t, "new", a.Title)
}

func TestUpload_SendsMultipartFileField(t *testing.T) {
	type uploaded struct {
		URL  string `json:"url"`
		Name string `json:"name"`
		Size int64  `json:"size"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeEnvelope(w, http.StatusBadRequest, 400, nil, "no file")
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		writeEnvelope(w, http.StatusOK, 200, uploaded{URL: "/uploads/" + hdr.Filename, Name: hdr.Filename, Size: int64(len(data))}, "")
	}))
	defer srv.Close()

	h := newHarness(t, srv.URL, "T")
	got, err := Upload[uploaded](context.Background(), h.client, "/files/upload", "file", "cover.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)
	assert.Equal(t, uploaded{URL: "/uploads/cover.png", Name: "cover.png", Size: 7}, got)
}

func TestNewClient_Validation(t *testing.T) {
	s, n, r := &fakeSession{}, &fakeNav{}, &recorder{}

	_, err := NewClient("/api/v1", 0, s, n, r)
	require.Error(t, err)

	_, err = NewClient("http://127.0.0.1:8080/api/v1", 0, nil, n, r)
	require.Error(t, err)

	c, err := NewClient("http://127.0.0.1:8080/api/v1/", 0, s, n, r)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.Timeout())
	assert.Equal(t, "http://127.0.0.1:8080/api/v1", c.BaseURL())
}

func TestWithHTTPClient_LeavesCallerClientAlone(t *testing.T) {
	hc := &http.Client{Timeout: time.Minute}

	c, err := NewClient("http://127.0.0.1:8080/api/v1", 3*time.Second, &fakeSession{}, &fakeNav{}, &recorder{},
		WithHTTPClient(hc))
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, c.Timeout())
	assert.Equal(t, time.Minute, hc.Timeout)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "m1", Message(&APIError{Code: 400, Message: "m1"}))
	assert.Equal(t, "m2", Message(&TransportError{Status: 500, Message: "m2"}))
	assert.Equal(t, "plain", Message(errors.New("plain")))
	assert.Empty(t, Message(nil))
}
