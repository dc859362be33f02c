package httpapi

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"

	"github.com/chineye-ai/chatserver/internal/common"
	"github.com/chineye-ai/chatserver/internal/logging"
	"github.com/chineye-ai/chatserver/internal/server/models"
	"github.com/chineye-ai/chatserver/internal/server/services"
)

// --- fakes ---

type fakeUserService struct {
	registerOut *models.User
	registerErr error

	loginOut *services.LoginResult
	loginErr error
}

func (f *fakeUserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginOut, nil
}

type fakeChatService struct {
	sendOut string
	sendErr error

	historyOut []models.ChatMessage
	historyErr error

	gotUserID  string
	gotMessage string
}

func (f *fakeChatService) Send(ctx context.Context, userID, message string) (string, error) {
	f.gotUserID, f.gotMessage = userID, message
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.sendOut, nil
}

func (f *fakeChatService) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	f.gotUserID = userID
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.historyOut, nil
}

type fakeNewsletterService struct {
	out *models.Subscriber
	err error
}

func (f *fakeNewsletterService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

type fakeResolver struct {
	user *models.User
}

func (f *fakeResolver) Resolve(ctx context.Context, authorization string) (*models.User, error) {
	if f.user != nil && authorization == "Bearer good-token" {
		return f.user, nil
	}
	return nil, common.ErrUnauthenticated
}

type serverFakes struct {
	users      *fakeUserService
	chat       *fakeChatService
	newsletter *fakeNewsletterService
	resolver   *fakeResolver
}

func newTestHandler(f serverFakes) http.Handler {
	if f.users == nil {
		f.users = &fakeUserService{}
	}
	if f.chat == nil {
		f.chat = &fakeChatService{}
	}
	if f.newsletter == nil {
		f.newsletter = &fakeNewsletterService{}
	}
	if f.resolver == nil {
		f.resolver = &fakeResolver{}
	}
	s := NewServer(logging.NewZerologLogger(io.Discard), f.users, f.chat, f.newsletter, f.resolver, "*")
	return s.Handler()
}

// --- tests ---

func TestHealth(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(serverFakes{})).
		Get("/health").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.status`, "ok")).
		Assert(jsonpath.Equal(`$.service`, "chatserver")).
		End()
}

func TestSignup_Success(t *testing.T) {
	users := &fakeUserService{registerOut: &models.User{
		ID: "u-1", Username: "alice", Email: "alice@example.com",
	}}

	apitest.New().
		Handler(newTestHandler(serverFakes{users: users})).
		Post("/api/signup").
		JSON(`{"username":"alice","email":"alice@example.com","password":"secret123"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.username`, "alice")).
		Assert(jsonpath.Equal(`$.email`, "alice@example.com")).
		End()
}

func TestSignup_Validation(t *testing.T) {
	handler := newTestHandler(serverFakes{})

	tests := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"al","email":"a@example.com","password":"secret123"}`},
		{"short password", `{"username":"alice","email":"a@example.com","password":"short"}`},
		{"bad email", `{"username":"alice","email":"not-an-email","password":"secret123"}`},
		{"bad json", `{`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			apitest.New().
				Handler(handler).
				Post("/api/signup").
				JSON(tc.body).
				Expect(t).
				Status(http.StatusBadRequest).
				Assert(jsonpath.Present(`$.detail`)).
				End()
		})
	}
}

func TestSignup_Duplicate(t *testing.T) {
	users := &fakeUserService{registerErr: common.ErrAlreadyExists}

	apitest.New().
		Handler(newTestHandler(serverFakes{users: users})).
		Post("/api/signup").
		JSON(`{"username":"alice","email":"alice@example.com","password":"secret123"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.detail`, "Username or email already exists")).
		End()
}

func TestSignup_StoreError(t *testing.T) {
	users := &fakeUserService{registerErr: common.ErrInternal}

	apitest.New().
		Handler(newTestHandler(serverFakes{users: users})).
		Post("/api/signup").
		JSON(`{"username":"alice","email":"alice@example.com","password":"secret123"}`).
		Expect(t).
		Status(http.StatusInternalServerError).
		End()
}

func TestLogin_Success(t *testing.T) {
	users := &fakeUserService{loginOut: &services.LoginResult{
		AccessToken: "tok-123", Username: "alice",
	}}

	apitest.New().
		Handler(newTestHandler(serverFakes{users: users})).
		Post("/api/login").
		JSON(`{"email":"alice@example.com","password":"secret123"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.access_token`, "tok-123")).
		Assert(jsonpath.Equal(`$.token_type`, "bearer")).
		Assert(jsonpath.Equal(`$.username`, "alice")).
		End()
}

func TestLogin_BadCredentials(t *testing.T) {
	users := &fakeUserService{loginErr: common.ErrUnauthenticated}

	apitest.New().
		Handler(newTestHandler(serverFakes{users: users})).
		Post("/api/login").
		JSON(`{"email":"alice@example.com","password":"wrongpass"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal(`$.detail`, "Invalid email or password")).
		End()
}

func TestSendMessage_Success(t *testing.T) {
	chat := &fakeChatService{sendOut: "hi there"}
	resolver := &fakeResolver{user: &models.User{ID: "u-1", Username: "alice"}}

	apitest.New().
		Handler(newTestHandler(serverFakes{chat: chat, resolver: resolver})).
		Post("/api/send-message").
		Header("Authorization", "Bearer good-token").
		JSON(`{"message":"hello"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "hello")).
		Assert(jsonpath.Equal(`$.response`, "hi there")).
		End()

	if chat.gotUserID != "u-1" || chat.gotMessage != "hello" {
		t.Fatalf("chat service got userID=%q message=%q", chat.gotUserID, chat.gotMessage)
	}
}

func TestSendMessage_EmptyMessage(t *testing.T) {
	resolver := &fakeResolver{user: &models.User{ID: "u-1"}}

	apitest.New().
		Handler(newTestHandler(serverFakes{resolver: resolver})).
		Post("/api/send-message").
		Header("Authorization", "Bearer good-token").
		JSON(`{"message":"   "}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.detail`, "Message cannot be empty")).
		End()
}

func TestAuthenticatedRoutes_Reject(t *testing.T) {
	handler := newTestHandler(serverFakes{resolver: &fakeResolver{user: &models.User{ID: "u-1"}}})

	headers := map[string]string{
		"absent":         "",
		"missing bearer": "good-token",
		"bad token":      "Bearer bad-token",
	}
	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			req := apitest.New().
				Handler(handler).
				Post("/api/send-message").
				JSON(`{"message":"hello"}`)
			if header != "" {
				req.Header("Authorization", header)
			}
			req.Expect(t).
				Status(http.StatusUnauthorized).
				Header("WWW-Authenticate", "Bearer").
				Assert(jsonpath.Equal(`$.detail`, "Invalid authentication credentials")).
				End()
		})
	}
}

func TestHistory_Success(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	chat := &fakeChatService{historyOut: []models.ChatMessage{
		{Message: "hello", Response: "hi", Timestamp: ts},
		{Message: "bye", Response: "later", Timestamp: ts.Add(time.Minute)},
	}}
	resolver := &fakeResolver{user: &models.User{ID: "u-1"}}

	apitest.New().
		Handler(newTestHandler(serverFakes{chat: chat, resolver: resolver})).
		Get("/api/history").
		Header("Authorization", "Bearer good-token").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$.history`, 2)).
		Assert(jsonpath.Equal(`$.history[0].message`, "hello")).
		Assert(jsonpath.Equal(`$.history[0].timestamp`, "2025-06-01T12:00:00Z")).
		End()
}

func TestHistory_Empty(t *testing.T) {
	resolver := &fakeResolver{user: &models.User{ID: "u-1"}}

	apitest.New().
		Handler(newTestHandler(serverFakes{resolver: resolver})).
		Get("/api/history").
		Header("Authorization", "Bearer good-token").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$.history`, 0)).
		End()
}

func TestLogout(t *testing.T) {
	resolver := &fakeResolver{user: &models.User{ID: "u-1", Username: "alice"}}

	apitest.New().
		Handler(newTestHandler(serverFakes{resolver: resolver})).
		Post("/api/logout").
		Header("Authorization", "Bearer good-token").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "Logged out successfully")).
		Assert(jsonpath.Equal(`$.username`, "alice")).
		End()
}

func TestNewsletter_Success(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	newsletter := &fakeNewsletterService{out: &models.Subscriber{
		Email: "alice@example.com", SubscribedAt: at,
	}}

	apitest.New().
		Handler(newTestHandler(serverFakes{newsletter: newsletter})).
		Post("/api/newsletter").
		JSON(`{"email":"alice@example.com"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.email`, "alice@example.com")).
		Assert(jsonpath.Equal(`$.subscribed_at`, "2025-06-01T12:00:00Z")).
		End()
}

func TestNewsletter_Validation(t *testing.T) {
	handler := newTestHandler(serverFakes{})

	apitest.New().
		Handler(handler).
		Post("/api/newsletter").
		JSON(`{"email":""}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.detail`, "Email is required")).
		End()

	apitest.New().
		Handler(handler).
		Post("/api/newsletter").
		JSON(`{"email":"not-an-email"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.detail`, "Invalid email format")).
		End()
}

func TestNewsletter_Duplicate(t *testing.T) {
	newsletter := &fakeNewsletterService{err: common.ErrAlreadyExists}

	apitest.New().
		Handler(newTestHandler(serverFakes{newsletter: newsletter})).
		Post("/api/newsletter").
		JSON(`{"email":"alice@example.com"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.detail`, "Email already subscribed")).
		End()
}

func TestCORSHeaders(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(serverFakes{})).
		Get("/health").
		Expect(t).
		Status(http.StatusOK).
		Header("Access-Control-Allow-Origin", "*").
		End()
}
