package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeResponder struct {
	reply string
	err   error
	got   string
}

func (f *fakeResponder) HandleMessage(ctx context.Context, userInput string) (string, error) {
	f.got = userInput
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func postChat(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, chatResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return rec, resp
}

func TestChatSuccess(t *testing.T) {
	t.Parallel()

	responder := &fakeResponder{reply: "Hi! You're on the Unlimited Plan."}
	s := New(responder, Config{Port: 8080})

	rec, resp := postChat(t, s, `{"user_input": "what plan am I on?"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp.Response != "Hi! You're on the Unlimited Plan." {
		t.Fatalf("unexpected response: %q", resp.Response)
	}
	if responder.got != "what plan am I on?" {
		t.Fatalf("pipeline received %q", responder.got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestChatPipelineFailureStays200(t *testing.T) {
	t.Parallel()

	responder := &fakeResponder{err: errors.New("classification failed: upstream 500")}
	s := New(responder, Config{Port: 8080})

	rec, resp := postChat(t, s, `{"user_input": "hello"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, boundary must not surface hard failures", rec.Code)
	}
	if resp.Response != genericFailureReply {
		t.Fatalf("unexpected response: %q", resp.Response)
	}
	if strings.Contains(resp.Response, "upstream 500") {
		t.Fatal("internal error text leaked to the caller")
	}
}

func TestChatMalformedBodyStays200(t *testing.T) {
	t.Parallel()

	responder := &fakeResponder{reply: "unused"}
	s := New(responder, Config{Port: 8080})

	rec, resp := postChat(t, s, `{"user_input": `)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp.Response != genericFailureReply {
		t.Fatalf("unexpected response: %q", resp.Response)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	s := New(&fakeResponder{}, Config{Port: 8080})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}
