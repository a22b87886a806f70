package e2e_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// mockLineServer is a mock of the LINE Messaging API reply endpoint.
type mockLineServer struct {
	server   *httptest.Server
	received []ReplyCall
	mu       sync.RWMutex
}

// ReplyCall is a reply the bot sent to LINE.
type ReplyCall struct {
	Authorization string         `json:"-"`
	ReplyToken    string         `json:"replyToken"`
	Messages      []ReplyMessage `json:"messages"`
	Time          time.Time      `json:"-"`
}

// ReplyMessage holds the fields of text and confirm template messages.
type ReplyMessage struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	AltText  string `json:"altText"`
	Template struct {
		Type    string `json:"type"`
		Text    string `json:"text"`
		Actions []struct {
			Label string `json:"label"`
			Data  string `json:"data"`
		} `json:"actions"`
	} `json:"template"`
}

func newMockLineServer() *mockLineServer {
	ls := &mockLineServer{
		received: make([]ReplyCall, 0),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/bot/message/reply", func(w http.ResponseWriter, r *http.Request) {
		call := ReplyCall{
			Authorization: r.Header.Get("Authorization"),
			Time:          time.Now(),
		}
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"The request body has 1 error(s)"}`))
			return
		}

		ls.mu.Lock()
		ls.received = append(ls.received, call)
		ls.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	ls.server = httptest.NewServer(mux)
	return ls
}

func (ls *mockLineServer) URL() string {
	return ls.server.URL
}

// RepliesFor returns the replies sent with replyToken.
func (ls *mockLineServer) RepliesFor(replyToken string) []ReplyCall {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	var result []ReplyCall
	for _, call := range ls.received {
		if call.ReplyToken == replyToken {
			result = append(result, call)
		}
	}
	return result
}

func (ls *mockLineServer) Close() {
	ls.server.Close()
}
