package impl

import (
	"encoding/json"
	"net"
	"net/url"
	"testing"

	"tontine/internal/domain/entity"
	"tontine/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRemoteError(t *testing.T) {
	tests := []struct {
		name        string
		remote      *service.RemoteError
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "invalid password with message",
			remote:      &service.RemoteError{Code: service.RemoteCodeInvalidPassword, Message: "Current password is wrong"},
			wantTitle:   "Incorrect password",
			wantMessage: "Current password is wrong",
		},
		{
			name:        "network error code",
			remote:      &service.RemoteError{Code: service.RemoteCodeNetworkError},
			wantTitle:   "Connection error",
			wantMessage: messageDefaultRemote,
		},
		{
			name:        "nested error object",
			remote:      &service.RemoteError{Code: "WEIRD", Err: &service.NestedError{Message: "nested message"}},
			wantTitle:   "Error",
			wantMessage: "nested message",
		},
		{
			name:        "nested error string",
			remote:      &service.RemoteError{Err: &service.NestedError{Text: "nested text"}},
			wantTitle:   "Error",
			wantMessage: "nested text",
		},
		{
			name:        "top-level message wins over nested",
			remote:      &service.RemoteError{Message: "top", Err: &service.NestedError{Message: "nested"}},
			wantTitle:   "Error",
			wantMessage: "top",
		},
		{
			name:        "no payload",
			remote:      nil,
			wantTitle:   "Error",
			wantMessage: messageDefaultRemote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notice := ClassifyRemoteError(tt.remote)

			assert.Equal(t, entity.NoticeError, notice.Kind)
			assert.Equal(t, tt.wantTitle, notice.Title)
			assert.Equal(t, tt.wantMessage, notice.Message)
			assert.False(t, notice.RequiresAck)
		})
	}
}

func TestClassifyException(t *testing.T) {
	var syntaxErr error
	{
		var v map[string]any
		syntaxErr = json.Unmarshal([]byte("<html>"), &v)
	}

	tests := []struct {
		name        string
		err         error
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "url error",
			err:         &url.Error{Op: "Post", URL: "http://backend", Err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}},
			wantTitle:   "Connection error",
			wantMessage: messageConnection,
		},
		{
			name:        "wrapped json syntax error",
			err:         errors.Wrap(syntaxErr, "decode response"),
			wantTitle:   "Server error",
			wantMessage: messageServerResponse,
		},
		{
			name:        "Network substring",
			err:         errors.New("Network request failed"),
			wantTitle:   "Connection error",
			wantMessage: messageConnection,
		},
		{
			name:        "Failed to fetch substring",
			err:         errors.New("TypeError: Failed to fetch"),
			wantTitle:   "Connection error",
			wantMessage: messageConnection,
		},
		{
			name:        "JSON substring",
			err:         errors.New("Unexpected token < in JSON at position 0"),
			wantTitle:   "Server error",
			wantMessage: messageServerResponse,
		},
		{
			name:        "parsing substring",
			err:         errors.New("error parsing response"),
			wantTitle:   "Server error",
			wantMessage: messageServerResponse,
		},
		{
			name:        "raw message passthrough",
			err:         errors.New("something odd happened"),
			wantTitle:   "Error",
			wantMessage: "something odd happened",
		},
		{
			name:        "empty message",
			err:         errors.New(""),
			wantTitle:   "Error",
			wantMessage: messageUnexpected,
		},
		{
			name:        "nil",
			err:         nil,
			wantTitle:   "Error",
			wantMessage: messageUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notice := ClassifyException(tt.err)

			assert.Equal(t, entity.NoticeError, notice.Kind)
			assert.Equal(t, tt.wantTitle, notice.Title)
			assert.Equal(t, tt.wantMessage, notice.Message)
		})
	}
}
