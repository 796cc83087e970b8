package impl

import (
	"encoding/json"
	"net"
	"net/url"
	"strings"

	"tontine/internal/domain/entity"
	"tontine/internal/domain/service"
	"tontine/internal/errors"
)

const (
	titleIncorrectPassword = "Incorrect password"
	titleConnectionError   = "Connection error"
	titleServerError       = "Server error"
	titleGenericError      = "Error"

	messageDefaultRemote  = "The request could not be completed. Please try again."
	messageConnection     = "Unable to reach the server. Please check your internet connection and try again."
	messageServerResponse = "The server returned an unexpected response. Please try again later."
	messageUnexpected     = "An unexpected error occurred. Please try again."
)

// ClassifyRemoteError turns a structured backend failure into a notice.
// The title follows the error code; the message is the most specific text available.
func ClassifyRemoteError(remote *service.RemoteError) entity.Notice {
	notice := entity.Notice{
		Kind:    entity.NoticeError,
		Title:   titleGenericError,
		Message: messageDefaultRemote,
	}

	if remote == nil {
		return notice
	}

	switch remote.Code {
	case service.RemoteCodeInvalidPassword:
		notice.Title = titleIncorrectPassword
	case service.RemoteCodeNetworkError:
		notice.Title = titleConnectionError
	}

	if msg := remoteMessage(remote); msg != "" {
		notice.Message = msg
	}

	return notice
}

func remoteMessage(remote *service.RemoteError) string {
	if remote.Message != "" {
		return remote.Message
	}

	if remote.Err == nil {
		return ""
	}

	if remote.Err.Message != "" {
		return remote.Err.Message
	}

	return remote.Err.Text
}

// ClassifyException turns a transport or decoding failure into a notice.
// Typed network and JSON errors are recognised first; the message substrings are a
// best-effort fallback for errors that lost their type on the way.
func ClassifyException(err error) entity.Notice {
	notice := entity.Notice{
		Kind:    entity.NoticeError,
		Title:   titleGenericError,
		Message: messageUnexpected,
	}

	if err == nil {
		return notice
	}

	switch {
	case isNetworkError(err):
		notice.Title, notice.Message = titleConnectionError, messageConnection

		return notice
	case isDecodeError(err):
		notice.Title, notice.Message = titleServerError, messageServerResponse

		return notice
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "Network") || strings.Contains(msg, "Failed to fetch"):
		notice.Title, notice.Message = titleConnectionError, messageConnection
	case strings.Contains(msg, "JSON") || strings.Contains(msg, "parsing"):
		notice.Title, notice.Message = titleServerError, messageServerResponse
	case msg != "":
		notice.Message = msg
	}

	return notice
}

func isNetworkError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return true
	}

	var typeErr *json.UnmarshalTypeError

	return errors.As(err, &typeErr)
}
