package controllers

import (
	"errors"
	"net/http"
)

// Error kinds surfaced to the routes layer. Filtering verdicts are local,
// deterministic decisions and are never wrapped in transport detail.
var (
	ErrNotAuthenticated   = errors.New("인증 실패")
	ErrUserNotFound       = errors.New("사용자 없음")
	ErrForbidden          = errors.New("관리자 권한이 필요합니다")
	ErrEmailTaken         = errors.New("이미 등록된 이메일입니다")
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 잘못되었습니다")
	ErrWrongPassword      = errors.New("비밀번호가 틀렸습니다")

	// ErrBlockedInput: the question failed the safety filter. The user can
	// rephrase, so this is a client error.
	ErrBlockedInput = errors.New("위험하거나 부적절한 질문입니다")

	// ErrBlockedOutput: the generated answer failed the safety filter. The
	// raw answer is only ever logged, never returned.
	ErrBlockedOutput = errors.New("응답에 부적절한 내용이 포함되어 차단되었습니다")

	// ErrUpstreamFailure: the model call failed. Nothing was persisted, so
	// a retry is safe.
	ErrUpstreamFailure = errors.New("GPT 응답 실패")
)

// StatusFor maps an error kind to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotAuthenticated), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrWrongPassword), errors.Is(err, ErrBlockedInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUpstreamFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
