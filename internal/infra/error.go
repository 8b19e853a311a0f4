package infra

import (
	"errors"
	"log/slog"

	"maison-storefront/internal/pkg/errs"
)

type GatewayErrorKind string

// GatewayError classifies failures from outbound adapters (the commerce
// backend client, the draft store) so usecases can branch on kind without
// knowing transport details.
type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg string, err error) error {
	slogger.Error("Gateway error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// BackendMessage surfaces the backend-provided failure message when one
// was decodable, for user-facing notifications.
func BackendMessage(err error) string {
	var e GatewayError
	if errors.As(err, &e) {
		return e.msg
	}
	return ""
}

const (
	KindNotFound        GatewayErrorKind = "NOT_FOUND"
	KindBackendRejected GatewayErrorKind = "BACKEND_REJECTED"
	KindUnreachable     GatewayErrorKind = "UNREACHABLE"
	KindDecodeFailed    GatewayErrorKind = "DECODE_FAILED"
	KindStoreFailure    GatewayErrorKind = "STORE_FAILURE"
)
