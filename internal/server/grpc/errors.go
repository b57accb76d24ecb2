package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Messages shown to callers. The specific failure kind only goes to the log.
const (
	msgInvalidCredentials = "invalid credentials"
	msgUnauthenticated    = "authentication required"
	msgVerificationFailed = "verification failed"
	msgTooManyAttempts    = "too many attempts, try again later"
	msgInvalidArgument    = "invalid request"
	msgAlreadyExists      = "already exists"
	msgVaultChanged       = "vault changed, reload and retry"
	msgNotFound           = "not found"
	msgInternal           = "internal error"
)

var errorCodes = []struct {
	err  error
	code codes.Code
	msg  string
}{
	{common.ErrInvalidCredentials, codes.Unauthenticated, msgInvalidCredentials},
	{common.ErrInvalidSecondFactor, codes.Unauthenticated, msgInvalidCredentials},
	{common.ErrSecondFactorRequired, codes.Unauthenticated, msgUnauthenticated},
	{common.ErrTooManyAttempts, codes.ResourceExhausted, msgTooManyAttempts},
	{common.ErrInvalidToken, codes.Unauthenticated, msgUnauthenticated},
	{common.ErrSessionExpired, codes.Unauthenticated, msgUnauthenticated},
	{common.ErrSessionRevoked, codes.Unauthenticated, msgUnauthenticated},
	{common.ErrChallengeNotFound, codes.Unauthenticated, msgVerificationFailed},
	{common.ErrChallengeExpired, codes.Unauthenticated, msgVerificationFailed},
	{common.ErrChallengeOriginMismatch, codes.Unauthenticated, msgVerificationFailed},
	{common.ErrChallengeMismatch, codes.Unauthenticated, msgVerificationFailed},
	{common.ErrAssertionInvalid, codes.Unauthenticated, msgVerificationFailed},
	{common.ErrCloneDetected, codes.Unauthenticated, msgVerificationFailed},
	{common.ErrRekeyIncomplete, codes.FailedPrecondition, msgVaultChanged},
	{common.ErrStaleGeneration, codes.FailedPrecondition, msgVaultChanged},
	{common.ErrorValidation, codes.InvalidArgument, msgInvalidArgument},
	{common.ErrorAlreadyExists, codes.AlreadyExists, msgAlreadyExists},
	{common.ErrorNotFound, codes.NotFound, msgNotFound},
	{context.Canceled, codes.Canceled, "canceled"},
	{context.DeadlineExceeded, codes.DeadlineExceeded, "deadline exceeded"},
}

func classify(err error) (codes.Code, string) {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code, e.msg
		}
	}
	return codes.Internal, msgInternal
}

// toStatus turns a service error into a gRPC status with a generic message
// and logs the specific kind.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	code, msg := classify(err)
	if code == codes.Internal {
		s.logger.Error(ctx, op+" failed", "error", err)
	} else {
		s.logger.Warn(ctx, op+" rejected", "kind", err.Error(), "code", code.String(), "remote", remoteAddr(ctx))
	}
	return status.Error(code, msg)
}
