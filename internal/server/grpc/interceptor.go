package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/guard"
	pb "github.com/dmitrijs2005/eterbox/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ctxKey string

const principalKey ctxKey = "principal"

// methodPolicy is the role each method requires, keyed by full method
// name. Methods missing here need an authenticated user.
var methodPolicy = map[string]guard.Role{
	pb.AuthService_Ping_FullMethodName:                guard.RoleNone,
	pb.AuthService_Prelogin_FullMethodName:            guard.RoleNone,
	pb.AuthService_Register_FullMethodName:            guard.RoleNone,
	pb.AuthService_Login_FullMethodName:               guard.RoleNone,
	pb.AuthService_VerifySecondFactor_FullMethodName:  guard.RoleNone,
	pb.AuthService_WebAuthnBeginLogin_FullMethodName:  guard.RoleNone,
	pb.AuthService_WebAuthnFinishLogin_FullMethodName: guard.RoleNone,

	pb.AdminService_ListLoginAttempts_FullMethodName: guard.RoleAdmin,
	pb.AdminService_RevokeUser_FullMethodName:        guard.RoleAdmin,
}

func requiredRole(fullMethod string) guard.Role {
	if r, ok := methodPolicy[fullMethod]; ok {
		return r
	}
	return guard.RoleUser
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return ""
	}
	v := values[0]
	if len(v) < len(common.BearerPrefix) || !strings.EqualFold(v[:len(common.BearerPrefix)], common.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(common.BearerPrefix):])
}

func remoteAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

func principalFrom(ctx context.Context) (guard.Principal, bool) {
	p, ok := ctx.Value(principalKey).(guard.Principal)
	return p, ok
}

func isSessionError(err error) bool {
	return errors.Is(err, common.ErrInvalidToken) ||
		errors.Is(err, common.ErrSessionExpired) ||
		errors.Is(err, common.ErrSessionRevoked)
}

// authInterceptor resolves the caller's session and admits the call only
// when guard.Authorize says so. A caller lacking the role is told the
// method does not exist.
func (s *GRPCServer) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	required := requiredRole(info.FullMethod)
	if required == guard.RoleNone {
		return handler(ctx, req)
	}

	state := guard.StateUnauthenticated
	var p *guard.Principal

	if token := bearerToken(ctx); token != "" {
		claims, err := s.svc.Sessions.Validate(ctx, token)
		switch {
		case err == nil:
			state = guard.StateAuthenticated
			p = &guard.Principal{
				UserID:       claims.Subject,
				SessionID:    claims.ID,
				Role:         claims.Role,
				SecondFactor: claims.MFA,
			}
		case isSessionError(err):
			s.logger.Warn(ctx, "session rejected", "method", info.FullMethod, "kind", err.Error(), "remote", remoteAddr(ctx))
		default:
			s.logger.Error(ctx, "session validation failed", "method", info.FullMethod, "error", err)
			return nil, status.Error(codes.Internal, msgInternal)
		}
	}

	switch guard.Authorize(state, p, required) {
	case guard.Admit:
		return handler(context.WithValue(ctx, principalKey, *p), req)
	case guard.NotFound:
		userID := ""
		if p != nil {
			userID = p.UserID
		}
		s.logger.Warn(ctx, "role check failed", "method", info.FullMethod, "user_id", userID, "remote", remoteAddr(ctx))
		return nil, status.Error(codes.NotFound, msgNotFound)
	default:
		return nil, status.Error(codes.Unauthenticated, msgUnauthenticated)
	}
}
