package grpc

import (
	"context"

	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/guard"
	pb "github.com/dmitrijs2005/eterbox/internal/proto"
	"github.com/dmitrijs2005/eterbox/internal/server/auth"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type AuthService interface {
	Prelogin(ctx context.Context, email string) (*services.PreloginResult, error)
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email string, authSecret []byte, remote string) (*services.LoginResult, error)
	VerifySecondFactor(ctx context.Context, mfaToken, code, remote string) (*services.LoginResult, error)
	ChangePassword(ctx context.Context, p guard.Principal, in services.ChangePasswordInput) (*services.SessionToken, error)
	Logout(ctx context.Context, sessionID string) error
	LogoutAll(ctx context.Context, userID string) (int64, error)
}

type SessionValidator interface {
	Validate(ctx context.Context, token string) (*auth.Claims, error)
}

type TwoFactorService interface {
	BeginEnrollment(ctx context.Context, userID string) (*services.Enrollment, error)
	ConfirmEnrollment(ctx context.Context, userID, secret, code string) ([]string, error)
	Disable(ctx context.Context, userID string, authSecret []byte) error
	Status(ctx context.Context, userID string) (*services.TwoFactorStatus, error)
}

type WebAuthnService interface {
	BeginRegistration(ctx context.Context, userID string) (*services.Ceremony, error)
	FinishRegistration(ctx context.Context, userID, challengeID, name string, response []byte) (*models.WebAuthnCredential, error)
	BeginLogin(ctx context.Context, emailHint string) (*services.Ceremony, error)
	FinishLogin(ctx context.Context, challengeID string, response []byte, remote string) (*services.LoginResult, error)
	ListCredentials(ctx context.Context, userID string) ([]*models.WebAuthnCredential, error)
	RemoveCredential(ctx context.Context, userID, id string) error
}

type EnvelopeService interface {
	List(ctx context.Context, userID string) ([]*models.VaultEnvelope, error)
	Save(ctx context.Context, userID string, e *models.VaultEnvelope) (*models.VaultEnvelope, error)
	Delete(ctx context.Context, userID, id string) error
}

type AdminService interface {
	ListLoginAttempts(ctx context.Context, email string, limit int) ([]*models.LoginAttempt, error)
	RevokeUser(ctx context.Context, adminID, userID string) (int64, error)
}

// principal returns the caller admitted by authInterceptor.
func principal(ctx context.Context) (guard.Principal, error) {
	p, ok := principalFrom(ctx)
	if !ok {
		return guard.Principal{}, status.Error(codes.Unauthenticated, msgUnauthenticated)
	}
	return p, nil
}

func kdfToProto(k cryptox.KDFParams) *pb.KdfParams {
	return &pb.KdfParams{Time: k.Time, MemoryKib: k.MemoryKiB, Threads: uint32(k.Threads)}
}

// kdfFromProto leaves range checks to cryptox; a thread count that does
// not fit a byte becomes 0 and is rejected there.
func kdfFromProto(k *pb.KdfParams) cryptox.KDFParams {
	threads := k.GetThreads()
	if threads > 255 {
		threads = 0
	}
	return cryptox.KDFParams{Time: k.GetTime(), MemoryKiB: k.GetMemoryKib(), Threads: uint8(threads)}
}

func toLoginResponse(r *services.LoginResult) *pb.LoginResponse {
	out := &pb.LoginResponse{
		UserId:               r.UserID,
		RequiresSecondFactor: r.RequiresSecondFactor,
		MfaToken:             r.MFAToken,
		Methods:              r.Methods,
		KeyGeneration:        int64(r.KeyGeneration),
	}
	if r.Session != nil {
		out.SessionToken = r.Session.Token
		out.ExpiresAt = timestamppb.New(r.Session.ExpiresAt)
	}
	return out
}

func toCeremony(c *services.Ceremony) *pb.Ceremony {
	return &pb.Ceremony{ChallengeId: c.ChallengeID, Options: c.Options, ExpiresAt: timestamppb.New(c.ExpiresAt)}
}

func toPasskey(c *models.WebAuthnCredential) *pb.Passkey {
	out := &pb.Passkey{Id: c.ID, Name: c.Name, CreatedAt: timestamppb.New(c.CreatedAt), Flagged: c.Flagged()}
	if c.LastUsedAt != nil {
		out.LastUsedAt = timestamppb.New(*c.LastUsedAt)
	}
	return out
}

func toEnvelope(e *models.VaultEnvelope) *pb.Envelope {
	return &pb.Envelope{
		Id:            e.ID,
		DisplayName:   e.DisplayName,
		Url:           e.URL,
		Payload:       e.Payload,
		KeyGeneration: int64(e.KeyGeneration),
		UpdatedAt:     timestamppb.New(e.UpdatedAt),
	}
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Prelogin(ctx context.Context, req *pb.PreloginRequest) (*pb.PreloginResponse, error) {
	res, err := s.svc.Auth.Prelogin(ctx, req.GetEmail())
	if err != nil {
		return nil, s.toStatus(ctx, "prelogin", err)
	}
	return &pb.PreloginResponse{Salt: res.Salt, Kdf: kdfToProto(res.KDF)}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.svc.Auth.Register(ctx, services.RegisterInput{
		Name:       req.GetName(),
		Email:      req.GetEmail(),
		AuthSecret: req.GetAuthSecret(),
		KDFSalt:    req.GetKdfSalt(),
		KDF:        kdfFromProto(req.GetKdf()),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}
	return &pb.RegisterResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	res, err := s.svc.Auth.Login(ctx, req.GetEmail(), req.GetAuthSecret(), remoteAddr(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}
	return toLoginResponse(res), nil
}

func (s *GRPCServer) VerifySecondFactor(ctx context.Context, req *pb.VerifySecondFactorRequest) (*pb.LoginResponse, error) {
	res, err := s.svc.Auth.VerifySecondFactor(ctx, req.GetMfaToken(), req.GetCode(), remoteAddr(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, "second factor", err)
	}
	return toLoginResponse(res), nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	return &pb.WhoAmIResponse{UserId: p.UserID, SessionId: p.SessionID, Role: string(p.Role), SecondFactor: p.SecondFactor}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	in := services.ChangePasswordInput{
		CurrentAuthSecret:  req.GetCurrentAuthSecret(),
		NewAuthSecret:      req.GetNewAuthSecret(),
		NewKDFSalt:         req.GetNewKdfSalt(),
		NewKDF:             kdfFromProto(req.GetNewKdf()),
		ExpectedGeneration: int(req.GetExpectedGeneration()),
		Envelopes:          make([]services.EnvelopeRekey, 0, len(req.GetEnvelopes())),
	}
	for _, e := range req.GetEnvelopes() {
		in.Envelopes = append(in.Envelopes, services.EnvelopeRekey{ID: e.GetId(), Payload: e.GetPayload()})
	}

	tok, err := s.svc.Auth.ChangePassword(ctx, p, in)
	if err != nil {
		return nil, s.toStatus(ctx, "change password", err)
	}
	return &pb.ChangePasswordResponse{SessionToken: tok.Token, ExpiresAt: timestamppb.New(tok.ExpiresAt)}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Auth.Logout(ctx, p.SessionID); err != nil {
		return nil, s.toStatus(ctx, "logout", err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) LogoutAll(ctx context.Context, _ *pb.LogoutAllRequest) (*pb.LogoutAllResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.svc.Auth.LogoutAll(ctx, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, "logout all", err)
	}
	return &pb.LogoutAllResponse{Revoked: n}, nil
}

func (s *GRPCServer) TwoFactorSetup(ctx context.Context, _ *pb.TwoFactorSetupRequest) (*pb.TwoFactorSetupResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.svc.TwoFactor.BeginEnrollment(ctx, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, "2fa setup", err)
	}
	return &pb.TwoFactorSetupResponse{Secret: e.Secret, Uri: e.URI}, nil
}

func (s *GRPCServer) TwoFactorConfirm(ctx context.Context, req *pb.TwoFactorConfirmRequest) (*pb.TwoFactorConfirmResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	backup, err := s.svc.TwoFactor.ConfirmEnrollment(ctx, p.UserID, req.GetSecret(), req.GetCode())
	if err != nil {
		return nil, s.toStatus(ctx, "2fa confirm", err)
	}
	return &pb.TwoFactorConfirmResponse{BackupCodes: backup}, nil
}

func (s *GRPCServer) TwoFactorDisable(ctx context.Context, req *pb.TwoFactorDisableRequest) (*pb.TwoFactorDisableResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.TwoFactor.Disable(ctx, p.UserID, req.GetAuthSecret()); err != nil {
		return nil, s.toStatus(ctx, "2fa disable", err)
	}
	return &pb.TwoFactorDisableResponse{}, nil
}

func (s *GRPCServer) TwoFactorStatus(ctx context.Context, _ *pb.TwoFactorStatusRequest) (*pb.TwoFactorStatusResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.svc.TwoFactor.Status(ctx, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, "2fa status", err)
	}
	return &pb.TwoFactorStatusResponse{Enabled: st.Enabled, State: string(st.State), BackupCodesLeft: int64(st.BackupCodesLeft)}, nil
}

func (s *GRPCServer) WebAuthnBeginRegistration(ctx context.Context, _ *pb.WebAuthnBeginRegistrationRequest) (*pb.Ceremony, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.svc.WebAuthn.BeginRegistration(ctx, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, "passkey registration", err)
	}
	return toCeremony(c), nil
}

func (s *GRPCServer) WebAuthnFinishRegistration(ctx context.Context, req *pb.WebAuthnFinishRegistrationRequest) (*pb.Passkey, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	cred, err := s.svc.WebAuthn.FinishRegistration(ctx, p.UserID, req.GetChallengeId(), req.GetName(), req.GetResponse())
	if err != nil {
		return nil, s.toStatus(ctx, "passkey registration", err)
	}
	return toPasskey(cred), nil
}

func (s *GRPCServer) WebAuthnBeginLogin(ctx context.Context, req *pb.WebAuthnBeginLoginRequest) (*pb.Ceremony, error) {
	c, err := s.svc.WebAuthn.BeginLogin(ctx, req.GetEmailHint())
	if err != nil {
		return nil, s.toStatus(ctx, "passkey login", err)
	}
	return toCeremony(c), nil
}

func (s *GRPCServer) WebAuthnFinishLogin(ctx context.Context, req *pb.WebAuthnFinishLoginRequest) (*pb.LoginResponse, error) {
	res, err := s.svc.WebAuthn.FinishLogin(ctx, req.GetChallengeId(), req.GetResponse(), remoteAddr(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, "passkey login", err)
	}
	return toLoginResponse(res), nil
}

func (s *GRPCServer) ListPasskeys(ctx context.Context, _ *pb.ListPasskeysRequest) (*pb.ListPasskeysResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	creds, err := s.svc.WebAuthn.ListCredentials(ctx, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, "list passkeys", err)
	}
	out := &pb.ListPasskeysResponse{Passkeys: make([]*pb.Passkey, 0, len(creds))}
	for _, c := range creds {
		out.Passkeys = append(out.Passkeys, toPasskey(c))
	}
	return out, nil
}

func (s *GRPCServer) RemovePasskey(ctx context.Context, req *pb.RemovePasskeyRequest) (*pb.RemovePasskeyResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.WebAuthn.RemoveCredential(ctx, p.UserID, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, "remove passkey", err)
	}
	return &pb.RemovePasskeyResponse{}, nil
}

func (s *GRPCServer) ListEnvelopes(ctx context.Context, _ *pb.ListEnvelopesRequest) (*pb.ListEnvelopesResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.svc.Envelopes.List(ctx, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, "list envelopes", err)
	}
	out := &pb.ListEnvelopesResponse{Envelopes: make([]*pb.Envelope, 0, len(list))}
	for _, e := range list {
		out.Envelopes = append(out.Envelopes, toEnvelope(e))
	}
	return out, nil
}

func (s *GRPCServer) SaveEnvelope(ctx context.Context, req *pb.SaveEnvelopeRequest) (*pb.SaveEnvelopeResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	e := req.GetEnvelope()
	if e == nil {
		return nil, status.Error(codes.InvalidArgument, msgInvalidArgument)
	}
	saved, err := s.svc.Envelopes.Save(ctx, p.UserID, &models.VaultEnvelope{
		ID:            e.GetId(),
		DisplayName:   e.GetDisplayName(),
		URL:           e.GetUrl(),
		Payload:       e.GetPayload(),
		KeyGeneration: int(e.GetKeyGeneration()),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "save envelope", err)
	}
	return &pb.SaveEnvelopeResponse{Envelope: toEnvelope(saved)}, nil
}

func (s *GRPCServer) DeleteEnvelope(ctx context.Context, req *pb.DeleteEnvelopeRequest) (*pb.DeleteEnvelopeResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Envelopes.Delete(ctx, p.UserID, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, "delete envelope", err)
	}
	return &pb.DeleteEnvelopeResponse{}, nil
}

func (s *GRPCServer) ListLoginAttempts(ctx context.Context, req *pb.ListLoginAttemptsRequest) (*pb.ListLoginAttemptsResponse, error) {
	list, err := s.svc.Admin.ListLoginAttempts(ctx, req.GetEmail(), int(req.GetLimit()))
	if err != nil {
		return nil, s.toStatus(ctx, "list login attempts", err)
	}
	out := &pb.ListLoginAttemptsResponse{Attempts: make([]*pb.LoginAttempt, 0, len(list))}
	for _, a := range list {
		out.Attempts = append(out.Attempts, &pb.LoginAttempt{
			Id:         a.ID,
			UserId:     a.UserID,
			Email:      a.Email,
			Success:    a.Success,
			Reason:     a.Reason,
			RemoteAddr: a.RemoteAddr,
			CreatedAt:  timestamppb.New(a.CreatedAt),
		})
	}
	return out, nil
}

func (s *GRPCServer) RevokeUser(ctx context.Context, req *pb.RevokeUserRequest) (*pb.RevokeUserResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.svc.Admin.RevokeUser(ctx, p.UserID, req.GetUserId())
	if err != nil {
		return nil, s.toStatus(ctx, "revoke user", err)
	}
	return &pb.RevokeUserResponse{Revoked: n}, nil
}
