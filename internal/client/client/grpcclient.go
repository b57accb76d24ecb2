package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	pb "github.com/dmitrijs2005/eterbox/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	auth        pb.AuthServiceClient
	vault       pb.VaultServiceClient
	admin       pb.AdminServiceClient

	mu    sync.RWMutex
	token string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AuthorizationHeaderName)
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.SessionToken(); token != "" {
		ctx = withSessionToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.sessionTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.auth = pb.NewAuthServiceClient(conn)
	c.vault = pb.NewVaultServiceClient(conn)
	c.admin = pb.NewAdminServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) SetSessionToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *GRPCClient) SessionToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return ErrInvalidArgument
	case codes.ResourceExhausted:
		return ErrTooManyAttempts
	case codes.FailedPrecondition:
		return ErrVaultChanged
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func kdfFromProto(k *pb.KdfParams) cryptox.KDFParams {
	return cryptox.KDFParams{Time: k.GetTime(), MemoryKiB: k.GetMemoryKib(), Threads: uint8(k.GetThreads())}
}

func kdfToProto(k cryptox.KDFParams) *pb.KdfParams {
	return &pb.KdfParams{Time: k.Time, MemoryKib: k.MemoryKiB, Threads: uint32(k.Threads)}
}

// timeFrom returns the zero time for an unset timestamp.
func timeFrom(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func loginFromProto(r *pb.LoginResponse) *LoginResponse {
	return &LoginResponse{
		SessionToken:         r.GetSessionToken(),
		ExpiresAt:            timeFrom(r.GetExpiresAt()),
		RequiresSecondFactor: r.GetRequiresSecondFactor(),
		UserID:               r.GetUserId(),
		MFAToken:             r.GetMfaToken(),
		Methods:              r.GetMethods(),
		KeyGeneration:        int(r.GetKeyGeneration()),
	}
}

func envelopeFromProto(e *pb.Envelope) Envelope {
	return Envelope{
		ID:            e.GetId(),
		DisplayName:   e.GetDisplayName(),
		URL:           e.GetUrl(),
		Payload:       e.GetPayload(),
		KeyGeneration: int(e.GetKeyGeneration()),
		UpdatedAt:     timeFrom(e.GetUpdatedAt()),
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.auth.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Prelogin(ctx context.Context, email string) (*PreloginResponse, error) {
	resp, err := s.auth.Prelogin(ctx, &pb.PreloginRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &PreloginResponse{Salt: resp.GetSalt(), KDF: kdfFromProto(resp.GetKdf())}, nil
}

func (s *GRPCClient) Register(ctx context.Context, req *RegisterRequest) (string, error) {
	resp, err := s.auth.Register(ctx, &pb.RegisterRequest{
		Name:       req.Name,
		Email:      req.Email,
		AuthSecret: req.AuthSecret,
		KdfSalt:    req.KDFSalt,
		Kdf:        kdfToProto(req.KDF),
	})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, authSecret []byte) (*LoginResponse, error) {
	resp, err := s.auth.Login(ctx, &pb.LoginRequest{Email: email, AuthSecret: authSecret})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.GetSessionToken() != "" {
		s.SetSessionToken(resp.GetSessionToken())
	}
	return loginFromProto(resp), nil
}

func (s *GRPCClient) VerifySecondFactor(ctx context.Context, mfaToken, code string) (*LoginResponse, error) {
	resp, err := s.auth.VerifySecondFactor(ctx, &pb.VerifySecondFactorRequest{MfaToken: mfaToken, Code: code})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.SetSessionToken(resp.GetSessionToken())
	return loginFromProto(resp), nil
}

func (s *GRPCClient) WhoAmI(ctx context.Context) (*WhoAmIResponse, error) {
	resp, err := s.auth.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &WhoAmIResponse{
		UserID:       resp.GetUserId(),
		SessionID:    resp.GetSessionId(),
		Role:         resp.GetRole(),
		SecondFactor: resp.GetSecondFactor(),
	}, nil
}

// ChangePassword swaps in the session the server issued after revoking
// every other one.
func (s *GRPCClient) ChangePassword(ctx context.Context, req *ChangePasswordRequest) (*SessionResponse, error) {
	in := &pb.ChangePasswordRequest{
		CurrentAuthSecret:  req.CurrentAuthSecret,
		NewAuthSecret:      req.NewAuthSecret,
		NewKdfSalt:         req.NewKDFSalt,
		NewKdf:             kdfToProto(req.NewKDF),
		ExpectedGeneration: int64(req.ExpectedGeneration),
		Envelopes:          make([]*pb.EnvelopeRekey, 0, len(req.Envelopes)),
	}
	for _, e := range req.Envelopes {
		in.Envelopes = append(in.Envelopes, &pb.EnvelopeRekey{Id: e.ID, Payload: e.Payload})
	}

	resp, err := s.auth.ChangePassword(ctx, in)
	if err != nil {
		return nil, s.mapError(err)
	}
	s.SetSessionToken(resp.GetSessionToken())
	return &SessionResponse{SessionToken: resp.GetSessionToken(), ExpiresAt: timeFrom(resp.GetExpiresAt())}, nil
}

func (s *GRPCClient) Logout(ctx context.Context) error {
	_, err := s.auth.Logout(ctx, &pb.LogoutRequest{})
	s.SetSessionToken("")
	return s.mapError(err)
}

func (s *GRPCClient) LogoutAll(ctx context.Context) (int64, error) {
	resp, err := s.auth.LogoutAll(ctx, &pb.LogoutAllRequest{})
	s.SetSessionToken("")
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.GetRevoked(), nil
}

func (s *GRPCClient) TwoFactorSetup(ctx context.Context) (*TwoFactorSetupResponse, error) {
	resp, err := s.auth.TwoFactorSetup(ctx, &pb.TwoFactorSetupRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &TwoFactorSetupResponse{Secret: resp.GetSecret(), URI: resp.GetUri()}, nil
}

func (s *GRPCClient) TwoFactorConfirm(ctx context.Context, secret, code string) ([]string, error) {
	resp, err := s.auth.TwoFactorConfirm(ctx, &pb.TwoFactorConfirmRequest{Secret: secret, Code: code})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetBackupCodes(), nil
}

func (s *GRPCClient) TwoFactorDisable(ctx context.Context, authSecret []byte) error {
	_, err := s.auth.TwoFactorDisable(ctx, &pb.TwoFactorDisableRequest{AuthSecret: authSecret})
	return s.mapError(err)
}

func (s *GRPCClient) TwoFactorStatus(ctx context.Context) (*TwoFactorStatusResponse, error) {
	resp, err := s.auth.TwoFactorStatus(ctx, &pb.TwoFactorStatusRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &TwoFactorStatusResponse{
		Enabled:         resp.GetEnabled(),
		State:           resp.GetState(),
		BackupCodesLeft: int(resp.GetBackupCodesLeft()),
	}, nil
}

func (s *GRPCClient) ListPasskeys(ctx context.Context) ([]Passkey, error) {
	resp, err := s.auth.ListPasskeys(ctx, &pb.ListPasskeysRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]Passkey, 0, len(resp.GetPasskeys()))
	for _, p := range resp.GetPasskeys() {
		k := Passkey{ID: p.GetId(), Name: p.GetName(), CreatedAt: timeFrom(p.GetCreatedAt()), Flagged: p.GetFlagged()}
		if p.GetLastUsedAt() != nil {
			t := p.GetLastUsedAt().AsTime()
			k.LastUsedAt = &t
		}
		out = append(out, k)
	}
	return out, nil
}

func (s *GRPCClient) RemovePasskey(ctx context.Context, id string) error {
	_, err := s.auth.RemovePasskey(ctx, &pb.RemovePasskeyRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) ListEnvelopes(ctx context.Context) ([]Envelope, error) {
	resp, err := s.vault.ListEnvelopes(ctx, &pb.ListEnvelopesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]Envelope, 0, len(resp.GetEnvelopes()))
	for _, e := range resp.GetEnvelopes() {
		out = append(out, envelopeFromProto(e))
	}
	return out, nil
}

func (s *GRPCClient) SaveEnvelope(ctx context.Context, e Envelope) (*Envelope, error) {
	resp, err := s.vault.SaveEnvelope(ctx, &pb.SaveEnvelopeRequest{Envelope: &pb.Envelope{
		Id:            e.ID,
		DisplayName:   e.DisplayName,
		Url:           e.URL,
		Payload:       e.Payload,
		KeyGeneration: int64(e.KeyGeneration),
	}})
	if err != nil {
		return nil, s.mapError(err)
	}
	saved := envelopeFromProto(resp.GetEnvelope())
	return &saved, nil
}

func (s *GRPCClient) DeleteEnvelope(ctx context.Context, id string) error {
	_, err := s.vault.DeleteEnvelope(ctx, &pb.DeleteEnvelopeRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) AdminListLoginAttempts(ctx context.Context, email string, limit int) ([]LoginAttempt, error) {
	resp, err := s.admin.ListLoginAttempts(ctx, &pb.ListLoginAttemptsRequest{Email: email, Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]LoginAttempt, 0, len(resp.GetAttempts()))
	for _, a := range resp.GetAttempts() {
		out = append(out, LoginAttempt{
			ID:         a.GetId(),
			UserID:     a.GetUserId(),
			Email:      a.GetEmail(),
			Success:    a.GetSuccess(),
			Reason:     a.GetReason(),
			RemoteAddr: a.GetRemoteAddr(),
			CreatedAt:  timeFrom(a.GetCreatedAt()),
		})
	}
	return out, nil
}

func (s *GRPCClient) AdminRevokeUser(ctx context.Context, userID string) (int64, error) {
	resp, err := s.admin.RevokeUser(ctx, &pb.RevokeUserRequest{UserId: userID})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.GetRevoked(), nil
}
