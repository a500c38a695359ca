// Package client wraps the vault gRPC API for the CLI: it manages the
// connection, attaches the access token to outgoing calls, and maps status
// codes back onto client errors.
package client

import (
	"context"
	"fmt"

	pb "github.com/haeli05/mintvault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// VaultState is the accounting snapshot of one vault.
type VaultState struct {
	DepositLimit uint64
	TotalUsdc    uint64
	TotalAssets  uint64
}

// DepositOutcome reports a finished deposit.
type DepositOutcome struct {
	AssetAmount uint64
	TotalUsdc   uint64
	TotalAssets uint64
}

// RedeemOutcome reports a finished redemption.
type RedeemOutcome struct {
	UsdcAmount  uint64
	TotalUsdc   uint64
	TotalAssets uint64
}

// WithdrawOutcome reports the vault totals after a reserve withdrawal.
type WithdrawOutcome struct {
	TotalUsdc   uint64
	TotalAssets uint64
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.VaultServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete("access_token")
	md.Set("access_token", token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewVaultClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVaultServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// IsLoggedIn reports whether a login has stored an access token.
func (s *GRPCClient) IsLoggedIn() bool {
	return s.accessToken != ""
}

func (s *GRPCClient) Register(ctx context.Context, userName, password string) (string, error) {

	req := &pb.RegisterRequest{Username: userName, Password: password}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.AccountId, nil

}

// Login exchanges the credentials for an access token and stores it for
// subsequent calls.
func (s *GRPCClient) Login(ctx context.Context, userName, password string) error {

	req := &pb.LoginRequest{Username: userName, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken

	return nil

}

func (s *GRPCClient) Initialize(ctx context.Context) (string, error) {

	resp, err := s.client.Initialize(ctx, &pb.InitializeRequest{})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.Authority, nil

}

func (s *GRPCClient) CreateAsset(ctx context.Context, assetMint, name, ticker string, price, depositLimit uint64) (string, string, error) {

	req := &pb.CreateAssetRequest{
		AssetMint:    assetMint,
		Name:         name,
		Ticker:       ticker,
		Price:        price,
		DepositLimit: depositLimit,
	}

	resp, err := s.client.CreateAsset(ctx, req)
	if err != nil {
		return "", "", s.mapError(err)
	}

	return resp.AssetId, resp.VaultId, nil

}

func (s *GRPCClient) Deposit(ctx context.Context, assetMint string, amount uint64) (*DepositOutcome, error) {

	req := &pb.DepositRequest{AssetMint: assetMint, Amount: amount}

	resp, err := s.client.Deposit(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &DepositOutcome{
		AssetAmount: resp.AssetAmount,
		TotalUsdc:   resp.TotalUsdc,
		TotalAssets: resp.TotalAssets,
	}, nil

}

func (s *GRPCClient) Redeem(ctx context.Context, assetMint string, amount uint64) (*RedeemOutcome, error) {

	req := &pb.RedeemRequest{AssetMint: assetMint, Amount: amount}

	resp, err := s.client.Redeem(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &RedeemOutcome{
		UsdcAmount:  resp.UsdcAmount,
		TotalUsdc:   resp.TotalUsdc,
		TotalAssets: resp.TotalAssets,
	}, nil

}

func (s *GRPCClient) AdminWithdraw(ctx context.Context, assetMint string, amount uint64) (*WithdrawOutcome, error) {

	req := &pb.AdminWithdrawRequest{AssetMint: assetMint, Amount: amount}

	resp, err := s.client.AdminWithdraw(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &WithdrawOutcome{
		TotalUsdc:   resp.TotalUsdc,
		TotalAssets: resp.TotalAssets,
	}, nil

}

func (s *GRPCClient) GetVault(ctx context.Context, assetMint string) (*VaultState, error) {

	req := &pb.GetVaultRequest{AssetMint: assetMint}

	resp, err := s.client.GetVault(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &VaultState{
		DepositLimit: resp.DepositLimit,
		TotalUsdc:    resp.TotalUsdc,
		TotalAssets:  resp.TotalAssets,
	}, nil

}

func (s *GRPCClient) Balance(ctx context.Context, mint string) (uint64, error) {

	req := &pb.BalanceRequest{Mint: mint}

	resp, err := s.client.Balance(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}

	return resp.Amount, nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument, codes.FailedPrecondition, codes.AlreadyExists, codes.NotFound, codes.Aborted:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
