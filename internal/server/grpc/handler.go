package grpc

import (
	"context"
	"errors"

	"github.com/haeli05/mintvault/internal/common"
	pb "github.com/haeli05/mintvault/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError maps service errors onto gRPC status codes. Aborted marks
// retryable write conflicts; everything unrecognized stays Internal so the
// detail is not leaked to callers.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrorAlreadyInitialized),
		errors.Is(err, common.ErrorAssetAlreadyExists),
		errors.Is(err, common.ErrorUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorDepositLimitExceeded),
		errors.Is(err, common.ErrorInsufficientReserve),
		errors.Is(err, common.ErrorInsufficientBalance):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorInvalidArgument),
		errors.Is(err, common.ErrorInvalidAmount),
		errors.Is(err, common.ErrorInvalidPrice),
		errors.Is(err, common.ErrorNameTooLong),
		errors.Is(err, common.ErrorTickerTooLong):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	account, err := s.accounts.Register(ctx, req.Username, req.Password)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterResponse{AccountId: account.ID}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	token, err := s.accounts.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{AccessToken: token}, nil

}

func (s *GRPCServer) Initialize(ctx context.Context, req *pb.InitializeRequest) (*pb.InitializeResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	admin, err := s.vault.Initialize(ctx, caller)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Initialized", "authority", admin.Authority)
	return &pb.InitializeResponse{Authority: admin.Authority}, nil

}

func (s *GRPCServer) CreateAsset(ctx context.Context, req *pb.CreateAssetRequest) (*pb.CreateAssetResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	asset, err := s.vault.CreateAsset(ctx, caller, req.AssetMint, req.Name, req.Ticker, req.Price, req.DepositLimit)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Asset created", "mint", asset.Mint, "ticker", asset.Ticker)
	return &pb.CreateAssetResponse{AssetId: asset.ID, VaultId: asset.VaultID}, nil

}

func (s *GRPCServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.DepositResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.vault.Deposit(ctx, caller, req.AssetMint, req.Amount)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.DepositResponse{
		AssetAmount: result.AssetAmount,
		TotalUsdc:   result.TotalUsdc,
		TotalAssets: result.TotalAssets,
	}, nil

}

func (s *GRPCServer) Redeem(ctx context.Context, req *pb.RedeemRequest) (*pb.RedeemResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.vault.Redeem(ctx, caller, req.AssetMint, req.Amount)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.RedeemResponse{
		UsdcAmount:  result.UsdcAmount,
		TotalUsdc:   result.TotalUsdc,
		TotalAssets: result.TotalAssets,
	}, nil

}

func (s *GRPCServer) AdminWithdraw(ctx context.Context, req *pb.AdminWithdrawRequest) (*pb.AdminWithdrawResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.vault.AdminWithdraw(ctx, caller, req.AssetMint, req.Amount)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Reserve withdrawal", "mint", req.AssetMint, "amount", req.Amount)
	return &pb.AdminWithdrawResponse{
		TotalUsdc:   result.TotalUsdc,
		TotalAssets: result.TotalAssets,
	}, nil

}

func (s *GRPCServer) GetVault(ctx context.Context, req *pb.GetVaultRequest) (*pb.GetVaultResponse, error) {

	if _, err := callerFromContext(ctx); err != nil {
		return nil, err
	}

	vault, err := s.vault.GetVault(ctx, req.AssetMint)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetVaultResponse{
		DepositLimit: vault.DepositLimit,
		TotalUsdc:    vault.TotalUsdc,
		TotalAssets:  vault.TotalAssets,
	}, nil

}

func (s *GRPCServer) Balance(ctx context.Context, req *pb.BalanceRequest) (*pb.BalanceResponse, error) {

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := s.vault.Balance(ctx, caller, req.Mint)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.BalanceResponse{Amount: amount}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
