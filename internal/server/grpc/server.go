// Package grpc exposes the vault over a public gRPC endpoint, translating
// between protobuf messages and the service layer.
package grpc

import (
	"context"
	"net"

	"github.com/haeli05/mintvault/internal/logging"
	pb "github.com/haeli05/mintvault/internal/proto"
	"github.com/haeli05/mintvault/internal/server/models"
	"github.com/haeli05/mintvault/internal/server/services"
	"google.golang.org/grpc"
)

// accountsService is the slice of the account service the transport needs.
type accountsService interface {
	Register(ctx context.Context, userName, password string) (*models.Account, error)
	Login(ctx context.Context, userName, password string) (string, error)
}

// vaultService is the slice of the vault service the transport needs.
type vaultService interface {
	Initialize(ctx context.Context, caller string) (*models.Admin, error)
	CreateAsset(ctx context.Context, caller, assetMint, name, ticker string, price, depositLimit uint64) (*models.Asset, error)
	Deposit(ctx context.Context, caller, assetMint string, amount uint64) (*services.DepositResult, error)
	Redeem(ctx context.Context, caller, assetMint string, amount uint64) (*services.RedeemResult, error)
	AdminWithdraw(ctx context.Context, caller, assetMint string, amount uint64) (*services.WithdrawResult, error)
	GetVault(ctx context.Context, assetMint string) (*models.Vault, error)
	Balance(ctx context.Context, caller, mint string) (uint64, error)
}

type GRPCServer struct {
	pb.UnimplementedVaultServiceServer
	address   string
	accounts  accountsService
	vault     vaultService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, as accountsService, vs vaultService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  as,
		vault:     vs,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterVaultServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
