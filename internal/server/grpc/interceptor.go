package grpc

import (
	"context"

	"github.com/haeli05/mintvault/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const accountIDKey ctxKey = "accountID"

// public methods served without an access token
var openMethods = map[string]bool{
	"/mintvault.service.VaultService/Register": true,
	"/mintvault.service.VaultService/Login":    true,
	"/mintvault.service.VaultService/Ping":     true,
}

// accessTokenInterceptor resolves the caller's account ID from the
// access_token metadata entry and stashes it in the request context.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !openMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get("access_token")
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		accountID, err := auth.GetAccountIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, accountIDKey, accountID)

	}

	return handler(ctx, req)
}

// callerFromContext returns the account ID the interceptor resolved.
func callerFromContext(ctx context.Context) (string, error) {
	accountID, ok := ctx.Value(accountIDKey).(string)
	if !ok || accountID == "" {
		return "", status.Error(codes.Unauthenticated, "missing caller identity")
	}
	return accountID, nil
}
