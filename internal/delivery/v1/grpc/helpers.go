package grpc

import (
	"errors"

	"github.com/DRSN-tech/voice-backend/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrUserNotFound):
		return status.Error(codes.NotFound, e.ErrUserNotFound.Error())
	case errors.Is(err, e.ErrInvalidUserID):
		return status.Error(codes.InvalidArgument, e.ErrInvalidUserID.Error())
	case errors.Is(err, e.ErrNoAudio):
		return status.Error(codes.InvalidArgument, e.ErrNoAudio.Error())
	case errors.Is(err, e.ErrExtractionFailed):
		return status.Error(codes.InvalidArgument, e.ErrExtractionFailed.Error())
	case errors.Is(err, e.ErrTranscodeFailed):
		return status.Error(codes.InvalidArgument, e.ErrTranscodeFailed.Error())
	case errors.Is(err, e.ErrEmbeddingStoreFailed):
		return status.Error(codes.Unavailable, e.ErrEmbeddingStoreFailed.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
