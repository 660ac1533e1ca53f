package grpc

import (
	"context"

	"github.com/DRSN-tech/voice-backend/internal/proto"
	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
)

// VerificationService — gRPC-поверхность верификации голоса: та же семантика,
// что и у HTTP-эндпоинтов /audio/process и /audio/compare.
type VerificationService struct {
	proto.UnimplementedVerificationServiceServer
	verificationUC usecase.VerificationUC
	logger         logger.Logger
}

func NewVerificationService(verificationUC usecase.VerificationUC, logger logger.Logger) *VerificationService {
	return &VerificationService{verificationUC: verificationUC, logger: logger}
}

func (g *VerificationService) ProcessVoice(ctx context.Context, req *proto.ProcessVoiceRequest) (*proto.ProcessVoiceResponse, error) {
	const op = "grpc.ProcessVoice"

	audio := usecase.NewAudioUpload(req.AudioData, "audio/wav", int64(len(req.AudioData)), "grpc-upload")

	if err := g.verificationUC.ProcessAudio(ctx, usecase.NewProcessAudioReq(req.UserId, audio)); err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.ProcessVoiceResponse{}, nil
}

func (g *VerificationService) CompareVoice(ctx context.Context, req *proto.CompareVoiceRequest) (*proto.CompareVoiceResponse, error) {
	const op = "grpc.CompareVoice"

	audio := usecase.NewAudioUpload(req.AudioData, "audio/wav", int64(len(req.AudioData)), "grpc-upload")

	res, err := g.verificationUC.CompareAudio(ctx, usecase.NewCompareAudioReq(req.UserId, audio))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.CompareVoiceResponse{
		Similarity:      res.Similarity,
		StoredEmbedding: res.StoredEmbedding,
		NewEmbedding:    res.NewEmbedding,
	}, nil
}
