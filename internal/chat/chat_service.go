package chat

import (
	"context"

	"github.com/Mauricio62/planilla-web/internal/backend"
)

type Service struct {
	api *backend.Client
	ep  backend.ChatEndpoints
}

func NewService(api *backend.Client, ep backend.ChatEndpoints) *Service {
	return &Service{api: api, ep: ep}
}

func (s *Service) CreateSession(ctx context.Context) (ChatSessionResponse, error) {
	var out ChatSessionResponse
	if err := s.api.Post(ctx, s.ep.Session, struct{}{}, &out); err != nil {
		return ChatSessionResponse{}, err
	}
	return out, nil
}

func (s *Service) SendMessage(ctx context.Context, message, sessionID string) (ChatMessageResponse, error) {
	req := ChatMessageRequest{Message: message, SessionID: sessionID}
	var out ChatMessageResponse
	if err := s.api.Post(ctx, s.ep.Message, req, &out); err != nil {
		return ChatMessageResponse{}, err
	}
	return out, nil
}

func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	return s.api.Delete(ctx, s.ep.Session+"/"+sessionID)
}
