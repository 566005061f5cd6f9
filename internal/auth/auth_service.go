package auth

import (
	"context"

	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/bootstrap"
	"github.com/Mauricio62/planilla-web/internal/session"
)

type Service struct {
	api      *backend.Client
	ep       backend.AuthEndpoints
	sessions *session.Store
	audit    bootstrap.AuditLogger
}

func NewService(api *backend.Client, ep backend.AuthEndpoints, sessions *session.Store, audit bootstrap.AuditLogger) *Service {
	return &Service{api: api, ep: ep, sessions: sessions, audit: audit}
}

// Login autentica contra el backend y deja token y usuario en la
// sesión. El token no se inspecciona más allá del TTL: el backend es el
// dueño de la autorización real.
func (s *Service) Login(ctx context.Context, sid string, req LoginRequest) (session.User, error) {
	var resp LoginResponse
	if err := s.api.Post(ctx, s.ep.Login, req, &resp); err != nil {
		return session.User{}, err
	}

	username := resp.Username
	if username == "" {
		username = req.Username
	}
	user := session.User{Username: username, Roles: resp.Roles}

	if err := s.sessions.Save(ctx, sid, resp.Token, user); err != nil {
		return session.User{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:   bootstrap.AuditLogin,
		Username: user.Username,
		Message:  "Inicio de sesión",
	})
	return user, nil
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var resp RegisterResponse
	if err := s.api.Post(ctx, s.ep.Register, req, &resp); err != nil {
		return RegisterResponse{}, err
	}
	return resp, nil
}

func (s *Service) Roles(ctx context.Context) ([]RoleDTO, error) {
	var roles []RoleDTO
	if err := s.api.Get(ctx, s.ep.Roles, nil, &roles); err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []RoleDTO{}
	}
	return roles, nil
}

// Logout limpia la sesión local. No hay endpoint de logout en el
// backend: el token simplemente se descarta.
func (s *Service) Logout(ctx context.Context, sid, username string) error {
	if err := s.sessions.Clear(ctx, sid); err != nil {
		return err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:   bootstrap.AuditLogout,
		Username: username,
		Message:  "Cierre de sesión",
	})
	return nil
}
