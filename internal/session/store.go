// Package session guarda el estado de sesión del usuario en redis,
// keyed por una cookie opaca. Son los dos mismos valores que el front
// persistía en el navegador: el token bearer y el usuario actual.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName es la cookie que lleva el id de sesión.
const CookieName = "planilla_session"

const (
	tokenKeyPrefix = "session:auth_token:"
	userKeyPrefix  = "session:current_user:"
)

var ErrNoSession = errors.New("session: no active session")

// User es el usuario decodificado de la respuesta de login.
type User struct {
	ID       int64    `json:"id,omitempty"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

func (u User) HasAnyRole(required []string) bool {
	for _, want := range required {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

type Store struct {
	rdb        *redis.Client
	defaultTTL time.Duration
}

func NewStore(rdb *redis.Client, defaultTTL time.Duration) *Store {
	return &Store{rdb: rdb, defaultTTL: defaultTTL}
}

// NewSessionID genera el identificador opaco que viaja en la cookie.
func NewSessionID() string {
	return uuid.New().String()
}

// Save persiste token y usuario de una sola vez tras el login. El TTL
// se acota al exp del token cuando el backend lo incluye; el token no
// se valida localmente, solo se lee el claim.
func (s *Store) Save(ctx context.Context, sid, token string, user User) error {
	ttl := s.ttlFor(token)

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, tokenKeyPrefix+sid, token, ttl)
	pipe.Set(ctx, userKeyPrefix+sid, raw, ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Token es la lectura síncrona del último token publicado.
func (s *Store) Token(ctx context.Context, sid string) (string, error) {
	token, err := s.rdb.Get(ctx, tokenKeyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	return token, err
}

// CurrentUser devuelve el usuario de la sesión, o ErrNoSession si no
// hay nadie autenticado.
func (s *Store) CurrentUser(ctx context.Context, sid string) (User, error) {
	raw, err := s.rdb.Get(ctx, userKeyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return User{}, ErrNoSession
	}
	if err != nil {
		return User{}, err
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Clear borra token y usuario; deja la sesión como no autenticada.
func (s *Store) Clear(ctx context.Context, sid string) error {
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, tokenKeyPrefix+sid)
	pipe.Del(ctx, userKeyPrefix+sid)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) ttlFor(token string) time.Duration {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return s.defaultTTL
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.defaultTTL
	}

	remaining := time.Until(exp.Time)
	if remaining <= 0 || remaining > s.defaultTTL {
		return s.defaultTTL
	}
	return remaining
}
