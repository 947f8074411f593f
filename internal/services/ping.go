package services

import (
	"context"
	"errors"
	"fmt"
)

// Pinger проверяет доступность хранилища реестра.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingService отвечает на health-check запросы.
type PingService struct {
	conn Pinger
}

func NewPingService(conn Pinger) *PingService {
	return &PingService{conn: conn}
}

// CheckConnection пингует хранилище. Без хранилища - ошибка.
func (s *PingService) CheckConnection(ctx context.Context) error {
	if s.conn == nil {
		return errors.New("ping error: storage is not configured")
	}
	if err := s.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping error: %w", err)
	}
	return nil
}
