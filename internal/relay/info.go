package relay

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vovakirdan/ircbar/internal/info"
)

// Hook names served by RegisterInfo.
const (
	InfoClientCount = "relay_client_count"
	InfolistRelay   = "relay"
)

// RegisterInfo exposes the count and list queries on hub.
func (s *Service) RegisterInfo(hub *info.Hub) error {
	err := hub.RegisterInfo(
		InfoClientCount,
		"number of relay clients",
		"status name (optional): "+strings.Join(StatusNames(), ", "),
		s.countInfo,
	)
	if err != nil {
		return err
	}
	return hub.RegisterInfolist(
		InfolistRelay,
		"list of relay clients",
		"relay client id (optional)",
		"",
		s.listInfo,
	)
}

func (s *Service) countInfo(args string) (string, error) {
	n, err := s.Count(args)
	if err != nil {
		s.log.Debug().Err(err).Str("info", InfoClientCount).Msg("count rejected")
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (s *Service) listInfo(id, _ string) (any, error) {
	recs, err := s.ListID(id)
	if err != nil {
		if errors.Is(err, ErrStaleClient) {
			s.log.Debug().Str("client_id", id).Msg("relay client not found")
		}
		return nil, err
	}
	return recs, nil
}
