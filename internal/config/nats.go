package config

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// NATSConn is nil when NATS_URL is not configured.
var NATSConn *nats.Conn

func InitNATS(s *Settings) {
	if s.NATSURL == "" {
		Logger.Info("NATS_URL not set, domain events are disabled")
		return
	}

	var err error
	NATSConn, err = nats.Connect(s.NATSURL, nats.Name("yatube"))
	if err != nil {
		Logger.Fatal("Error connecting to NATS", zap.String("url", s.NATSURL), zap.Error(err))
	}
	Logger.Info("Connected to NATS", zap.String("url", NATSConn.ConnectedUrl()))
}
