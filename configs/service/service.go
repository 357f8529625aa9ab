package service

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"rotorhub/configs/domain"
)

type ConfigService struct {
	Config   *domain.Config
	Location string
}

// Watch reloads the config every d duration
func (s *ConfigService) Watch(d time.Duration) {
	for {
		if err := s.Reload(); err != nil {
			log.Error(err)
		}
		time.Sleep(d)
	}
}

// Reload reads the config file and applies changes
func (s *ConfigService) Reload() error {
	data, err := os.ReadFile(s.Location)
	if err != nil {
		return err
	}
	return s.Config.SetFromBytes(data)
}
