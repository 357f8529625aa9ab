package domain

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config wraps the map holding the application config values
type Config struct {
	config map[string]interface{}
	lock   sync.RWMutex
}

// SetFromBytes replaces the internal config from raw YAML
func (c *Config) SetFromBytes(data []byte) error {
	var rawConfig interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return err
	}
	appConfig, ok := rawConfig.(map[string]interface{})
	if !ok {
		return fmt.Errorf("config is not a map")
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.config = appConfig
	return nil
}

// Get returns the config section for a service, layered on top of "base".
func (c *Config) Get(serviceName string) (map[string]interface{}, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	base, ok := c.config["base"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("base config is not a map")
	}

	if _, ok = c.config[serviceName]; !ok {
		return base, nil
	}

	section, ok := c.config[serviceName].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("service %q config is not a map", serviceName)
	}

	merged := make(map[string]interface{}, len(base)+len(section))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range section {
		merged[k] = v
	}

	return merged, nil
}
