package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Manager provides thread-safe access to environment variables and configuration settings
type Manager struct {
	envVars           map[string]string
	mutex             sync.RWMutex
	OperatorEnvConfig // Embed OperatorEnvConfig
}

// OperatorEnvConfig carries every upstream endpoint and credential the
// operator adapters need. The CHC view-state and event-validation blobs are
// static session-replay tokens captured from the portal, treated as secrets
// rather than computed.
type OperatorEnvConfig struct {
	BhlURL             *string
	BhlBaseID          *string
	NhvURL             *string
	ChcURL             *string
	ChcBase            *string
	ChcCountry         *string
	ChcViewState       *string
	ChcEventValidation *string
	RedisHost          *string
	RedisPort          *string
	RedisDb            *int
	RedisPrtl          *int
	RedisUser          *string
	RedisPw            *string
	Host               *string
	Port               *int
	OpsPort            *int
	ServiceName        *string
}

// NewManager creates a new instance of Manager and loads the configuration automatically
func NewManager() (*Manager, error) {
	manager := &Manager{envVars: make(map[string]string)}
	if err := manager.LoadEnvFile(".env"); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := manager.LoadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return manager, nil
}

// LoadConfig populates the embedded OperatorEnvConfig fields from environment variables
func (m *Manager) LoadConfig() error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	BhlURL := m.MustGet("BHL_URL")
	BhlBaseID := m.MustGet("BHL_BASE_ID")
	NhvURL := m.MustGet("NHV_URL")
	ChcURL := m.MustGet("CHC_URL")
	ChcBase := m.MustGet("CHC_BASE")
	ChcCountry := m.MustGet("CHC_COUNTRY")
	ChcViewState := m.MustGet("CHC_VIEWSTATE")
	ChcEventValidation := m.MustGet("CHC_EVENTVALIDATION")
	RedisHost := m.MustGet("REDIS_HOST")
	RedisPort := m.MustGet("REDIS_PORT")
	RedisUser := m.MustGet("REDIS_USER")
	RedisPw := m.MustGet("REDIS_PW")
	redisDB, _ := strconv.Atoi(m.MustGet("REDIS_DB"))
	redisPrtl, _ := strconv.Atoi(m.MustGet("REDIS_PROTOCOL"))
	Host := m.MustGet("HOST")
	Port, _ := strconv.Atoi(m.MustGet("PORT"))
	OpsPort, _ := strconv.Atoi(m.MustGet("OPS_PORT"))
	ServiceName := m.MustGet("SERVICE_NAME")
	// Populate the embedded OperatorEnvConfig fields directly
	m.OperatorEnvConfig = OperatorEnvConfig{
		BhlURL:             &BhlURL,
		BhlBaseID:          &BhlBaseID,
		NhvURL:             &NhvURL,
		ChcURL:             &ChcURL,
		ChcBase:            &ChcBase,
		ChcCountry:         &ChcCountry,
		ChcViewState:       &ChcViewState,
		ChcEventValidation: &ChcEventValidation,
		RedisHost:          &RedisHost,
		RedisPort:          &RedisPort,
		RedisDb:            &redisDB,
		RedisPrtl:          &redisPrtl,
		RedisUser:          &RedisUser,
		RedisPw:            &RedisPw,
		Host:               &Host,
		Port:               &Port,
		OpsPort:            &OpsPort,
		ServiceName:        &ServiceName,
	}

	return nil
}

// LoadEnvFile loads environment variables from a file
func (m *Manager) LoadEnvFile(filePath string) error {
	if err := validateFilePath(filePath); err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open .env file: %w", err)
	}
	defer file.Close()

	tempVars := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := m.processLine(scanner.Text(), tempVars); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading .env file: %w", err)
	}

	m.mutex.Lock()
	m.envVars = tempVars
	m.mutex.Unlock()
	return nil
}

// Get retrieves a value from the environment variables
func (m *Manager) Get(key string) (string, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	value, exists := m.envVars[key]
	return value, exists
}

// MustGet retrieves a value and panics if it doesn't exist
func (m *Manager) MustGet(key string) string {
	value, exists := m.Get(key)
	if !exists {
		panic(fmt.Sprintf("required environment variable %s not found", key))
	}
	return value
}

func (m *Manager) processLine(line string, tempVars map[string]string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format for line: %s", line)
	}

	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])

	if err := validateKeyValue(key, value); err != nil {
		return fmt.Errorf("invalid key-value pair: %w", err)
	}

	tempVars[key] = value
	return nil
}
