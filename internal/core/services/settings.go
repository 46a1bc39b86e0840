package services

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
	"github.com/custodia-labs/wpdocs/internal/core/ports/driven"
	"github.com/custodia-labs/wpdocs/internal/core/ports/driving"
	"github.com/custodia-labs/wpdocs/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDocsAPIBase     = "docs.api_base"
	KeyReferenceBase   = "docs.reference_base"
	KeyVIPAPIBase      = "vip.api_base"
	KeyVIPSearchURL    = "vip.search_url"
	KeyTimeout         = "http.timeout_seconds"
	KeyVIPProbeTimeout = "vip.api_timeout_seconds"
	KeyUserAgent       = "http.user_agent"
)

type settingKind int

const (
	settingURL settingKind = iota
	settingTemplate
	settingSeconds
	settingText
)

var settingKinds = map[string]settingKind{
	KeyDocsAPIBase:     settingURL,
	KeyReferenceBase:   settingURL,
	KeyVIPAPIBase:      settingURL,
	KeyVIPSearchURL:    settingTemplate,
	KeyTimeout:         settingSeconds,
	KeyVIPProbeTimeout: settingSeconds,
	KeyUserAgent:       settingText,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	version     string
}

// NewSettingsService creates a new settings service. The version is used
// in the default User-Agent.
func NewSettingsService(configStore driven.ConfigStore, version string) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		version:     version,
	}
}

// Get retrieves current source settings. Missing or invalid stored values
// fall back to defaults.
func (s *SettingsService) Get() domain.SourceSettings {
	defaults := domain.DefaultSourceSettings(s.version)

	return domain.SourceSettings{
		DocsAPIBase:     s.getURL(KeyDocsAPIBase, defaults.DocsAPIBase),
		ReferenceBase:   s.getURL(KeyReferenceBase, defaults.ReferenceBase),
		VIPAPIBase:      s.getURL(KeyVIPAPIBase, defaults.VIPAPIBase),
		VIPSearchURL:    s.getURL(KeyVIPSearchURL, defaults.VIPSearchURL),
		Timeout:         s.getSeconds(KeyTimeout, defaults.Timeout),
		VIPProbeTimeout: s.getSeconds(KeyVIPProbeTimeout, defaults.VIPProbeTimeout),
		UserAgent:       s.getString(KeyUserAgent, defaults.UserAgent),
	}
}

// Value returns the effective value of one setting.
func (s *SettingsService) Value(key string) (string, error) {
	settings := s.Get()

	switch key {
	case KeyDocsAPIBase:
		return settings.DocsAPIBase, nil
	case KeyReferenceBase:
		return settings.ReferenceBase, nil
	case KeyVIPAPIBase:
		return settings.VIPAPIBase, nil
	case KeyVIPSearchURL:
		return settings.VIPSearchURL, nil
	case KeyTimeout:
		return strconv.Itoa(int(settings.Timeout / time.Second)), nil
	case KeyVIPProbeTimeout:
		return strconv.Itoa(int(settings.VIPProbeTimeout / time.Second)), nil
	case KeyUserAgent:
		return settings.UserAgent, nil
	default:
		return "", unknownSetting(key)
	}
}

// Set validates and stores one setting.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return unknownSetting(key)
	}

	value = strings.TrimSpace(value)
	var stored any = value

	switch kind {
	case settingURL:
		if !isHTTPURL(value) {
			return domain.NewValidationError("%s must be an absolute http(s) URL", key)
		}
		stored = strings.TrimRight(value, "/")
	case settingTemplate:
		if !isHTTPURL(value) {
			return domain.NewValidationError("%s must be an absolute http(s) URL", key)
		}
		if !strings.Contains(value, "{query}") {
			return domain.NewValidationError("%s must contain the {query} placeholder", key)
		}
	case settingSeconds:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return domain.NewValidationError("%s must be a positive number of seconds", key)
		}
		stored = n
	case settingText:
		if value == "" {
			return domain.NewValidationError("%s must not be empty", key)
		}
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := strings.TrimSpace(s.configStore.GetString(key)); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getURL(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	if !isHTTPURL(val) {
		logger.Warn("Ignoring %s = %q: not an absolute http(s) URL", key, val)
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	if n := s.configStore.GetInt(key); n > 0 {
		return time.Duration(n) * time.Second
	}
	return defaultVal
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func unknownSetting(key string) error {
	return domain.NewValidationError("unknown setting %q", key)
}
