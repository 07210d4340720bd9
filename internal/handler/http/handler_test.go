package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/mock"
	"github.com/MKhiriev/go-store-locator/internal/service"
	"github.com/MKhiriev/go-store-locator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type testServices struct {
	auth      *mock.MockAuthService
	locations *mock.MockLocationService
	appInfo   *mock.MockAppInfoService
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			SessionLifetime: 7 * 24 * time.Hour,
			Version:         "1.2.3",
		},
		Cookie: config.Cookie{
			Name:     config.DefaultCookieName,
			SameSite: config.DefaultSameSite,
		},
		Server: config.Server{
			HTTPAddress:    ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

func newTestHandler(t *testing.T, cfg *config.StructuredConfig) (*Handler, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svcs := testServices{
		auth:      mock.NewMockAuthService(ctrl),
		locations: mock.NewMockLocationService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:     svcs.auth,
		LocationService: svcs.locations,
		AppInfoService:  svcs.appInfo,
	}, cfg, logger.Nop())

	return h, svcs
}

func testAccount() models.Account {
	return models.Account{ID: "acc-1", Email: "admin@example.com", DisplayName: "Admin"}
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: config.DefaultCookieName, Value: token}
}

func TestNewHandler_CopiesConfig(t *testing.T) {
	cfg := testConfig()
	cfg.App.SignUpEnabled = true
	cfg.Cookie.Insecure = true
	cfg.Server.RequestTimeout = 5 * time.Second

	svcs := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svcs, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg.Cookie, h.cookie)
	assert.Equal(t, cfg.App.SessionLifetime, h.sessionLifetime)
	assert.True(t, h.signUpEnabled)
	assert.Equal(t, []string{"http://localhost:3000"}, h.allowedOrigins)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}
