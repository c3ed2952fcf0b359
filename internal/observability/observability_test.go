package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/fc-player-dashboard/internal/config"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingDisabledReason(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "flag off", cfg: config.Config{UptraceDSN: "https://token@api.uptrace.dev/1"}, want: "UPTRACE_ENABLED=false"},
		{name: "enabled without dsn", cfg: config.Config{UptraceEnabled: true}, want: "UPTRACE_DSN empty"},
		{name: "ready", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev/1"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tracingDisabledReason(tt.cfg))
		})
	}
}

func TestInitUptrace_DisabledIsNoop(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: true}, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestUptraceOptions(t *testing.T) {
	opts := uptraceOptions(config.Config{ServiceName: "fc-player-dashboard", DataSource: config.DataSourceCSV})
	assert.Len(t, opts, 5)
}

func TestPyroscopeConfig(t *testing.T) {
	cfg := config.Config{
		AppEnv:                 config.EnvProd,
		ServiceVersion:         "1.4.0",
		DataSource:             config.DataSourcePostgres,
		PyroscopeAppName:       "fc-player-dashboard",
		PyroscopeServerAddress: "http://pyroscope:4040",
		PyroscopeUploadRate:    15 * time.Second,
	}

	got := pyroscopeConfig(cfg)
	assert.Equal(t, "fc-player-dashboard", got.ApplicationName)
	assert.Equal(t, "http://pyroscope:4040", got.ServerAddress)
	assert.Equal(t, 15*time.Second, got.UploadRate)
	assert.Equal(t, map[string]string{"env": config.EnvProd, "version": "1.4.0", "data_source": config.DataSourcePostgres}, got.Tags)
	assert.Contains(t, got.ProfileTypes, pyroscope.ProfileCPU)
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, nil)
	require.NoError(t, err)
	require.NoError(t, stop())
}

func TestPprofMux(t *testing.T) {
	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/pprof/symbol", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPprofServer(t *testing.T) {
	assert.Nil(t, StartPprofServer(config.Config{}, logging.NewNop()))
	require.NoError(t, StopPprofServer(context.Background(), nil, nil))

	srv := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	require.NotNil(t, srv)
	require.NoError(t, StopPprofServer(context.Background(), srv, logging.NewNop()))
}
