package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/omkarsindha/GSM-Alarm/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*BackendClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewBackendClient(srv.URL, 0, zap.NewNop()), srv
}

func TestGetSensorConfig(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, PathSensorConfig, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"temp":22,"max_temp":30,"numbers":[{"name":"Ana","number":"15551234567","daily_sms":true}]}`)
	})

	cfg, err := c.GetSensorConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 22.0, cfg.Temp)
	require.Len(t, cfg.Numbers, 1)
	assert.True(t, cfg.Numbers[0].DailySMS)
}

func TestGetSensorConfig_DecodesWithoutJSONContentType(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, `{"temp":19.5}`)
	})

	cfg, err := c.GetSensorConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 19.5, cfg.Temp)
}

func TestGetSensorConfig_StatusError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetSensorConfig(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Equal(t, "GET /sensor-config", te.Endpoint)
}

func TestGetSensorConfig_ParseError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	})

	_, err := c.GetSensorConfig(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestGetSensorConfig_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewBackendClient(url, time.Second, zap.NewNop())
	_, err := c.GetSensorConfig(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Zero(t, te.StatusCode)
}

func TestGetSensorConfig_ContextCanceled(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetSensorConfig(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetHistory_KeepsServerOrder(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathHistory, r.URL.Path)
		_, _ = io.WriteString(w, `[{"message":"newest","temperature":31.5,"time":"01:00 PM, Jan 02, 2025"},{"message":"older"}]`)
	})

	entries, err := c.GetHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "newest", entries[0].Message)
	require.NotNil(t, entries[0].Temperature)
	assert.Equal(t, 31.5, *entries[0].Temperature)
	assert.Equal(t, "older", entries[1].Message)
	assert.Nil(t, entries[1].Temperature)
}

func TestConfigureAlarm_PostsJSON(t *testing.T) {
	var got map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathConfigureAlarm, r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	armed := true
	err := c.ConfigureAlarm(context.Background(), models.AlarmConfigRequest{
		MaxTemp: "30", Hysteresis: "2", Interval: "15", Armed: &armed,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"max_temp": "30", "hys": "2", "interval": "15", "armed": true}, got)
}

func TestAddPhoneNumber_BusinessFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathAddPhoneNumber, r.URL.Path)
		_, _ = io.WriteString(w, `{"success":false,"message":"duplicate number"}`)
	})

	err := c.AddPhoneNumber(context.Background(), models.PhoneNumberRequest{Name: "Ana", Phone: "5551234567"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBusiness)
	assert.False(t, errors.Is(err, ErrTransport))

	var be *BusinessError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "duplicate number", be.Message)
}

func TestDeleteNumber_PathEscapesKey(t *testing.T) {
	var path string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.DeleteNumber(context.Background(), "2"))
	assert.Equal(t, "/delete-number/2", path)

	require.NoError(t, c.DeleteNumber(context.Background(), "a b"))
	assert.Equal(t, "/delete-number/a%20b", path)
}

func TestDeleteNumber_FollowsBackendRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/delete-number/1", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/settings", http.StatusFound)
	})
	mux.HandleFunc("/settings", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html></html>")
	})
	c, _ := newTestClient(t, mux.ServeHTTP)

	assert.NoError(t, c.DeleteNumber(context.Background(), "1"))
}

func TestClearHistory_NotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	err := c.ClearHistory(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestUpdateSensor_PostsForm(t *testing.T) {
	var form url.Values
	var contentType string
	mux := http.NewServeMux()
	mux.HandleFunc(PathUpdateSensor, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		http.Redirect(w, r, "/settings", http.StatusFound)
	})
	mux.HandleFunc("/settings", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html></html>")
	})
	c, _ := newTestClient(t, mux.ServeHTTP)

	err := c.UpdateSensor(context.Background(), models.UpdateSensorRequest{Sensor: "28-0316a2", Name: "Freezer", Trigger: "-18"})
	require.NoError(t, err)
	assert.Contains(t, contentType, "application/x-www-form-urlencoded")
	assert.Equal(t, "28-0316a2", form.Get("sensor"))
	assert.Equal(t, "Freezer", form.Get("name"))
	assert.Equal(t, "-18", form.Get("trigger"))
}

func TestUpdateSensor_ServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	err := c.UpdateSensor(context.Background(), models.UpdateSensorRequest{Sensor: "x"})
	assert.ErrorIs(t, err, ErrTransport)
}
