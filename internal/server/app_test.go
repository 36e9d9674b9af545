package server

import (
	"testing"

	"github.com/dmitrijs2005/gophpass/internal/logging"
	"github.com/dmitrijs2005/gophpass/internal/server/config"
	"github.com/dmitrijs2005/gophpass/internal/server/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

func TestNewApp_BuildsWithoutConnecting(t *testing.T) {
	app, err := NewApp(testConfig())
	require.NoError(t, err)
	defer app.db.Close()

	assert.NotNil(t, app.controller)
	assert.NotNil(t, app.repomanager)
}

func TestNewApp_InvalidLogBackend(t *testing.T) {
	c := testConfig()
	c.LogBackend = "syslog"

	_, err := NewApp(c)
	assert.Error(t, err)
}

func TestNewNotifier_SelectsBySMTPHost(t *testing.T) {
	c := testConfig()

	_, ok := newNotifier(c, logging.Nop()).(*notify.LogNotifier)
	assert.True(t, ok, "empty SMTP host must select the log notifier")

	c.SMTPHost = "smtp.example.com"
	_, ok = newNotifier(c, logging.Nop()).(*notify.SMTPNotifier)
	assert.True(t, ok, "configured SMTP host must select the SMTP notifier")
}
