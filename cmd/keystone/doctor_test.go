package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickline-hq/keystone/pkg/cli"
	"tickline-hq/keystone/pkg/telemetry/health"
)

func TestDoctor_Ready(t *testing.T) {
	out, err := execute(t, "doctor", "-c", completeResource(t), "-o", "json")
	require.NoError(t, err)

	report := decodeJSON(t, out)
	assert.Equal(t, health.StatusReady, report["status"])
	assert.Len(t, report["checks"], 18)
	assert.Nil(t, report["cert_warning"])
}

func TestDoctor_DegradedOnMissingCertificate(t *testing.T) {
	out, err := execute(t, "doctor", "-c", writeResource(t, resolveTOML))
	require.Error(t, err)
	assert.Equal(t, cli.ExitUnhealthy, cli.ExitCode(err))

	assert.Contains(t, out, "FAIL  tls ")
	assert.Contains(t, out, "FAIL  cache.index.read")
	assert.Contains(t, out, "ok    storage.write")
	assert.Contains(t, out, "status: degraded")
}

func TestDoctor_SkipCert(t *testing.T) {
	out, err := execute(t, "doctor", "-c", completeResource(t), "--skip-cert", "-o", "json")
	require.NoError(t, err)
	assert.Len(t, decodeJSON(t, out)["checks"], 17)
}

func TestDoctorReport_WriteText(t *testing.T) {
	report := doctorReport{
		Status:     health.StatusDegraded,
		Generation: "gen-1",
		Checks: map[string]health.CheckResult{
			"upstream": {Status: health.StatusUnhealthy, Message: "[upstream] api_key is empty"},
			"tls":      {Status: health.StatusOK, Duration: time.Millisecond},
			"cache":    {Status: health.StatusOK},
		},
		CertWarning: "certificate expires in 3 days",
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf))
	assert.Equal(t,
		"ok    cache     \n"+
			"ok    tls       \n"+
			"FAIL  upstream  [upstream] api_key is empty\n"+
			"warning: certificate expires in 3 days\n"+
			"status: degraded (generation gen-1)\n",
		buf.String())
}
