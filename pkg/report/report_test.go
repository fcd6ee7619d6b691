package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sambigeara/sshtidy/pkg/classify"
	"github.com/sambigeara/sshtidy/pkg/report"
)

func TestCompose(t *testing.T) {
	conv := &report.Convergence{Dir: "/home/alice/.ssh", FilesScanned: 3}
	r := report.Compose(conv, nil)

	require.NotEmpty(t, r.RunID)
	require.True(t, r.Clean())
	require.Equal(t, 3, r.Convergence.FilesScanned)

	r2 := report.Compose(conv, []report.Finding{{Name: "id_rsa"}})
	require.False(t, r2.Clean())
	require.NotEqual(t, r.RunID, r2.RunID)
}

func TestModeRendersAsOctal(t *testing.T) {
	require.Equal(t, "0600", report.Mode(0o600).String())
	require.Equal(t, "0044", report.Mode(0o044).String())

	out, err := yaml.Marshal(report.Correction{
		Name:     "id_rsa",
		Category: classify.PrivateKey,
		From:     report.Mode(0o644),
		To:       report.Mode(0o600),
		Applied:  true,
	})
	require.NoError(t, err)
	require.Contains(t, string(out), `from: "0644"`)
	require.Contains(t, string(out), `to: "0600"`)
}
