package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/beaconhouse/beacon/internal/config"
	"github.com/beaconhouse/beacon/internal/content"
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/rendering"
	"github.com/beaconhouse/beacon/internal/storage"
	"github.com/beaconhouse/beacon/internal/topicmgr"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetContext(context.Background())
	return c, &stdout, &stderr
}

func TestRunRenderToStdout(t *testing.T) {
	c, stdout, _ := newTestCommand()
	store := storage.NewAferoStore(afero.NewMemMapFs())

	require.NoError(t, runRender(c, &config.Config{ApproachURL: "/#contact"}, rendering.NewUniversalRenderer(), store, ""))

	html := stdout.String()
	assert.True(t, strings.HasPrefix(strings.ToLower(html), "<!doctype html>"))
	assert.Contains(t, html, "Understand Our Approach")
	assert.Contains(t, html, "© 2025. Beacon House.")
}

func TestRunRenderToFile(t *testing.T) {
	c, stdout, stderr := newTestCommand()
	memFs := afero.NewMemMapFs()
	cfg := &config.Config{SchedulingURL: "https://cal.example.com"}

	require.NoError(t, runRender(c, cfg, rendering.NewUniversalRenderer(), storage.NewAferoStore(memFs), "dist/index.html"))

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "dist/index.html")

	data, err := afero.ReadFile(memFs, "dist/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Schedule a Call")
}

func TestRunRenderMissingContentFile(t *testing.T) {
	c, _, _ := newTestCommand()
	cfg := &config.Config{ContentFile: t.TempDir() + "/nope.yaml"}

	err := runRender(c, cfg, rendering.NewUniversalRenderer(), storage.NewAferoStore(afero.NewMemMapFs()), "")
	assert.Error(t, err)
}

type failingRenderer struct{ calls int }

func (r *failingRenderer) RenderComponent(context.Context, any) ([]byte, error) {
	r.calls++
	return nil, errors.New("renderer unavailable")
}

func TestRunRenderUsesRenderer(t *testing.T) {
	c, stdout, _ := newTestCommand()
	memFs := afero.NewMemMapFs()
	renderer := &failingRenderer{}

	err := runRender(c, &config.Config{}, renderer, storage.NewAferoStore(memFs), "dist/index.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render landing page")
	assert.Equal(t, 1, renderer.calls)
	assert.Empty(t, stdout.String())

	exists, _ := afero.Exists(memFs, "dist/index.html")
	assert.False(t, exists)
}

func TestPrintBenefits(t *testing.T) {
	benefits := content.MustDefault().Benefits()

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printBenefits(&buf, benefits, "table"))
		out := buf.String()
		assert.Contains(t, out, "TITLE")
		assert.Contains(t, out, benefits[0].Title)
		assert.Contains(t, out, "7 benefits")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printBenefits(&buf, benefits, "json"))

		var decoded []domain.Benefit
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, benefits, decoded)
	})

	t.Run("invalid format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, printBenefits(&buf, benefits, "xml"))
	})
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "beacon-cli v"+version+"\n", out.String())
}

func TestPrintTopics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTopics(&buf, topicmgr.Default(), "leads", "table"))
	assert.Contains(t, buf.String(), "leads.requested")
	assert.Contains(t, buf.String(), "domain.Lead")

	buf.Reset()
	require.NoError(t, printTopics(&buf, topicmgr.Default(), "nobody", "table"))
	assert.Equal(t, "No topics found.\n", buf.String())

	buf.Reset()
	require.NoError(t, printTopics(&buf, topicmgr.Default(), "", "json"))
	var topics []topicmgr.Topic
	require.NoError(t, json.Unmarshal(buf.Bytes(), &topics))
	assert.NotEmpty(t, topics)
}
