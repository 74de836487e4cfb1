package main

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goasterix/internal/app"
	"goasterix/internal/export"
)

// resetViper restores the global viper state after a test mutates it.
func resetViper(t *testing.T) {
	t.Cleanup(func() {
		viper.Reset()
		setDefaults()
	})
}

// TestParseBounds tests bounding box flag parsing
func TestParseBounds(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    *export.Box
		wantErr bool
	}{
		{
			name: "valid box",
			spec: "50.0,55.0,3.5,7.25",
			want: &export.Box{LatMin: 50.0, LatMax: 55.0, LonMin: 3.5, LonMax: 7.25},
		},
		{
			name: "whitespace tolerated",
			spec: " -10, 10, -20, 20 ",
			want: &export.Box{LatMin: -10.0, LatMax: 10.0, LonMin: -20.0, LonMax: 20.0},
		},
		{
			name:    "wrong component count",
			spec:    "50.0,55.0,3.5",
			wantErr: true,
		},
		{
			name:    "non-numeric component",
			spec:    "50.0,north,3.5,7.25",
			wantErr: true,
		},
		{
			name:    "latitude minimum above maximum",
			spec:    "55.0,50.0,3.5,7.25",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBounds(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestBuildConfig tests viper-backed configuration assembly
func TestBuildConfig(t *testing.T) {
	resetViper(t)
	viper.Set("output.csv", "out.csv")
	viper.Set("output.sqlite", "out.db")
	viper.Set("workers", 8)
	viper.Set("inspect", 3)
	viper.Set("verbose", true)
	viper.Set("filter.callsign", "KLM")
	viper.Set("filter.min_fl", 100.0)
	viper.Set("filter.bounds", "50,55,3,8")

	config, err := buildConfig("capture.ast")
	require.NoError(t, err)

	assert.Equal(t, "capture.ast", config.InputFile)
	assert.Equal(t, "out.csv", config.CSVBase)
	assert.Equal(t, "out.db", config.SQLitePath)
	assert.Equal(t, 8, config.Workers)
	assert.Equal(t, 3, config.Inspect)
	assert.True(t, config.Verbose)
	assert.Equal(t, "KLM", config.Filters.Callsign)
	require.NotNil(t, config.Filters.MinFL)
	assert.InDelta(t, 100.0, *config.Filters.MinFL, 1e-9)
	assert.Nil(t, config.Filters.MaxFL)
	require.NotNil(t, config.Filters.Bounds)
	assert.Equal(t, 55.0, config.Filters.Bounds.LatMax)
}

// TestBuildConfig_Defaults tests that unset knobs leave filters inactive
func TestBuildConfig_Defaults(t *testing.T) {
	resetViper(t)

	config, err := buildConfig("capture.ast")
	require.NoError(t, err)

	assert.Equal(t, app.DefaultWorkers, config.Workers)
	assert.Empty(t, config.CSVBase)
	assert.Empty(t, config.SQLitePath)
	assert.Nil(t, config.Filters.MinFL)
	assert.Nil(t, config.Filters.MaxFL)
	assert.Nil(t, config.Filters.MinSpeedKt)
	assert.Nil(t, config.Filters.MaxSpeedKt)
	assert.Nil(t, config.Filters.Bounds)
	assert.False(t, config.Filters.Airborne)
	assert.False(t, config.Filters.Ground)
}

// TestBuildConfig_AirborneGroundConflict tests the mutually exclusive pair
func TestBuildConfig_AirborneGroundConflict(t *testing.T) {
	resetViper(t)
	viper.Set("filter.airborne", true)
	viper.Set("filter.ground", true)

	_, err := buildConfig("capture.ast")
	assert.Error(t, err)
}

// TestBuildConfig_BadBounds tests that a malformed box rejects the config
func TestBuildConfig_BadBounds(t *testing.T) {
	resetViper(t)
	viper.Set("filter.bounds", "1,2,3")

	_, err := buildConfig("capture.ast")
	assert.Error(t, err)
}

// TestShowVersion tests the version display output
func TestShowVersion(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	app.ShowVersion()

	w.Close()
	os.Stdout = oldStdout

	output := make([]byte, 1024)
	n, _ := r.Read(output)
	result := string(output[:n])

	assert.Contains(t, result, "goasterix")
	assert.Contains(t, result, "Version:")
}
