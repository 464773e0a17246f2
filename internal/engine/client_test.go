package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientBestFitWaterTable(t *testing.T) {
	var gotPath string
	var gotInput BestFitInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))
		_ = json.NewEncoder(w).Encode(BestFitResult{Coefficient: 0.3, Decay: 2.5, Scale: 160})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	result, err := client.BestFitWaterTable(context.Background(), BestFitInput{
		InitialLevel: -1.77,
		MinimumLevel: -1.42,
		SlopeAngle:   7.99,
		Rainfall:     []float64{6.1, 161.9},
	})

	require.NoError(t, err)
	assert.Equal(t, "/v1/water-table/best-fit", gotPath)
	assert.Equal(t, -1.77, gotInput.InitialLevel)
	assert.Equal(t, 0.3, result.Coefficient)
	assert.Equal(t, 2.5, result.Decay)
	assert.Equal(t, 160.0, result.Scale)
}

func TestClientWaterTableCurve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/water-table/curve", r.URL.Path)
		_, _ = w.Write([]byte(`{"values": [-1.5, -1.2, -0.9]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	values, err := client.WaterTableCurve(context.Background(), CurveInput{})

	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, -1.2, -0.9}, values)
}

func TestClientSlopeStability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/stability/standard", r.URL.Path)
		_ = json.NewEncoder(w).Encode(StabilityResult{Matrix: [][]float64{
			{0.01, 0.02},
			{1.1, 1.2},
			{0.001, 0.002},
			{1.5, 1.4},
			{0.02, 0, 0, 0, 0, 42},
		}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	result, err := client.SlopeStability(context.Background(), StabilityInput{})

	require.NoError(t, err)
	require.Len(t, result.Matrix, 5)
	assert.Equal(t, 42.0, result.Matrix[4][5])
}

func TestClientEngineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "convergence failure", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.BestFitViscosity(context.Background(), ViscosityInput{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "convergence failure")
}

func TestClientContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.SlopeStability(ctx, StabilityInput{})
	require.Error(t, err)
}
