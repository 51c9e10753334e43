package waveform

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
	"github.com/cardiolab/ecg-annotator-api/internal/models"
	sessionsService "github.com/cardiolab/ecg-annotator-api/internal/services/sessions"
	"github.com/cardiolab/ecg-annotator-api/internal/services/synthesis"
	"github.com/cardiolab/ecg-annotator-api/internal/services/viewport"
)

// GetWaveform returns the session's samples, optionally windowed by zoom
// @Summary      Get waveform
// @Description  Retrieve the current waveform samples; pass zoom to restrict to the visible window
// @Tags         waveform
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        zoom query number false "Zoom factor (1 = full recording)"
// @Success      200 {object} types.WaveformResponse "Waveform samples"
// @Failure      400 {object} types.ErrorResponse "Invalid zoom"
// @Failure      404 {object} types.ErrorResponse "Session or waveform not found"
// @Router       /api/v1/sessions/{id}/waveform [get]
func GetWaveform(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		stored, samples, ok := loadWaveform(c, deps, sessionUUID)
		if !ok {
			return
		}

		resp := types.WaveformResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Meta: types.WaveformMeta{
				Duration:    stored.Duration,
				SampleRate:  stored.SampleRate,
				SampleCount: stored.SampleCount,
				Source:      stored.Source,
			},
			Samples: samples,
		}

		if raw := c.Query("zoom"); raw != "" {
			zoom, ok := types.ParseFloatQuery(c, "zoom", 1.0)
			if !ok {
				return
			}
			window, err := viewport.VisibleWindow(stored.Duration, zoom)
			if err != nil {
				types.SendBadRequest(c, "Zoom must be positive")
				return
			}
			resp.Window = &types.WindowInfo{TMin: window.TMin, TMax: window.TMax, Zoom: zoom}
			resp.Samples = windowed(samples, window)
		}

		types.SendSuccess(c, resp)
	}
}

// ReplaceWaveform swaps the session's signal
// @Summary      Replace waveform
// @Description  Install a new waveform, either synthesized on demand or from uploaded samples. Uploads that fail to decode fall back to a synthesized signal.
// @Tags         waveform
// @Accept       json
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        waveform body types.ReplaceWaveformRequest true "Synthesis parameters or raw samples"
// @Success      200 {object} types.WaveformResponse "Installed waveform"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/waveform [post]
func ReplaceWaveform(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		var req types.ReplaceWaveformRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		duration := deps.SynthesisDuration
		sampleRate := deps.SynthesisSampleRate
		source := models.WaveformSynthesized
		fallback := false

		var samples []models.Sample
		switch {
		case len(req.Samples) > 0:
			decoded, err := deps.Decoder.Decode(req.Samples)
			if err != nil {
				// Malformed uploads never fail the request; the session
				// gets a synthesized signal instead.
				fallback = true
				break
			}
			samples = decoded
			duration = decoded[len(decoded)-1].Time
			sampleRate = uploadSampleRate(decoded)
			source = models.WaveformUploaded
		case req.Synthesis != nil:
			if req.Synthesis.Duration > 0 {
				duration = req.Synthesis.Duration
			}
			if req.Synthesis.SampleRate > 0 {
				sampleRate = req.Synthesis.SampleRate
			}
		}

		if samples == nil {
			synth := deps.Synthesizer
			if req.Synthesis != nil && req.Synthesis.Seed != nil {
				synth = synthesis.New(*req.Synthesis.Seed)
			}
			generated, err := synth.Generate(duration, sampleRate)
			if err != nil {
				types.SendBadRequest(c, "Invalid synthesis parameters")
				return
			}
			samples = generated
			source = models.WaveformSynthesized
		}

		stored, err := deps.SessionService.ReplaceWaveform(c.Request.Context(), sessionUUID, samples, duration, sampleRate, source)
		if err != nil {
			if errors.Is(err, sessionsService.ErrSessionNotFound) {
				types.SendNotFound(c, "Session not found")
				return
			}
			types.SendInternalError(c, "Failed to store waveform")
			return
		}

		types.SendSuccess(c, types.WaveformResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Meta: types.WaveformMeta{
				Duration:    stored.Duration,
				SampleRate:  stored.SampleRate,
				SampleCount: stored.SampleCount,
				Source:      stored.Source,
			},
			Samples:  samples,
			Fallback: fallback,
		})
	}
}

// GetViewport returns the visible window and marker anchors at a zoom level
// @Summary      Get viewport
// @Description  Compute the visible time window for a zoom factor plus a render anchor for every annotation inside it
// @Tags         waveform
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        zoom query number false "Zoom factor, clamped to the configured range"
// @Success      200 {object} types.ViewportResponse "Viewport description"
// @Failure      400 {object} types.ErrorResponse "Invalid zoom"
// @Failure      404 {object} types.ErrorResponse "Session or waveform not found"
// @Router       /api/v1/sessions/{id}/viewport [get]
func GetViewport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		zoom, ok := types.ParseFloatQuery(c, "zoom", 1.0)
		if !ok {
			return
		}
		zoom = viewport.ClampZoom(zoom, deps.MinZoom, deps.MaxZoom)

		stored, samples, ok := loadWaveform(c, deps, sessionUUID)
		if !ok {
			return
		}

		window, err := viewport.VisibleWindow(stored.Duration, zoom)
		if err != nil {
			types.SendBadRequest(c, "Zoom must be positive")
			return
		}

		visible := windowed(samples, window)
		ampMin, ampMax, err := viewport.AmplitudeRange(visible)
		if err != nil {
			types.SendInternalError(c, "Failed to compute amplitude range")
			return
		}

		annotations, err := deps.AnnotationService.AllSorted(c.Request.Context(), sessionUUID)
		if err != nil {
			types.SendInternalError(c, "Failed to retrieve annotations")
			return
		}

		markers := make([]types.MarkerAnchor, 0)
		for _, a := range annotations {
			if !window.Contains(a.Time) {
				continue
			}
			amplitude, err := viewport.NearestSampleAmplitude(samples, a.Time)
			if err != nil {
				continue
			}
			info, _ := a.Type.Info()
			markers = append(markers, types.MarkerAnchor{
				AnnotationID: a.AnnotationID,
				Time:         a.Time,
				Amplitude:    amplitude,
				Type:         a.Type,
				Color:        info.Color,
				Symbol:       info.Symbol,
				AIGenerated:  a.AIGenerated(),
			})
		}

		types.SendSuccess(c, types.ViewportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Window:       types.WindowInfo{TMin: window.TMin, TMax: window.TMax, Zoom: zoom},
			AmplitudeMin: ampMin,
			AmplitudeMax: ampMax,
			Markers:      markers,
		})
	}
}

// loadWaveform fetches the stored waveform and decodes its samples, sending
// the error response itself on failure.
func loadWaveform(c *gin.Context, deps *types.Dependencies, sessionUUID string) (*models.Waveform, []models.Sample, bool) {
	stored, err := deps.SessionService.GetWaveform(c.Request.Context(), sessionUUID)
	if err != nil {
		if errors.Is(err, sessionsService.ErrWaveformNotFound) {
			types.SendNotFound(c, "Waveform not found")
			return nil, nil, false
		}
		types.SendInternalError(c, "Failed to retrieve waveform")
		return nil, nil, false
	}

	samples, err := stored.Samples()
	if err != nil {
		types.SendInternalError(c, "Failed to decode stored samples")
		return nil, nil, false
	}
	return stored, samples, true
}

// windowed returns the samples inside the closed window. Samples are stored
// in time order, so a single pass suffices.
func windowed(samples []models.Sample, window viewport.Window) []models.Sample {
	visible := make([]models.Sample, 0, len(samples))
	for _, s := range samples {
		if window.Contains(s.Time) {
			visible = append(visible, s)
		}
	}
	return visible
}

// uploadSampleRate estimates the rate of an uploaded sequence from its span.
func uploadSampleRate(samples []models.Sample) int {
	if len(samples) < 2 {
		return 1
	}
	span := samples[len(samples)-1].Time - samples[0].Time
	if span <= 0 {
		return 1
	}
	return int(float64(len(samples)-1)/span + 0.5)
}
