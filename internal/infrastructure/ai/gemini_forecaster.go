// Package ai contiene el adaptador hacia la API REST de Google Gemini.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiForecaster implementa el puerto.
var _ ports.ForecastProvider = (*GeminiForecaster)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt define el rol del modelo y el contrato de salida. Con
	// response_mime_type=application/json Gemini devuelve JSON puro, sin
	// bloques de markdown que limpiar.
	systemPrompt = `You are a retail sales analyst for a small neighborhood store.
Given the last days of sales history and the current stock levels, return ONLY a JSON object (no extra text) with this exact structure:
{
  "forecast": [
    {"day": "<short weekday, e.g. Mon>", "predictedSales": <number >= 0>, "predictedProfit": <number>, "confidence": <integer 0-100>}
  ],
  "stockAlerts": [
    {"productName": "<name>", "daysRemaining": <integer>, "severity": "low" | "critical"}
  ]
}

Rules:
- forecast: exactly 7 entries, one per day starting tomorrow, in order.
- predictedProfit: assume roughly a 25% margin over predicted sales.
- stockAlerts: only products likely to run out within 7 days at the observed sales pace; empty array if none.
- severity: "critical" if the product runs out in 2 days or less, otherwise "low".`
)

// GeminiForecaster adaptador que implementa ForecastProvider llamando a la API
// REST de Google Gemini. Usa únicamente net/http; no requiere SDK.
type GeminiForecaster struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiForecaster construye el adaptador. model suele ser
// "gemini-1.5-flash". La clave no se valida aquí: el caller decide no
// construir el adaptador cuando no hay clave configurada.
func NewGeminiForecaster(apiKey, model string) *GeminiForecaster {
	return &GeminiForecaster{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también acota por contexto
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// forecastPayload es el JSON que esperamos recibir del modelo.
type forecastPayload struct {
	Forecast []struct {
		Day             string  `json:"day"`
		PredictedSales  float64 `json:"predictedSales"`
		PredictedProfit float64 `json:"predictedProfit"`
		Confidence      float64 `json:"confidence"`
	} `json:"forecast"`
	StockAlerts []struct {
		ProductName   string  `json:"productName"`
		DaysRemaining float64 `json:"daysRemaining"`
		Severity      string  `json:"severity"`
	} `json:"stockAlerts"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateSalesForecast llama a Gemini con el historial y las existencias y
// devuelve el pronóstico de 7 días validado.
func (s *GeminiForecaster) GenerateSalesForecast(
	ctx context.Context,
	history []dto.HistoryPointDTO,
	stock []dto.StockSnapshotDTO,
) (*dto.ForecastResultDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	userText, err := buildUserText(history, stock)
	if err != nil {
		return nil, err
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: userText}},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.2, // baja temperatura para respuestas más deterministas
			MaxOutputTokens:  1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)

	var parsed forecastPayload
	if err := json.Unmarshal([]byte(rawJSON), &parsed); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, rawJSON)
	}
	return normalizeForecast(parsed)
}

// buildUserText serializa la entrada del modelo como dos bloques JSON.
func buildUserText(history []dto.HistoryPointDTO, stock []dto.StockSnapshotDTO) (string, error) {
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("AI: serializar historial: %w", err)
	}
	stockJSON, err := json.Marshal(stock)
	if err != nil {
		return "", fmt.Errorf("AI: serializar existencias: %w", err)
	}
	return fmt.Sprintf("Sales history (oldest first): %s\nCurrent stock: %s", historyJSON, stockJSON), nil
}

// normalizeForecast valida la forma del pronóstico y acota cada campo a su
// rango: 7 predicciones exactas, ventas no negativas, confianza en [0, 100] y
// severidad dentro del conjunto conocido.
func normalizeForecast(parsed forecastPayload) (*dto.ForecastResultDTO, error) {
	if len(parsed.Forecast) != 7 {
		return nil, fmt.Errorf("AI: el modelo devolvió %d predicciones, se esperaban 7", len(parsed.Forecast))
	}

	forecast := make([]dto.DayPredictionDTO, 0, 7)
	for _, f := range parsed.Forecast {
		sales := f.PredictedSales
		if sales < 0 {
			sales = 0
		}
		forecast = append(forecast, dto.DayPredictionDTO{
			Day:             f.Day,
			PredictedSales:  decimal.NewFromFloat(sales),
			PredictedProfit: decimal.NewFromFloat(f.PredictedProfit),
			Confidence:      clampConfidence(f.Confidence),
		})
	}

	alerts := make([]dto.StockAlertDTO, 0, len(parsed.StockAlerts))
	for _, a := range parsed.StockAlerts {
		severity := a.Severity
		if severity != "low" && severity != "critical" {
			severity = "low"
		}
		days := int(a.DaysRemaining)
		if days < 0 {
			days = 0
		}
		alerts = append(alerts, dto.StockAlertDTO{
			ProductName:   a.ProductName,
			DaysRemaining: days,
			Severity:      severity,
		})
	}

	return &dto.ForecastResultDTO{Forecast: forecast, StockAlerts: alerts}, nil
}

func clampConfidence(raw float64) int {
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return int(raw)
}
