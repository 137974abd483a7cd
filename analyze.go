package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lg/sahha-go-api/nutrition"
)

// maxImageBytes caps uploads sent to the vision model.
const maxImageBytes = 8 << 20

// imageAnalyzer estimates the food and nutrition in a photo.
type imageAnalyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (nutrition.Estimate, error)
}

/* ─── Gemini prompt ──────────────────────────────────────────────────── */

const analyzePrompt = "Identify the food in this image, estimate its weight in grams, and calculate its nutritional values. Return the food name in Arabic."

// estimateSchema constrains the model's JSON output to the Estimate shape.
var estimateSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"foodName":        map[string]any{"type": "STRING", "description": "The name of the food identified in Arabic"},
		"confidence":      map[string]any{"type": "NUMBER", "description": "Confidence score from 0 to 1"},
		"estimatedWeight": map[string]any{"type": "NUMBER", "description": "Estimated weight in grams"},
		"calories":        map[string]any{"type": "NUMBER", "description": "Total calories for the estimated portion"},
		"protein":         map[string]any{"type": "NUMBER", "description": "Protein in grams"},
		"carbs":           map[string]any{"type": "NUMBER", "description": "Carbohydrates in grams"},
		"fat":             map[string]any{"type": "NUMBER", "description": "Fat in grams"},
		"reasoning":       map[string]any{"type": "STRING", "description": "Brief explanation of the identification"},
	},
	"required": []string{"foodName", "confidence", "estimatedWeight", "calories", "protein", "carbs", "fat", "reasoning"},
}

/* ─── Gemini HTTP client ─────────────────────────────────────────────── */

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

// geminiRequest is the request body for the generateContent endpoint.
type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string         `json:"responseMimeType"`
		ResponseSchema   map[string]any `json:"responseSchema"`
	} `json:"generationConfig"`
}

// geminiAnalyzer calls the Gemini REST API with raw net/http rather than the SDK.
type geminiAnalyzer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func newGeminiAnalyzer(apiKey, baseURL, model string) *geminiAnalyzer {
	return &geminiAnalyzer{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Analyze sends the image inline with the prompt and decodes the model's JSON
// answer. The estimate is returned as-is; callers decide whether it is usable.
func (g *geminiAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) (nutrition.Estimate, error) {
	var reqBody geminiRequest
	reqBody.Contents = []geminiContent{{Parts: []geminiPart{
		{InlineData: &geminiInlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
		{Text: analyzePrompt},
	}}}
	reqBody.GenerationConfig.ResponseMimeType = "application/json"
	reqBody.GenerationConfig.ResponseSchema = estimateSchema

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nutrition.Estimate{}, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nutrition.Estimate{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nutrition.Estimate{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nutrition.Estimate{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nutrition.Estimate{}, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Extract candidates[0].content.parts[0].text, itself a JSON document.
	var result struct {
		Candidates []struct {
			Content geminiContent `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nutrition.Estimate{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nutrition.Estimate{}, fmt.Errorf("no candidates in response")
	}

	var est nutrition.Estimate
	if err := json.Unmarshal([]byte(result.Candidates[0].Content.Parts[0].Text), &est); err != nil {
		return nutrition.Estimate{}, fmt.Errorf("unmarshal estimate: %w", err)
	}
	return est, nil
}

/* ─── Handler ────────────────────────────────────────────────────────── */

// analyzeImage handles POST /api/analyze. Accepts a multipart "image" file or a
// JSON data URL, asks the vision model for an estimate, and returns it together
// with the derived per-100g food. Nothing is logged until the client posts the
// result to /api/meal-logs.
func (h *Handler) analyzeImage(c *gin.Context) {
	if h.analyzer == nil {
		apiError(c, http.StatusServiceUnavailable, "image analysis is not configured")
		return
	}

	image, mimeType, status, msg := readImage(c)
	if status != 0 {
		apiError(c, status, msg)
		return
	}

	est, cached := h.cache.get(c, image)
	if !cached {
		var err error
		est, err = h.analyzer.Analyze(c.Request.Context(), image, mimeType)
		if err != nil {
			log.Printf("[analyzeImage] analyzer error: %v", err)
			apiError(c, http.StatusBadGateway, "failed to analyze image")
			return
		}
	}

	food, err := nutrition.FoodFromEstimate(est)
	if err != nil {
		log.Printf("[analyzeImage] unusable estimate %+v: %v", est, err)
		apiError(c, http.StatusBadGateway, "could not identify food in image")
		return
	}
	if !cached {
		h.cache.put(c, image, est)
	}

	c.JSON(http.StatusOK, analyzeResponse{Estimate: est, Food: food, Cached: cached})
}

// readImage pulls image bytes out of the request. A non-zero status means the
// request was rejected with msg.
func readImage(c *gin.Context) (image []byte, mimeType string, status int, msg string) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("image")
		if err != nil {
			return nil, "", http.StatusBadRequest, "image file is required"
		}
		if fh.Size > maxImageBytes {
			return nil, "", http.StatusRequestEntityTooLarge, "image is too large"
		}
		f, err := fh.Open()
		if err != nil {
			return nil, "", http.StatusBadRequest, "unreadable image file"
		}
		defer f.Close()
		image, err = io.ReadAll(io.LimitReader(f, maxImageBytes+1))
		if err != nil {
			return nil, "", http.StatusBadRequest, "unreadable image file"
		}
		mimeType = fh.Header.Get("Content-Type")
		if mimeType == "" || mimeType == "application/octet-stream" {
			mimeType = http.DetectContentType(image)
		}
	} else {
		var body analyzeRequest
		if err := c.ShouldBindJSON(&body); err != nil || body.Image == "" {
			return nil, "", http.StatusBadRequest, "image is required"
		}
		var err error
		image, mimeType, err = decodeDataURL(body.Image)
		if err != nil {
			return nil, "", http.StatusBadRequest, err.Error()
		}
	}

	if len(image) == 0 {
		return nil, "", http.StatusBadRequest, "image is empty"
	}
	if len(image) > maxImageBytes {
		return nil, "", http.StatusRequestEntityTooLarge, "image is too large"
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", http.StatusBadRequest, "file is not an image"
	}
	return image, mimeType, 0, ""
}

// decodeDataURL decodes "data:<mime>;base64,<payload>". A bare payload with no
// data: prefix is taken to be JPEG.
func decodeDataURL(s string) ([]byte, string, error) {
	mimeType := "image/jpeg"
	payload := s
	if strings.HasPrefix(s, "data:") {
		header, data, ok := strings.Cut(s, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, "", fmt.Errorf("image must be a base64 data URL")
		}
		mimeType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		payload = data
	}
	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("image is not valid base64")
	}
	return image, mimeType, nil
}
