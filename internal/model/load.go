package model

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Load reads the itinerary document from a local path or an http(s) URL.
// Remote documents are requested uncached.
func Load(ctx context.Context, client *http.Client, src string) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		data, err = fetch(ctx, client, src)
	} else {
		data, err = os.ReadFile(src)
		if err != nil {
			err = fmt.Errorf("无法加载 %s: %w", src, err)
		}
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses an itinerary document.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析 data.json 失败: %w", err)
	}
	return &doc, nil
}

func fetch(ctx context.Context, client *http.Client, src string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", src, err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("无法加载 data.json: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("无法加载 data.json: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
