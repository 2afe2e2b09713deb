package model

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "site": {"title": "云南 7 日", "subtitle": "大理 · 丽江"},
  "overview": {"出发": "上海", "天数": "7", "人数": 2},
  "stayAdvice": [{"title": "住古城外", "badge": {"type": "tip", "text": "建议"}, "content": ["安静"]}],
  "itinerary": [
    {"date": "D1", "route": "上海 → 大理", "items": [{"time": "08:00", "title": "航班", "tags": ["航班"]}]}
  ]
}`

func TestDecodeKeepsOverviewOrder(t *testing.T) {
	doc, err := Decode([]byte(sampleJSON))
	require.NoError(t, err)

	want := Overview{{"出发", "上海"}, {"天数", "7"}, {"人数", "2"}}
	if diff := cmp.Diff(want, doc.Overview); diff != "" {
		t.Fatalf("overview mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, doc.StayAdvice, 1)
	assert.Equal(t, "建议", doc.StayAdvice[0].Badge.Text)
	assert.Nil(t, doc.PackingAdvice)
	assert.Empty(t, doc.Site.FooterNote)
}

func TestOverviewRepeatedKeyKeepsFirstPosition(t *testing.T) {
	var o Overview
	require.NoError(t, json.Unmarshal([]byte(`{"天数":"6","人数":2,"天数":"7"}`), &o))

	want := Overview{{"天数", "7"}, {"人数", "2"}}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Fatalf("overview mismatch (-want +got):\n%s", diff)
	}
}

func TestOverviewRoundTripKeepsOrder(t *testing.T) {
	in := Overview{{"b", "1"}, {"a", "2"}}
	out, err := in.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":"1","a":"2"}`, string(out))
}

func TestDecodeRejectsBrokenJSON(t *testing.T) {
	_, err := Decode([]byte(`{"site":`))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	doc, err := Load(context.Background(), nil, path)
	require.NoError(t, err)
	assert.Equal(t, "云南 7 日", doc.Site.Title)

	_, err = Load(context.Background(), nil, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadFromURLIsUncached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.json" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	doc, err := Load(context.Background(), srv.Client(), srv.URL+"/data.json")
	require.NoError(t, err)
	assert.Len(t, doc.Itinerary, 1)

	_, err = Load(context.Background(), srv.Client(), srv.URL+"/missing.json")
	assert.ErrorContains(t, err, "无法加载 data.json")
}
