package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the itinerary payload that drives the whole page.
type Document struct {
	Site          Site     `json:"site"`
	Overview      Overview `json:"overview"`
	StayAdvice    []Note   `json:"stayAdvice"`
	PackingAdvice []Note   `json:"packingAdvice"`
	Itinerary     []Day    `json:"itinerary"`
}

// Site holds the headline texts.
type Site struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	FooterNote string `json:"footerNote"`
}

// Note is one advisory card.
type Note struct {
	Title   string   `json:"title"`
	Badge   *Badge   `json:"badge,omitempty"`
	Content []string `json:"content"`
}

// Badge is the optional label in front of a note title.
type Badge struct {
	Type string `json:"type" yaml:"type"`
	Text string `json:"text" yaml:"text"`
}

// Day is one calendar day of the trip.
type Day struct {
	Date  string `json:"date"`
	Route string `json:"route"`
	Items []Item `json:"items"`
}

// Item is one scheduled activity within a day.
type Item struct {
	Time  string   `json:"time"`
	Title string   `json:"title"`
	Desc  string   `json:"desc"`
	Tags  []string `json:"tags"`
}

// Entry is a single overview row.
type Entry struct {
	Key   string
	Value string
}

// Overview is the key/value summary table. It keeps the order the keys had
// in the source object.
type Overview []Entry

// UnmarshalJSON decodes a JSON object while keeping key order. Non-string
// values are kept as their raw JSON text. A repeated key keeps its first
// position and takes the last value.
func (o *Overview) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("overview: expected object, got %v", tok)
	}
	var out Overview
	seen := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("overview %q: %w", key, err)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			s = string(raw)
		}
		if i, ok := seen[key]; ok {
			out[i].Value = s
			continue
		}
		seen[key] = len(out)
		out = append(out, Entry{Key: key, Value: s})
	}
	*o = out
	return nil
}

// MarshalJSON writes the overview back as an ordered object.
func (o Overview) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// HeroVariant is one preset banner configuration.
type HeroVariant struct {
	Eyebrow   string
	Title     string
	Desc      string
	BadgeMain string
	BadgeSub  string
	Image     string
	ImageAlt  string
}

// MoodboardShot is one photo card of the moodboard.
type MoodboardShot struct {
	City     string
	Src      string
	Alt      string
	Location string
	Season   string
	Caption  string
}
