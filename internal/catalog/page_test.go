package catalog_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"karriarsparet-gateway/internal/catalog"
)

func decodeEnvelope(t *testing.T, payload string) catalog.Envelope[string] {
	t.Helper()
	var envelope catalog.Envelope[string]
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return envelope
}

func TestNormalizePage_NestedShape(t *testing.T) {
	envelope := decodeEnvelope(t, `{
		"content": ["a", "b"],
		"page": {"number": 2, "size": 10, "totalElements": 42, "totalPages": 5, "first": false, "last": false}
	}`)

	page := catalog.NormalizePage(envelope)
	if page.Number != 2 || page.Size != 10 || page.TotalElements != 42 || page.TotalPages != 5 {
		t.Errorf("nested fields not picked up: %+v", page)
	}
	if page.First || page.Last {
		t.Errorf("first/last should be false: %+v", page)
	}
	if page.NumberOfElements != 2 {
		t.Errorf("NumberOfElements = %d, want 2", page.NumberOfElements)
	}
}

func TestNormalizePage_FlatShape(t *testing.T) {
	envelope := decodeEnvelope(t, `{
		"content": ["a"],
		"number": 1, "size": 20, "totalElements": 100, "totalPages": 5, "first": false, "last": false
	}`)

	page := catalog.NormalizePage(envelope)
	if page.Number != 1 || page.Size != 20 || page.TotalElements != 100 {
		t.Errorf("flat fields not picked up: %+v", page)
	}
}

func TestNormalizePage_NestedWinsOverFlat(t *testing.T) {
	envelope := decodeEnvelope(t, `{
		"content": ["a"],
		"number": 9,
		"page": {"number": 3}
	}`)

	page := catalog.NormalizePage(envelope)
	if page.Number != 3 {
		t.Errorf("Number = %d, want nested value 3", page.Number)
	}
}

func TestNormalizePage_BareContentDefaults(t *testing.T) {
	envelope := decodeEnvelope(t, `{"content": ["a", "b", "c"]}`)

	page := catalog.NormalizePage(envelope)
	if !page.First || !page.Last {
		t.Errorf("bare envelope should default to first+last: %+v", page)
	}
	if page.Size != 3 {
		t.Errorf("Size = %d, want content length 3", page.Size)
	}
	if page.Number != 0 || page.TotalPages != 0 || page.TotalElements != 0 {
		t.Errorf("numeric defaults wrong: %+v", page)
	}
}

func TestNormalizePage_NumberOfElementsRecomputed(t *testing.T) {
	// The envelope has no say over NumberOfElements.
	envelope := decodeEnvelope(t, `{
		"content": ["a", "b"],
		"numberOfElements": 99,
		"page": {"size": 50}
	}`)

	page := catalog.NormalizePage(envelope)
	if page.NumberOfElements != 2 {
		t.Errorf("NumberOfElements = %d, want 2", page.NumberOfElements)
	}
}

func TestNormalizePage_NilContent(t *testing.T) {
	envelope := decodeEnvelope(t, `{}`)

	page := catalog.NormalizePage(envelope)
	if page.Content == nil {
		t.Error("Content should be an empty slice, not nil")
	}
	if !page.Empty {
		t.Error("Empty should be true for a contentless envelope")
	}
}

func TestNormalizePage_Idempotent(t *testing.T) {
	// A canonical page re-read as an envelope must normalize to itself.
	envelope := decodeEnvelope(t, `{
		"content": ["a", "b"],
		"page": {"number": 2, "size": 10, "totalElements": 42, "totalPages": 5, "first": false, "last": false}
	}`)
	once := catalog.NormalizePage(envelope)

	data, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("failed to marshal page: %v", err)
	}
	twice := catalog.NormalizePage(decodeEnvelope(t, string(data)))

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalization not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMapPage(t *testing.T) {
	envelope := decodeEnvelope(t, `{
		"content": ["a", "bb"],
		"page": {"number": 4, "totalElements": 12}
	}`)
	page := catalog.NormalizePage(envelope)

	mapped := catalog.MapPage(page, func(s string) int { return len(s) })
	if len(mapped.Content) != 2 || mapped.Content[0] != 1 || mapped.Content[1] != 2 {
		t.Errorf("mapped content = %v", mapped.Content)
	}
	if mapped.Number != 4 || mapped.TotalElements != 12 {
		t.Errorf("page metadata dropped: %+v", mapped)
	}
}
