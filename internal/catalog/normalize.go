package catalog

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/tassuhoiva/booking-api/internal/model"
)

// Fallback values for incomplete remote records.
const (
	defaultDuration = 60
	defaultIcon     = "ri-service-line"
)

// ParseFeatures coerces the features field of a remote service record into a
// list of strings. Some records were written with features as a JSON-encoded
// or comma-separated string instead of a list, so all three encodings are
// accepted. Anything unrecognizable becomes an empty list.
func ParseFeatures(raw interface{}) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return []string{}
		}
		var decoded []string
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return decoded
		}
		parts := strings.Split(trimmed, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return []string{}
	}
}

// Normalize fills per-record defaults and applies the fail-open rule: if the
// batch is shorter than the full catalog or any record lacks a name or
// description, the whole batch is discarded in favor of the default catalog.
// The catalog is small and rarely changes; a correct public page beats an
// up-to-date one.
func Normalize(services []model.Service) []model.Service {
	if len(services) < FullCatalogSize {
		return DefaultCatalog()
	}
	out := make([]model.Service, len(services))
	for i, svc := range services {
		if svc.Name == "" || svc.Description == "" {
			return DefaultCatalog()
		}
		out[i] = fillDefaults(svc)
	}
	return out
}

func fillDefaults(svc model.Service) model.Service {
	if svc.Duration <= 0 {
		svc.Duration = defaultDuration
	}
	if svc.Category == "" {
		svc.Category = model.CategoryHomeVisit
	}
	if svc.Icon == "" {
		svc.Icon = defaultIcon
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	if svc.Price < 0 {
		svc.Price = 0
	}
	now := time.Now()
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = now
	}
	if svc.UpdatedAt.IsZero() {
		svc.UpdatedAt = now
	}
	return svc
}
