package customization

import (
	"fmt"
)

func validatePriceItem(f fields) error {
	if f == nil {
		return fmt.Errorf("request is required")
	}
	if f.str("itemId") == "" {
		return fmt.Errorf("itemId is required")
	}
	if v, ok := f["selections"]; ok && v != nil {
		if _, ok := v.(map[string]any); !ok {
			return fmt.Errorf("selections must be an object keyed by schema id")
		}
	}
	return nil
}

func validateSchemaInput(f fields, requireItem bool) error {
	if f == nil {
		return fmt.Errorf("request is required")
	}
	if requireItem && f.str("itemId") == "" {
		return fmt.Errorf("itemId is required")
	}
	if f.str("type") == "" {
		return fmt.Errorf("type is required")
	}
	for _, key := range []string{"config", "pricingConfig"} {
		if v, ok := f[key]; ok && v != nil {
			if _, ok := v.(map[string]any); !ok {
				return fmt.Errorf("%s must be an object", key)
			}
		}
	}
	if _, ok := f["position"]; ok {
		if n, ok := f.number("position"); !ok || n < 0 {
			return fmt.Errorf("position must be a non-negative integer")
		}
	}
	return nil
}

func validateSchemaID(f fields) error {
	if f == nil {
		return fmt.Errorf("request is required")
	}
	if f.str("schemaId") == "" {
		return fmt.Errorf("schemaId is required")
	}
	return nil
}

func validateListItemSchemas(f fields) error {
	if f == nil {
		return fmt.Errorf("request is required")
	}
	if f.str("itemId") == "" {
		return fmt.Errorf("itemId is required")
	}
	return nil
}
