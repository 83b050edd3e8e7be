package validate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultSchema describes the serialized policy record shape. It is
// intentionally loose about optional fields; the structural validator owns
// the business-level checks.
const DefaultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["extraction_metadata", "policy_details", "policyholder", "sections"],
  "properties": {
    "extraction_metadata": {
      "type": "object",
      "required": ["extracted_at", "source_document", "extraction_version"],
      "properties": {
        "extracted_at": {"type": "string"},
        "source_document": {"type": "string"},
        "extraction_version": {"type": "string"},
        "confidence_score": {"type": ["number", "null"]}
      }
    },
    "policy_details": {
      "type": "object",
      "properties": {
        "insurer_name": {"type": ["string", "null"]},
        "policy_number": {"type": ["string", "null"]},
        "policy_type": {"type": ["string", "null"]},
        "inception_date": {"type": ["string", "null"]},
        "renewal_date": {"type": ["string", "null"]}
      }
    },
    "policyholder": {
      "type": "object",
      "properties": {
        "name": {"type": ["string", "null"]},
        "vat_number": {"type": ["string", "null"]}
      }
    },
    "broker": {"type": ["object", "null"]},
    "premium_summary": {
      "type": "object",
      "properties": {
        "currency": {"type": "string"},
        "premium_frequency": {"type": "string"},
        "subtotal": {"type": ["number", "null"]},
        "sasria_total": {"type": ["number", "null"]},
        "broker_fee": {"type": ["number", "null"]},
        "total_premium": {"type": ["number", "null"]},
        "vat_inclusive": {"type": "boolean"}
      }
    },
    "risk_addresses": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["address_id", "full_address"],
        "properties": {
          "address_id": {"type": "string"},
          "full_address": {"type": "string"},
          "applicable_sections": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["section_type", "section_name"],
        "properties": {
          "section_type": {"type": "string"},
          "section_name": {"type": "string"},
          "effective_date": {"type": ["string", "null"]},
          "risk_address": {"type": ["string", "null"]},
          "total_section_premium": {"type": ["number", "null"]},
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "description": {"type": "string"},
                "sum_insured": {"type": ["number", "null"]},
                "sum_insured_text": {"type": ["string", "null"]},
                "sum_insured_is_text_based": {"type": ["boolean", "null"]},
                "premium": {"type": ["number", "null"]}
              }
            }
          }
        }
      }
    },
    "motor_section": {
      "type": ["object", "null"],
      "properties": {
        "vehicles": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "description": {"type": ["string", "null"]},
              "year": {"type": ["integer", "null"]},
              "registration_number": {"type": ["string", "null"]},
              "vin_number": {"type": ["string", "null"]},
              "sum_insured": {"type": ["number", "null"]},
              "premium": {"type": ["number", "null"]}
            }
          }
        }
      }
    },
    "general_endorsements": {"type": "array"},
    "general_exclusions": {"type": "array", "items": {"type": "string"}},
    "first_amounts_payable": {"type": "object"},
    "special_conditions": {"type": "array", "items": {"type": "string"}},
    "warranties": {"type": "array", "items": {"type": "string"}}
  }
}`

// ValidateAgainstSchema validates raw record JSON against a JSON schema.
// An empty schemaJSON falls back to DefaultSchema.
func ValidateAgainstSchema(schemaJSON, data []byte) error {
	if len(schemaJSON) == 0 {
		schemaJSON = []byte(DefaultSchema)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
