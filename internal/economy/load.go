package economy

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	apperrors "github.com/ynizan/clicker-game/internal/platform/errors"
)

//go:embed schema/balance.schema.json
var balanceSchemaJSON string

var balanceSchema = jsonschema.MustCompileString("balance.schema.json", balanceSchemaJSON)

// LoadBalance reads and validates a YAML balance file.
func LoadBalance(path string) (Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, apperrors.Wrap(apperrors.CodeInvalidBalance, fmt.Sprintf("read balance %s", path), err)
	}
	b, err := ParseBalance(data)
	if err != nil {
		return Balance{}, fmt.Errorf("balance %s: %w", path, err)
	}
	return b, nil
}

// ParseBalance decodes YAML balance data, checks it against the embedded
// schema, then applies Balance.Validate.
func ParseBalance(data []byte) (Balance, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Balance{}, apperrors.Wrap(apperrors.CodeInvalidBalance, "parse balance yaml", err)
	}
	instance, err := toJSONValue(doc)
	if err != nil {
		return Balance{}, apperrors.Wrap(apperrors.CodeInvalidBalance, "normalize balance yaml", err)
	}
	if err := balanceSchema.Validate(instance); err != nil {
		return Balance{}, apperrors.Wrap(apperrors.CodeInvalidBalance, "balance schema", err)
	}

	var b Balance
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return Balance{}, apperrors.Wrap(apperrors.CodeInvalidBalance, "decode balance", err)
	}
	if b.Name == "" {
		b.Name = "custom"
	}
	if err := b.Validate(); err != nil {
		return Balance{}, err
	}
	return b, nil
}

// toJSONValue round-trips a YAML document through encoding/json so the
// schema validator sees json.Number and map[string]any values only.
func toJSONValue(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
